package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"foodcart/foodcart-svc/internal/domain"
	"foodcart/foodcart-svc/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) orderBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.Board.Build(r.Context())
	if err != nil {
		log.Printf("[foodcart-svc] build order board: %v", err)
		http.Error(w, "Failed to load orders", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (h *Handler) productMatrix(w http.ResponseWriter, r *http.Request) {
	matrix, err := h.Catalog.AvailabilityMatrix(r.Context())
	if err != nil {
		log.Printf("[foodcart-svc] build product matrix: %v", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, matrix)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Catalog.Restaurants(r.Context())
	if err != nil {
		log.Printf("[foodcart-svc] list restaurants: %v", err)
		http.Error(w, "Failed to load restaurants", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) advanceOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDFromPath(w, r)
	if !ok {
		return
	}
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.Workflow.Advance(r.Context(), orderID, req.Status)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) assignRestaurant(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDFromPath(w, r)
	if !ok {
		return
	}
	var req struct {
		RestaurantID int `json:"restaurant_id"`
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil || req.RestaurantID < 1 {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := h.Workflow.Assign(r.Context(), orderID, req.RestaurantID)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, ok := orderIDFromPath(w, r)
	if !ok {
		return
	}
	png, err := h.Workflow.DeliveryQRCode(r.Context(), orderID)
	if err != nil {
		writeWorkflowError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func orderIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order id", http.StatusBadRequest)
		return 0, false
	}
	return orderID, true
}

func writeWorkflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		http.Error(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, service.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("[foodcart-svc] manager action: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
