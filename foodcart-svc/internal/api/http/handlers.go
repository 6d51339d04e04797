package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"foodcart/foodcart-svc/internal/domain"
	"foodcart/foodcart-svc/internal/service"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Board    service.OrderBoardInterface
	Workflow service.OrderWorkflowInterface
}

func NewHandler(catalog service.CatalogServiceInterface, orders service.OrderServiceInterface,
	board service.OrderBoardInterface, workflow service.OrderWorkflowInterface) *Handler {
	return &Handler{
		Catalog:  catalog,
		Orders:   orders,
		Board:    board,
		Workflow: workflow,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/products", h.listProducts).Methods("GET")
	r.HandleFunc("/banners", h.listBanners).Methods("GET")
	r.HandleFunc("/orders", h.registerOrder).Methods("POST")

	r.HandleFunc("/manager/orders", h.orderBoard).Methods("GET")
	r.HandleFunc("/manager/orders/{id:[0-9]+}/status", h.advanceOrder).Methods("POST")
	r.HandleFunc("/manager/orders/{id:[0-9]+}/restaurant", h.assignRestaurant).Methods("POST")
	r.HandleFunc("/manager/orders/{id:[0-9]+}/qrcode", h.orderQRCode).Methods("GET")
	r.HandleFunc("/manager/products", h.productMatrix).Methods("GET")
	r.HandleFunc("/manager/restaurants", h.listRestaurants).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "foodcart-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.AvailableProducts(r.Context())
	if err != nil {
		log.Printf("[foodcart-svc] list products: %v", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) listBanners(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.Banners())
}

type createdOrder struct {
	ID          int                 `json:"id"`
	FirstName   string              `json:"firstname"`
	LastName    string              `json:"lastname"`
	PhoneNumber string              `json:"phonenumber"`
	Address     string              `json:"address"`
	Products    []domain.IntentItem `json:"products"`
}

func (h *Handler) registerOrder(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.UseNumber()
	var payload any
	if err := dec.Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, service.ValidationError{
			"non_field_errors": {"Invalid JSON payload."},
		})
		return
	}

	order, err := h.Orders.Submit(r.Context(), payload)
	if err != nil {
		var verr service.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, verr)
			return
		}
		log.Printf("[foodcart-svc] create order: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create order"})
		return
	}

	resp := createdOrder{
		ID:          order.ID,
		FirstName:   order.FirstName,
		LastName:    order.LastName,
		PhoneNumber: order.PhoneNumber,
		Address:     order.Address,
		Products:    make([]domain.IntentItem, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		resp.Products = append(resp.Products, domain.IntentItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	writeJSON(w, http.StatusCreated, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[foodcart-svc] encode response: %v", err)
	}
}
