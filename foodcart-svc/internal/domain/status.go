package domain

type OrderStatus string

const (
	StatusUnprocessed         OrderStatus = "unprocessed"
	StatusRestaurantConfirmed OrderStatus = "restaurant_confirmed"
	StatusDeliveryStarted     OrderStatus = "delivery_started"
	StatusCompleted           OrderStatus = "completed"
)

var statusSequence = []OrderStatus{
	StatusUnprocessed,
	StatusRestaurantConfirmed,
	StatusDeliveryStarted,
	StatusCompleted,
}

const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

func (s OrderStatus) rank() int {
	for i, status := range statusSequence {
		if status == s {
			return i
		}
	}
	return -1
}

func (s OrderStatus) Valid() bool {
	return s.rank() >= 0
}

// CanAdvanceTo reports whether next is strictly later in the lifecycle.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	from, to := s.rank(), next.rank()
	return from >= 0 && to > from
}
