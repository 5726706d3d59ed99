package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusAccepted  = "accepted"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusPickedUp  = "picked_up"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusAccepted, OrderStatusCancelled},
	OrderStatusAccepted:  {OrderStatusPreparing},
	OrderStatusPreparing: {OrderStatusReady},
	OrderStatusReady:     {OrderStatusPickedUp},
	OrderStatusPickedUp:  {OrderStatusDelivered},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID              int         `json:"id"`
	OrderNumber     string      `json:"order_number"`
	CustomerID      int         `json:"customer_id"`
	RestaurantID    int         `json:"restaurant_id"`
	DriverID        *int        `json:"driver_id,omitempty"`
	Status          string      `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	DeliveryAddress string      `json:"delivery_address"`
	Notes           *string     `json:"notes,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// OrderItem is a cart line frozen at checkout time.
type OrderItem struct {
	ID             int               `json:"id"`
	OrderID        int               `json:"order_id"`
	ItemID         string            `json:"item_id"`
	Name           string            `json:"name"`
	UnitPrice      float64           `json:"unit_price"`
	Quantity       int               `json:"quantity"`
	Customizations map[string]string `json:"customizations,omitempty"`
}
