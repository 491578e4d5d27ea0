package domain

import "time"

const (
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// Order is immutable once placed. Tracking is nil until a shipment exists.
type Order struct {
	ID       string     `json:"id"`
	Items    []CartItem `json:"items"`
	Total    float64    `json:"total"`
	Currency string     `json:"currency"`
	Status   string     `json:"status"`
	Date     time.Time  `json:"date"`
	Tracking *string    `json:"tracking"`
}
