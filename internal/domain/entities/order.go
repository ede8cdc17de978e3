package entities

import "time"

// OrderStatus mirrors the status column owned by the order store. The payment
// service never changes it.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is the read model of a purchase record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Storage model (Postgres):
//   - table orders, primary key id
//
// A zero-value Order (empty ID) means the order does not exist.
type Order struct {
	ID        string      `json:"id"`
	Status    OrderStatus `json:"status"`
	Total     float64     `json:"total"`
	Currency  string      `json:"currency"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
