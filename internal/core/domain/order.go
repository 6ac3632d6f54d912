package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

// StatusPending is the only state reachable in this service: every order is
// created as "pending" and nothing here moves it further. Fulfillment is an
// external process; the enumerated type leaves room for its states without
// changing this core.
const StatusPending OrderStatus = "pending"

// Order is a purchase record tied to a user id.
//
// UserID is not validated against the users table at creation time, and
// Quantity may be zero or negative. Both are deliberate: order intake accepts
// whatever the caller submits and later stages deal with it.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Item      string      `json:"item"`
	Quantity  int         `json:"quantity"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}
