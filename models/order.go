package models

// Order is a placed order. Nothing in the storefront creates orders yet; the
// type backs the read-only order history.
type Order struct {
	OrderID   string     `json:"order_id" bson:"_id"`
	UserEmail string     `json:"user_email" bson:"user_email"`
	Items     []CartLine `json:"items" bson:"items"`
	Total     int64      `json:"total" bson:"total"`
	Status    string     `json:"status" bson:"status"` // e.g. "pending", "completed"
	CreatedAt string     `json:"created_at" bson:"created_at"`
}
