package models

// CartLine is a single product in a cart. Guest lines live in the session and
// leave UserEmail, ProductID and AddedAt empty; persisted lines carry all fields.
// Name, Price, Unit and Image are copied from the catalog when the line is
// created and are not refreshed afterwards.
type CartLine struct {
	UserEmail string `json:"user_email,omitempty" bson:"user_email"`
	ProductID string `json:"product_id,omitempty" bson:"product_id"`
	ID        int    `json:"id" bson:"-"`
	Name      string `json:"name" bson:"name"`
	Price     int64  `json:"price" bson:"price"`
	Unit      string `json:"unit" bson:"unit"`
	Quantity  int    `json:"quantity" bson:"quantity"`
	Image     string `json:"image" bson:"image"`
	AddedAt   string `json:"added_at,omitempty" bson:"added_at"`
}

// Subtotal is price times quantity.
func (l CartLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}
