package models

// Product is a catalog entry. ProductID is the store key; ID is its numeric form
// and is filled in on read.
type Product struct {
	ProductID   string `json:"product_id" bson:"_id"`
	ID          int    `json:"id" bson:"-"`
	Name        string `json:"name" bson:"name"`
	Category    string `json:"category" bson:"category"`
	Price       int64  `json:"price" bson:"price"` // whole currency units
	Unit        string `json:"unit" bson:"unit"`
	Description string `json:"description" bson:"description"`
	Image       string `json:"image" bson:"image"`
	Stock       int    `json:"stock" bson:"stock"`
	Active      bool   `json:"active" bson:"active"`
}
