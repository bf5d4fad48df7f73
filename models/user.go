package models

const (
	UserTypeCustomer = "customer"
	UserTypeAdmin    = "admin"
)

// TimeLayout is the layout of every stored timestamp string.
const TimeLayout = "2006-01-02 15:04:05"

// Account is a registered shopper keyed by email.
type Account struct {
	Email            string `json:"email" bson:"_id"`
	Name             string `json:"name" bson:"name"`
	Password         string `json:"-" bson:"password"`
	Phone            string `json:"phone" bson:"phone"`
	Address          string `json:"address" bson:"address"`
	UserType         string `json:"user_type" bson:"user_type"`
	RegistrationDate string `json:"registration_date" bson:"registration_date"`
	TotalOrders      int    `json:"total_orders" bson:"total_orders"`
	TotalSpent       int64  `json:"total_spent" bson:"total_spent"`
}

// IsAdmin reports whether the account may open the admin dashboard.
func (a Account) IsAdmin() bool {
	return a.UserType == UserTypeAdmin
}
