package order

import "time"

// Order is the address/payment form bound at checkout. Username is the
// owning principal, stamped once at submission and immutable afterwards.
type Order struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	OrderDate time.Time `json:"order_date"`

	FirstName  string `json:"first_name" validate:"required,max=160"`
	LastName   string `json:"last_name" validate:"required,max=160"`
	Address    string `json:"address" validate:"required,max=70"`
	City       string `json:"city" validate:"required,max=40"`
	State      string `json:"state" validate:"required,max=40"`
	PostalCode string `json:"postal_code" validate:"required,max=10"`
	Country    string `json:"country" validate:"required,max=40"`
	Phone      string `json:"phone" validate:"required,max=24"`
	Email      string `json:"email" validate:"required,email"`

	Total float64 `json:"total"`
}
