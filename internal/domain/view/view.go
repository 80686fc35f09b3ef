// Package view holds the tagged render outcomes the usecases hand back to
// whatever sink produces the user-visible response. A usecase never renders;
// it only decides which template and which payload.
package view

import (
	"example.com/musicstore/internal/domain/catalog"
	"example.com/musicstore/internal/domain/order"
)

const (
	TemplateAddressAndPayment = "checkout/address_and_payment"
	TemplateComplete          = "checkout/complete"
	TemplateHome              = "home/index"
	TemplateError             = "shared/error"
)

// Result is a closed union; exactly one concrete type per outcome.
type Result interface {
	Template() string
}

// Redisplay re-renders the checkout form with the order the caller
// submitted. Order is the caller's instance, not a copy, so entered values
// round-trip losslessly. Errors carries field-level validation detail and is
// nil when only the promo code failed.
type Redisplay struct {
	Order  *order.Order
	Errors error
}

func (Redisplay) Template() string { return TemplateAddressAndPayment }

// Cancelled re-renders the form exactly like Redisplay but records that the
// caller aborted the request; logging and metrics keep the two apart.
type Cancelled struct {
	Order *order.Order
}

func (Cancelled) Template() string { return TemplateAddressAndPayment }

// Accepted routes the caller onward to order completion.
type Accepted struct {
	OrderID int64
}

func (Accepted) Template() string { return TemplateComplete }

// Completed confirms an order; the payload is the identifier only, never the
// full order.
type Completed struct {
	OrderID int64
}

func (Completed) Template() string { return TemplateComplete }

// Error renders the generic error view. Err is for logs; the sink must not
// expose which rule produced it.
type Error struct {
	Err error
}

func (Error) Template() string { return TemplateError }

type Listing struct {
	Albums []*catalog.Album
}

func (Listing) Template() string { return TemplateHome }
