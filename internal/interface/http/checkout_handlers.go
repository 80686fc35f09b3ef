package http

import (
	"encoding/json"
	"errors"
	"net/http"

	domorder "example.com/musicstore/internal/domain/order"
)

type addressAndPaymentRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`

	// The promo code travels next to the form, not inside the order.
	PromoCode string `json:"promo_code"`
}

func (a *API) handleAddressAndPayment(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req addressAndPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	order := &domorder.Order{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		Email:      req.Email,
	}

	res := a.checkoutSvc.SubmitAddressAndPayment(r.Context(), order, req.PromoCode, principalName(r.Context()))
	renderResult(w, res)
}

func (a *API) handleComplete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid order id"))
		return
	}

	res := a.checkoutSvc.Complete(r.Context(), id, principalName(r.Context()))
	renderResult(w, res)
}
