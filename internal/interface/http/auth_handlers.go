package http

import (
	"encoding/json"
	"errors"
	"net/http"

	authuc "example.com/musicstore/internal/usecase/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	result, err := a.authSvc.Login(r.Context(), authuc.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: result.Token, Username: result.User.Username})
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	result, err := a.authSvc.Register(r.Context(), authuc.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: result.Token, Username: result.User.Username})
}
