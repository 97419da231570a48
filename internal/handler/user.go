package handler

import (
	"encoding/json"
	"net/http"

	"github.com/himanshu221/medium-backend/internal/validation"
)

type signupRequest struct {
	Username  string `json:"username" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=7"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type signinRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=7"`
}

// Signup handles user registration and returns a signed token
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, statusClientError, "Invalid request body")
		return
	}
	if err := validation.Validate(req); err != nil {
		respondMessage(w, statusClientError, err.Error())
		return
	}

	signed, err := h.svc.Signup(r.Context(), req.Username, req.Password, req.Firstname, req.Lastname)
	if err != nil {
		h.log.Warnf("Signup failed for %s: %v", req.Username, err)
		respondMessage(w, statusClientError, "Invalid")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": signed})
}

// Signin handles user authentication and returns a signed token
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	var req signinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, statusClientError, "Invalid request body")
		return
	}
	if err := validation.Validate(req); err != nil {
		respondMessage(w, statusClientError, err.Error())
		return
	}

	signed, err := h.svc.Signin(r.Context(), req.Username, req.Password)
	if err != nil {
		respondMessage(w, statusClientError, "User Not found! Please Sign up")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": signed})
}
