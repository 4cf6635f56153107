package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/brochuregen/backend/internal/shared/apperror"
)

type (
	Router struct {
		service servicer
	}
)

func NewRouter(service servicer) chi.Router {
	router := &Router{service: service}
	return router.Routes()
}

func (r *Router) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/signup", r.Signup)
	router.Post("/login", r.Login)
	return router
}

// Signup registers a new user and returns the auth response with a fresh token
func (r *Router) Signup(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body SignupRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		apperror.WriteError(w, req, apperror.NewValidationError("invalid request body", err))
		return
	}

	logger.Debug().Str("email", body.Email).Msg("Signup attempt")

	resp, err := r.service.Signup(ctx, body)
	if err != nil {
		apperror.WriteError(w, req, err)
		return
	}

	logger.Debug().Str("email", resp.Email).Str("user_id", resp.UserID).Msg("Signup successful")
	apperror.WriteJSON(w, http.StatusCreated, resp)
}

// Login verifies credentials and returns the auth response with a fresh token
func (r *Router) Login(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body LoginRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		apperror.WriteError(w, req, apperror.NewValidationError("invalid request body", err))
		return
	}

	logger.Debug().Str("email", body.Email).Msg("Login attempt")

	resp, err := r.service.Login(ctx, body)
	if err != nil {
		apperror.WriteError(w, req, err)
		return
	}

	logger.Debug().Str("email", resp.Email).Str("user_id", resp.UserID).Msg("Login successful")
	apperror.WriteJSON(w, http.StatusOK, resp)
}
