package brochure

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/brochuregen/backend/internal/shared/apperror"
	"github.com/brochuregen/backend/internal/shared/middleware"
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
	router.Get("/recent", r.GetRecent)
	router.Post("/save", r.Save)
	return router
}

// GetRecent returns the principal's most recent brochure records, newest first
func (r *Router) GetRecent(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	limit := DefaultLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			apperror.WriteError(w, req, apperror.NewValidationError("limit must be a positive integer", err))
			return
		}
		limit = parsed
	}

	userID, ok := r.resolveUserID(w, req)
	if !ok {
		return
	}

	records, err := r.service.Recent(ctx, userID, limit)
	if err != nil {
		apperror.WriteError(w, req, err)
		return
	}

	logger.Debug().Int64("user_id", userID).Int("limit", limit).Int("count", len(records)).Msg("Recent brochures fetched")
	apperror.WriteJSON(w, http.StatusOK, records)
}

// Save persists a brochure record for the authenticated principal
func (r *Router) Save(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	logger := hlog.FromRequest(req)

	var body SaveBrochureIn
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		apperror.WriteError(w, req, apperror.NewValidationError("invalid request body", err))
		return
	}

	userID, ok := r.resolveUserID(w, req)
	if !ok {
		return
	}

	record, err := r.service.Create(ctx, userID, body)
	if err != nil {
		apperror.WriteError(w, req, err)
		return
	}

	logger.Debug().Int64("user_id", userID).Str("hotel_name", record.HotelName).Stringer("id", record.ID).Msg("Brochure saved")
	apperror.WriteJSON(w, http.StatusOK, record)
}

// resolveUserID maps the request principal to a user id. A principal whose
// user row no longer exists is treated as unauthenticated, not as a 404.
func (r *Router) resolveUserID(w http.ResponseWriter, req *http.Request) (int64, bool) {
	email := middleware.GetPrincipal(req.Context())
	if email == "" {
		apperror.WriteError(w, req, apperror.NewAuthError("not authenticated", nil))
		return 0, false
	}

	userID, err := r.service.ResolveUserID(req.Context(), email)
	if err != nil {
		if apperror.IsNotFound(err) {
			apperror.WriteError(w, req, apperror.NewAuthError("not authenticated", err))
			return 0, false
		}
		apperror.WriteError(w, req, err)
		return 0, false
	}
	return userID, true
}
