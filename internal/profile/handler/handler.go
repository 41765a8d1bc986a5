package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"matchmaker/internal/platform/middleware"
	"matchmaker/internal/profile/models"
	"matchmaker/pkg/platform/httputil"
)

// Service defines the profile operations exposed over HTTP.
type Service interface {
	Get(ctx context.Context) models.UserProfile
	Update(ctx context.Context, patch models.Patch) (models.UserProfile, error)
}

type Handler struct {
	logger  *slog.Logger
	profile Service
}

func New(profile Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, profile: profile}
}

// Register registers the my-profile routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/me/profile", h.handleGetProfile)
	r.Patch("/me/profile", h.handleUpdateProfile)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.NewProfileResponse(h.profile.Get(r.Context())))
}

func (h *Handler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[models.UpdateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	updated, err := h.profile.Update(ctx, req.ToPatch())
	if err != nil {
		h.logger.WarnContext(ctx, "profile update failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewProfileResponse(updated))
}
