package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"matchmaker/internal/onboarding/models"
	"matchmaker/internal/platform/middleware"
	profilemodels "matchmaker/internal/profile/models"
	"matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/platform/httputil"
)

// Service defines the onboarding operations exposed over HTTP.
type Service interface {
	State(ctx context.Context) models.State
	Policy() models.Policy
	Start(ctx context.Context) (models.State, error)
	Login(ctx context.Context, provider domain.LoginProvider) (models.State, error)
	AgreePolicy(ctx context.Context) (models.State, error)
	SubmitProfile(ctx context.Context, sub profilemodels.Submission) (models.State, error)
	Approve(ctx context.Context) (models.State, error)
	Advance(ctx context.Context, target models.Stage) (models.State, error)
}

// Handler serves the onboarding screens: one endpoint per trigger plus the
// current state.
type Handler struct {
	logger     *slog.Logger
	onboarding Service
}

func New(onboarding Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, onboarding: onboarding}
}

// Register registers the onboarding routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/onboarding", func(r chi.Router) {
		r.Get("/", h.handleGetState)
		r.Get("/policy", h.handleGetPolicy)
		r.Post("/start", h.handleStart)
		r.Post("/login", h.handleLogin)
		r.Post("/policy/agree", h.handleAgreePolicy)
		r.Post("/profile", h.handleSubmitProfile)
		r.Post("/approve", h.handleApprove)
		r.Post("/advance", h.handleAdvance)
	})
}

func (h *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.NewStateResponse(h.onboarding.State(r.Context())))
}

func (h *Handler) handleGetPolicy(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.NewPolicyResponse(h.onboarding.Policy()))
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	state, err := h.onboarding.Start(r.Context())
	h.respond(w, r, "start", state, err)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.LoginRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	state, err := h.onboarding.Login(ctx, domain.LoginProvider(req.Provider))
	h.respond(w, r, "login", state, err)
}

func (h *Handler) handleAgreePolicy(w http.ResponseWriter, r *http.Request) {
	state, err := h.onboarding.AgreePolicy(r.Context())
	h.respond(w, r, "agree policy", state, err)
}

func (h *Handler) handleSubmitProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[profilemodels.SubmitRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	state, err := h.onboarding.SubmitProfile(ctx, req.ToSubmission())
	h.respond(w, r, "submit profile", state, err)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	state, err := h.onboarding.Approve(r.Context())
	h.respond(w, r, "approve", state, err)
}

func (h *Handler) handleAdvance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[models.AdvanceRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	state, err := h.onboarding.Advance(ctx, models.Stage(req.Target))
	h.respond(w, r, "advance", state, err)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, action string, state models.State, err error) {
	if err != nil {
		ctx := r.Context()
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "onboarding "+action+" failed",
				"request_id", middleware.GetRequestID(ctx),
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewStateResponse(state))
}
