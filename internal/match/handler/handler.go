package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"matchmaker/internal/match/models"
	"matchmaker/internal/platform/middleware"
	"matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/platform/httputil"
)

// Service defines the match and discovery operations exposed over HTTP.
type Service interface {
	List(ctx context.Context) []models.Match
	Get(ctx context.Context, id domain.MatchID) (models.Match, error)
	CreateDemoMatch(ctx context.Context) models.Match
	SendMessage(ctx context.Context, id domain.MatchID, text string) (models.Match, error)
	Candidates() []models.Candidate
	RequestIntro(ctx context.Context, candidateID string) (models.IntroRequest, error)
	IntroRequests(ctx context.Context) []models.IntroRequest
	InstantMatch(ctx context.Context, candidateID string) (models.Match, error)
}

type Handler struct {
	logger  *slog.Logger
	matches Service
}

func New(matches Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, matches: matches}
}

// Register registers the match list, chat and discovery routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/matches", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/demo", h.handleCreateDemo)
		r.Get("/{id}", h.handleGet)
		r.Post("/{id}/messages", h.handleSendMessage)
	})
	r.Route("/discover", func(r chi.Router) {
		r.Get("/", h.handleCandidates)
		r.Get("/intros", h.handleIntroRequests)
		r.Post("/{id}/intro", h.handleRequestIntro)
		r.Post("/{id}/match", h.handleInstantMatch)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.NewMatchListResponse(h.matches.List(r.Context())))
}

func (h *Handler) handleCreateDemo(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusCreated, models.NewMatchResponse(h.matches.CreateDemoMatch(r.Context())))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := h.matchID(w, r)
	if !ok {
		return
	}
	m, err := h.matches.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.NewMatchResponse(m))
}

func (h *Handler) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := h.matchID(w, r)
	if !ok {
		return
	}
	req, ok := httputil.DecodeAndPrepare[models.SendMessageRequest](w, r, h.logger, ctx, middleware.GetRequestID(ctx))
	if !ok {
		return
	}
	m, err := h.matches.SendMessage(ctx, id, req.Text)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.NewMatchResponse(m))
}

func (h *Handler) handleCandidates(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.NewCandidateListResponse(h.matches.Candidates()))
}

func (h *Handler) handleIntroRequests(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.NewIntroListResponse(h.matches.IntroRequests(r.Context())))
}

func (h *Handler) handleRequestIntro(w http.ResponseWriter, r *http.Request) {
	req, err := h.matches.RequestIntro(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.NewIntroResponse(req))
}

func (h *Handler) handleInstantMatch(w http.ResponseWriter, r *http.Request) {
	m, err := h.matches.InstantMatch(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.NewInstantMatchResponse(m))
}

// matchID parses the path id. A malformed id cannot name an existing match,
// so it is reported the same way as an unknown one.
func (h *Handler) matchID(w http.ResponseWriter, r *http.Request) (domain.MatchID, bool) {
	id, err := domain.ParseMatchID(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeNotFound, "match not found"))
		return domain.MatchID{}, false
	}
	return id, true
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "match request failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
	} else {
		h.logger.WarnContext(ctx, "match request rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
