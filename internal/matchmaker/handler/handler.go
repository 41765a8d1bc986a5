package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"matchmaker/internal/matchmaker/models"
	"matchmaker/internal/platform/middleware"
	"matchmaker/pkg/platform/httputil"
)

type Service interface {
	Thread(ctx context.Context) []models.Entry
	Send(ctx context.Context, text string) (models.Entry, error)
}

type Handler struct {
	logger *slog.Logger
	chat   Service
}

func New(chat Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, chat: chat}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/matchmaker/messages", h.handleThread)
	r.Post("/matchmaker/messages", h.handleSend)
}

func (h *Handler) handleThread(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, models.NewThreadResponse(h.chat.Thread(r.Context())))
}

func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)
	req, ok := httputil.DecodeAndPrepare[models.SendRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	e, err := h.chat.Send(ctx, req.Text)
	if err != nil {
		h.logger.WarnContext(ctx, "matchmaker message rejected",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.NewEntryResponse(e))
}
