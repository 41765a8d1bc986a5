package audit

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/platform/httputil"
	"matchmaker/pkg/requestcontext"
)

type Reader interface {
	List(ctx context.Context) ([]Event, error)
	Since(ctx context.Context, t time.Time) ([]Event, error)
}

type EventResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	From      string    `json:"from,omitempty"`
	To        string    `json:"to,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

type ListResponse struct {
	Events []EventResponse `json:"events"`
}

// Handler exposes the audit trail read-only.
type Handler struct {
	reader Reader
	logger *slog.Logger
}

func NewHandler(reader Reader, logger *slog.Logger) *Handler {
	return &Handler{reader: reader, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/audit", h.handleList)
}

// handleList returns every event, or those at or after ?since= (RFC 3339).
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var (
		events []Event
		err    error
	)
	if raw := r.URL.Query().Get("since"); raw != "" {
		since, perr := time.Parse(time.RFC3339, raw)
		if perr != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeInvalidInput, "since must be an RFC 3339 timestamp"))
			return
		}
		events, err = h.reader.Since(ctx, since)
	} else {
		events, err = h.reader.List(ctx)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list audit events",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list audit events"))
		return
	}

	resp := ListResponse{Events: make([]EventResponse, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, EventResponse(e))
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}
