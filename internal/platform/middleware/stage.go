package middleware

import (
	"context"
	"log/slog"
	"net/http"

	onboardingmodels "matchmaker/internal/onboarding/models"
	dErrors "matchmaker/pkg/domain-errors"
	"matchmaker/pkg/platform/httputil"
	"matchmaker/pkg/requestcontext"
)

// StageReader exposes the current onboarding stage.
type StageReader interface {
	CurrentStage(ctx context.Context) onboardingmodels.Stage
}

// RequireStage lets requests through only once onboarding has reached the
// required stage. It stands in for authentication: the main app is reachable
// only after the profile has been approved.
func RequireStage(reader StageReader, required onboardingmodels.Stage, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			current := reader.CurrentStage(ctx)
			if current.Rank() >= required.Rank() {
				next.ServeHTTP(w, r)
				return
			}

			logger.WarnContext(ctx, "access before onboarding complete",
				"request_id", requestcontext.RequestID(ctx),
				"stage", current,
				"required", required,
				"path", r.URL.Path,
			)
			httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden,
				"onboarding stage "+current.String()+" cannot access this resource"))
		})
	}
}
