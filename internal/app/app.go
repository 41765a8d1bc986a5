// Package app wires the store, services and handlers into one HTTP handler.
package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"matchmaker/internal/audit"
	matchhandler "matchmaker/internal/match/handler"
	matchservice "matchmaker/internal/match/service"
	chathandler "matchmaker/internal/matchmaker/handler"
	chatservice "matchmaker/internal/matchmaker/service"
	onboardinghandler "matchmaker/internal/onboarding/handler"
	onboardingmodels "matchmaker/internal/onboarding/models"
	onboardingservice "matchmaker/internal/onboarding/service"
	"matchmaker/internal/platform/config"
	"matchmaker/internal/platform/metrics"
	profilehandler "matchmaker/internal/profile/handler"
	profileservice "matchmaker/internal/profile/service"
	"matchmaker/internal/storage"
	httptransport "matchmaker/internal/transport/http"
)

// App holds the wired components of one session.
type App struct {
	Store      *storage.InMemoryStore
	Onboarding *onboardingservice.Service
	Audit      *audit.Publisher
	Metrics    *metrics.Metrics
	Handler    http.Handler
}

// New builds the application. reg receives every metric and backs /metrics.
func New(cfg config.Server, logger *slog.Logger, reg *prometheus.Registry) *App {
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store := storage.NewInMemoryStore(time.Now())
	publisher := audit.NewPublisher(audit.NewInMemoryStore())

	onboarding := onboardingservice.New(store,
		onboardingmodels.NewPolicy(cfg.Policy.IntroCadence, cfg.Policy.FeeKRW),
		onboardingservice.WithLogger(logger),
		onboardingservice.WithAuditPublisher(publisher),
		onboardingservice.WithMetrics(m),
	)
	profiles := profileservice.New(store,
		profileservice.WithLogger(logger),
		profileservice.WithAuditPublisher(publisher),
	)
	matches := matchservice.New(store,
		matchservice.WithLogger(logger),
		matchservice.WithAuditPublisher(publisher),
		matchservice.WithMetrics(m),
	)
	chat := chatservice.New(store,
		chatservice.WithLogger(logger),
		chatservice.WithMetrics(m),
	)

	router := httptransport.NewRouter(httptransport.Config{
		Logger:         logger,
		Metrics:        m,
		Gatherer:       reg,
		RequestTimeout: cfg.RequestTimeout,
		Stage:          onboarding,
		Public: []httptransport.Registrar{
			onboardinghandler.New(onboarding, logger),
			audit.NewHandler(publisher, logger),
		},
		Gated: []httptransport.Registrar{
			profilehandler.New(profiles, logger),
			matchhandler.New(matches, logger),
			chathandler.New(chat, logger),
		},
	})

	return &App{
		Store:      store,
		Onboarding: onboarding,
		Audit:      publisher,
		Metrics:    m,
		Handler:    router,
	}
}
