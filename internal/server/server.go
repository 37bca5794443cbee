// Package server exposes the terminal's views and mutations over HTTP.
// Views are pure consumers of the domain store's snapshot; mutations go
// through the dispatcher.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/config"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/dispatch"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/logger"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/notify"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/rates"
	"github.com/CristiandeOliveiraAbreu/DinheiroGlobal/internal/store"
)

type Server struct {
	s      *http.Server
	logger logger.Logger

	store      *store.Store
	dispatcher *dispatch.Dispatcher
	rates      *rates.Service
	notifier   *notify.Center
}

func NewServer(
	ctx context.Context,
	cfg config.ServerConfig,
	st *store.Store,
	dispatcher *dispatch.Dispatcher,
	ratesSvc *rates.Service,
	notifier *notify.Center,
	logger logger.Logger,
) *Server {
	srv := &Server{
		logger:     logger,
		store:      st,
		dispatcher: dispatcher,
		rates:      ratesSvc,
		notifier:   notifier,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Get("/healthz", srv.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/snapshot", srv.handleSnapshot)
		r.Get("/equity", srv.handleEquity)
		r.Post("/refresh", srv.handleRefresh)

		r.Get("/dashboard", srv.handleDashboard)
		r.Get("/history", srv.handleHistory)
		r.Get("/treasury", srv.handleTreasury)
		r.Get("/diary", srv.handleDiaryView)
		r.Get("/macro", srv.handleMacroView)
		r.Get("/valuation", srv.handleValuationView)

		r.Route("/trades", func(r chi.Router) {
			r.Post("/", srv.handleSaveTrade)
			r.Patch("/{id}/archive", srv.handleArchiveTrade)
			r.Delete("/{id}", srv.handleDeleteTrade)
		})
		r.Route("/assets", func(r chi.Router) {
			r.Get("/", srv.handleAssetsView)
			r.Post("/", srv.handleSaveAsset)
			r.Patch("/{id}/status", srv.handleAssetStatus)
			r.Delete("/{id}", srv.handleDeleteAsset)
		})
		r.Route("/brokers", func(r chi.Router) {
			r.Post("/", srv.handleAddBroker)
			r.Delete("/{id}", srv.handleDeleteBroker)
		})
		r.Route("/contributions", func(r chi.Router) {
			r.Post("/", srv.handleSaveContribution)
			r.Delete("/{id}", srv.handleDeleteContribution)
		})
		r.Post("/incomes", srv.handleAddIncome)
		r.Route("/diary-entries", func(r chi.Router) {
			r.Post("/", srv.handleSaveDiaryEntry)
			r.Delete("/{id}", srv.handleDeleteDiaryEntry)
		})
		r.Route("/analyses", func(r chi.Router) {
			r.Get("/", srv.handleAnalysesView)
			r.Post("/", srv.handleSaveAnalysis)
			r.Patch("/{id}/archive", srv.handleArchiveAnalysis)
			r.Delete("/{id}", srv.handleDeleteAnalysis)
		})

		r.Route("/settings/rate", func(r chi.Router) {
			r.Get("/", srv.handleGetRate)
			r.Put("/", srv.handleSetManualRate)
			r.Delete("/", srv.handleClearManualRate)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", srv.handleNotifications)
			r.Delete("/{id}", srv.handleDismissNotification)
		})
	})

	srv.s = &http.Server{
		Handler:           r,
		Addr:              ":" + cfg.Port,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(listener net.Listener) context.Context {
			return ctx
		},
	}

	return srv
}

func (s *Server) Start() error {
	return s.s.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.s.Shutdown(ctx)
}

func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error)
	go func() {
		errCh <- s.Start()
	}()
	select {
	case <-ctx.Done():
		return s.Shutdown(ctx)
	case err := <-errCh:
		return err
	}
}
