package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/alanfo18/stcd/internal/audit"
	"github.com/alanfo18/stcd/internal/config"
	dbpkg "github.com/alanfo18/stcd/internal/db"
	"github.com/alanfo18/stcd/internal/gateway"
	"github.com/alanfo18/stcd/internal/infra/repository"
	"github.com/alanfo18/stcd/internal/logger"
	"github.com/alanfo18/stcd/internal/routes"
	"github.com/alanfo18/stcd/internal/session"
	"github.com/alanfo18/stcd/internal/storage"
	"github.com/alanfo18/stcd/internal/whatsapp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ------------------------------
	// STORE
	// ------------------------------
	var store routes.Store
	db, err := dbpkg.Open(cfg.DBUrl)
	switch {
	case err != nil:
		log.Error().Err(err).Msg("database unavailable, running in degraded mode")
		store = repository.NewNoopStore()
	case db == nil:
		log.Warn().Msg("DATABASE_URL not set, running in degraded mode")
		store = repository.NewNoopStore()
	default:
		store = repository.NewGormStore(db)
	}

	dispatcher := audit.NewDispatcher(audit.New(store))

	// ------------------------------
	// ADAPTERS
	// ------------------------------
	uploader, err := storage.New(cfg.S3)
	if err != nil {
		log.Error().Err(err).Msg("s3 unavailable, proof upload disabled")
		uploader = storage.NoopUploader{}
	}

	lookup, err := gateway.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Error().Err(err).Msg("mercadopago unavailable, reconcile disabled")
		lookup = gateway.Noop{}
	}

	revoker, closeRevoker, err := session.New(ctx, cfg.RedisURL)
	if err != nil {
		log.Error().Err(err).Msg("redis unavailable, using in-memory token revocation")
		revoker, closeRevoker = session.NewMemoryRevoker(), func() error { return nil }
	}

	// ------------------------------
	// HTTP
	// ------------------------------
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, cfg, routes.Deps{
		Store:    store,
		Audit:    dispatcher,
		Sender:   whatsapp.New(cfg.WhatsApp),
		Uploader: uploader,
		Gateway:  lookup,
		Revoker:  revoker,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	dispatcher.Close()
	if err := closeRevoker(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
}
