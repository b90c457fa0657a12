package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fincontrol/backend/internal/auth"
	"github.com/fincontrol/backend/internal/config"
	v1 "github.com/fincontrol/backend/internal/controllers/v1"
	"github.com/fincontrol/backend/internal/models"
	"github.com/fincontrol/backend/internal/router"
	"github.com/fincontrol/backend/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	output := io.Writer(os.Stdout)
	if cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dsn := ""
	if cfg.Database.Postgres() {
		dsn = cfg.Database.DSN()
	}

	db, err := models.Open(dsn, cfg.SQLitePath())
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer func() {
		if err := models.Close(db); err != nil {
			log.Error().Err(err).Msg("closing database")
		}
	}()

	s := store.New(db, cfg.StoreOptions()...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var authn *auth.Authenticator
	if cfg.Auth.Mode == config.AuthModeJWT {
		authn = auth.NewJWT(cfg.Auth.Secret)
	} else {
		authn, err = auth.NewLocal(ctx, s)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	r, teardown, err := router.Config(cfg.APIURL, cfg.CORSAllowOrigins)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	defer teardown()

	base := cfg.APIURL.Path
	if base == "" {
		base = "/"
	}
	router.AttachRoutes(r.Group(base), v1.New(s, cfg.Location, cfg.ExportLocale), authn, cfg.EnablePprof)

	srv := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("address", cfg.ListenAddress).Str("auth", cfg.Auth.Mode).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
