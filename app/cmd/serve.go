package cmd

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Rakhulsr/go-shoppinglist/app/configs"
	"github.com/Rakhulsr/go-shoppinglist/app/models/migrations"
	"github.com/Rakhulsr/go-shoppinglist/app/routes"
	"github.com/Rakhulsr/go-shoppinglist/app/utils/format"
	"github.com/Rakhulsr/go-shoppinglist/app/utils/ratelimit"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func Serve(ctx context.Context, env configs.ENV, log *logrus.Logger) error {
	log.Info("starting server")
	defer log.Info("shutdown complete")

	db, err := configs.OpenConnection(env, log)
	if err != nil {
		return fmt.Errorf("failed to open db connection: %w", err)
	}
	defer closeDB(db, log)

	if env.DBAutoMigrate {
		if err := migrations.AutoMigrate(db); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
	}

	format.SetCurrencySymbol(env.CurrencySymbol)

	var limiter *ratelimit.Limiter
	if env.RateLimitRPS > 0 {
		limiter = ratelimit.NewLimiter(env.RateLimitBurst, 10*time.Minute, env.RateLimitRPS)
		defer limiter.Stop()
	}

	lw := log.Writer()
	defer lw.Close()

	api := http.Server{
		Handler:      routes.NewRouter(routes.Config{DB: db, Log: log, Limiter: limiter}),
		Addr:         env.Port,
		ReadTimeout:  env.ReadTimeout,
		WriteTimeout: env.WriteTimeout,
		IdleTimeout:  env.IdleTimeout,
		ErrorLog:     stdlog.New(lw, "", 0),
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Infof("starting api router at %s", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), env.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(shutdownCtx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}

func closeDB(db *gorm.DB, log logrus.FieldLogger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.WithError(err).Warn("closing database")
	}
}
