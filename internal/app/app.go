// Package app wires the application together: configuration, logging,
// database, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/glibera/readlogger/internal/adapter/postgres"
	auditlogrepo "github.com/glibera/readlogger/internal/adapter/postgres/auditlog"
	authorrepo "github.com/glibera/readlogger/internal/adapter/postgres/author"
	bookrepo "github.com/glibera/readlogger/internal/adapter/postgres/book"
	refdatarepo "github.com/glibera/readlogger/internal/adapter/postgres/refdata"
	userrepo "github.com/glibera/readlogger/internal/adapter/postgres/user"
	userbookrepo "github.com/glibera/readlogger/internal/adapter/postgres/userbook"
	jwtauth "github.com/glibera/readlogger/internal/auth"
	"github.com/glibera/readlogger/internal/config"
	"github.com/glibera/readlogger/internal/mail"
	"github.com/glibera/readlogger/internal/service/auditlog"
	"github.com/glibera/readlogger/internal/service/auth"
	"github.com/glibera/readlogger/internal/service/catalog"
	"github.com/glibera/readlogger/internal/service/shelf"
	"github.com/glibera/readlogger/internal/service/support"
	"github.com/glibera/readlogger/internal/transport/middleware"
	"github.com/glibera/readlogger/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, builds the services and the route table, and serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	authors := authorrepo.New(pool)
	books := bookrepo.New(pool)
	entries := userbookrepo.New(pool)
	records := auditlogrepo.New(pool)
	refs := refdatarepo.New(pool)

	sender, err := mail.NewSender(cfg.Mail, logger)
	if err != nil {
		return fmt.Errorf("create mail sender: %w", err)
	}
	mailer := mail.NewConfirmMailer(sender, cfg.Mail.ConfirmLinkFmt)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	auditSvc := auditlog.NewService(logger, records, cfg.API.PageSize)
	authSvc := auth.NewService(logger, users, txManager, jwtManager, auditSvc, mailer, cfg.Auth)
	shelfSvc := shelf.NewService(logger, entries, books, authors, refs, txManager, auditSvc, cfg.API)
	catalogSvc := catalog.NewService(logger, authors, books, cfg.API.PageSize)
	supportSvc := support.NewService(logger, refs)

	rl := middleware.NewRateLimiter(time.Minute)
	defer rl.Stop()

	mux := rest.NewRouter(rest.Handlers{
		Auth:    rest.NewAuthHandler(authSvc, logger),
		Shelf:   rest.NewShelfHandler(shelfSvc, logger),
		Catalog: rest.NewCatalogHandler(catalogSvc, logger),
		History: rest.NewHistoryHandler(auditSvc, logger),
		Support: rest.NewSupportHandler(supportSvc, logger),
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
	}, rl.Limit(cfg.API.AuthRatePerMinute))

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtManager),
	)(mux)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")

	return nil
}
