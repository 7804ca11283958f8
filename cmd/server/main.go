// @title EventHub API
// @version 1.0
// @description Event registration, dashboards, achievements and participation reports.
// @BasePath /api
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventhub/config"
	_ "eventhub/docs"
	"eventhub/internal/adapters/auth"
	"eventhub/internal/adapters/email"
	"eventhub/internal/db"
	httpapi "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/domain"
	"eventhub/internal/repository/memory"
	"eventhub/internal/repository/postgres"
	"eventhub/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store := memory.NewStore()
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	if cfg.SeedDemoData {
		if err := services.SeedDemoData(ctx, store, hasher); err != nil {
			return err
		}
		logger.Info("demo data seeded")
	}

	var archive domain.ReportArchive
	if cfg.DBUrl != "" {
		conn, err := db.OpenPostgres(ctx, cfg.DBUrl)
		if err != nil {
			return err
		}
		defer closeDB(conn, logger)
		if err := db.EnsureSchema(ctx, conn); err != nil {
			return err
		}
		archive = postgres.NewReportRepository(conn)
		logger.Info("report archive enabled")
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	userService := services.NewUserService(store, hasher, emailService, logger)
	reportService := services.NewReportService(store, store, archive, emailService, logger)

	router := httpapi.NewRouter(httpapi.Controllers{
		Users:         controllers.NewUserController(logger, userService, store),
		Events:        controllers.NewEventController(logger, store),
		Registrations: controllers.NewRegistrationController(logger, store),
		Dashboard:     controllers.NewDashboardController(logger, store),
		Achievements:  controllers.NewAchievementController(logger, store),
		Reports:       controllers.NewReportController(logger, reportService),
	})
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.RequestID(middleware.LoggingMiddleware(logger, router)))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

func closeDB(conn *sql.DB, logger *slog.Logger) {
	if err := conn.Close(); err != nil {
		logger.Warn("closing database", "err", err)
	}
}
