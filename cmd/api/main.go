package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/campuskit/helpdesk-service/internal/api/http"
	"github.com/campuskit/helpdesk-service/internal/api/http/handlers"
	"github.com/campuskit/helpdesk-service/internal/auth"
	"github.com/campuskit/helpdesk-service/internal/config"
	"github.com/campuskit/helpdesk-service/internal/events"
	"github.com/campuskit/helpdesk-service/internal/notifier"
	"github.com/campuskit/helpdesk-service/internal/observability"
	"github.com/campuskit/helpdesk-service/internal/persistence"
	"github.com/campuskit/helpdesk-service/internal/repository"
	"github.com/campuskit/helpdesk-service/internal/routing"
	"github.com/campuskit/helpdesk-service/internal/service"
	"github.com/campuskit/helpdesk-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	smtpMailer, err := notifier.NewSMTPMailer(cfg.Mail, logger)
	if err != nil {
		logger.Fatal("failed to build smtp mailer", zap.Error(err))
	}
	var mailer notifier.Mailer
	if smtpMailer != nil {
		mailer = smtpMailer
	}

	routes := routing.NewTable(cfg.Mail.Domain, cfg.Mail.DefaultMailbox)

	var ticketRepo repository.TicketRepository
	if pool := pg.PoolHandle(); pool != nil {
		ticketRepo = repository.NewTicketRepository(pool)
	} else {
		logger.Warn("using in-memory ticket store; data will not survive restarts")
		ticketRepo = repository.NewMemoryTicketRepository()
	}

	dispatcher := events.NewInMemoryDispatcher()

	queryService := service.NewQueryService(service.QueryDependencies{
		TicketRepo: ticketRepo,
		Dispatcher: dispatcher,
		Cache:      redis,
		CacheCfg:   cfg.Cache,
		Logger:     logger,
	})
	notificationService := service.NewNotificationService(dispatcher, mailer, routes, logger)
	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Queries:   handlers.NewQueriesHandler(queryService),
		Tickets:   handlers.NewTicketsHandler(queryService),
		Pages:     handlers.NewPagesHandler(),
		AdminAuth: auth.NewBasicAuth(cfg.Admin),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
