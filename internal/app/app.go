package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/brinto-swe/event-management-system/internal/auth"
	"github.com/brinto-swe/event-management-system/internal/config"
	"github.com/brinto-swe/event-management-system/internal/handler"
	"github.com/brinto-swe/event-management-system/internal/metrics"
	"github.com/brinto-swe/event-management-system/internal/middleware"
	"github.com/brinto-swe/event-management-system/internal/notification"
	"github.com/brinto-swe/event-management-system/internal/repository"
	"github.com/brinto-swe/event-management-system/internal/router"
	"github.com/brinto-swe/event-management-system/internal/scheduler"
	"github.com/brinto-swe/event-management-system/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	registry   *prometheus.Registry
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventManager",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	sessionRepo := repository.NewSessionRepo(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	categoryRepo := repository.NewCategoryRepo(a.db)
	rsvpRepo := repository.NewRSVPRepo(a.db)
	statsRepo := repository.NewStatsRepo(a.db)

	a.registry = prometheus.NewRegistry()
	a.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(a.db.Master, a.cfg.Postgres.Database),
	)
	m := metrics.New(a.registry)

	email := notification.NewEmailNotifier(a.cfg.SMTP, a.log, m)
	telegram, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log, m)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	accountService := service.NewAccountService(
		userRepo,
		sessionRepo,
		auth.NewActivationTokens(a.cfg.Auth.SecretKey, a.cfg.Auth.ActivationTTL),
		auth.NewPasswordHasher(a.cfg.Auth.BcryptCost),
		email,
		a.cfg.Auth.SiteURL,
		a.cfg.Auth.SessionTTL,
		a.log,
	)
	loc, err := a.cfg.Server.Location()
	if err != nil {
		return err
	}

	userService := service.NewUserService(userRepo, a.log)
	eventService := service.NewEventService(eventRepo, categoryRepo, rsvpRepo, loc, a.log)
	categoryService := service.NewCategoryService(categoryRepo, a.log)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo, userRepo, notification.Fanout{email, telegram}, a.log)
	dashboardService := service.NewDashboardService(statsRepo, rsvpRepo, loc)

	a.scheduler = scheduler.New(
		accountService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		accountService,
		userService,
		eventService,
		categoryService,
		rsvpService,
		dashboardService,
		handler.SessionCookie{
			Name:   a.cfg.Auth.CookieName,
			Secure: a.cfg.Auth.CookieSecure,
			TTL:    a.cfg.Auth.SessionTTL,
		},
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}),
		middleware.Authenticate(accountService, a.cfg.Auth.CookieName, a.log),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Metrics(m),
		middleware.Timeout(a.cfg.Server.RequestTimeout),
	)

	c := cors.New(cors.Options{
		AllowedOrigins:   a.cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{"Location", middleware.RequestIDHeader},
		AllowCredentials: true,
	})

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      c.Handler(r),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
