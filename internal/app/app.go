package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/yoshuavic8/church-management-sub002/internal/backend"
	"github.com/yoshuavic8/church-management-sub002/internal/capture"
	"github.com/yoshuavic8/church-management-sub002/internal/config"
	"github.com/yoshuavic8/church-management-sub002/internal/handler"
	"github.com/yoshuavic8/church-management-sub002/internal/middleware"
	"github.com/yoshuavic8/church-management-sub002/internal/notification"
	"github.com/yoshuavic8/church-management-sub002/internal/repository"
	"github.com/yoshuavic8/church-management-sub002/internal/router"
	"github.com/yoshuavic8/church-management-sub002/internal/scheduler"
	"github.com/yoshuavic8/church-management-sub002/internal/service"
	"github.com/yoshuavic8/church-management-sub002/internal/service/ports"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
	checkin    *service.CheckinService
	decoder    *capture.LiveDecoder
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"checkin-gateway",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if cfg.Postgres.Enabled {
		if err = app.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
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
	client := backend.NewClient(
		a.cfg.Backend.BaseURL,
		a.cfg.Backend.Token,
		a.cfg.Backend.Timeout,
		a.log,
	)

	n, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.ChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	var journal ports.ScanJournal = repository.NopJournal{}
	if a.db != nil {
		journal = repository.NewScanLogRepo(a.db)
	}

	a.checkin = service.NewCheckinService(client, journal, a.log, service.CheckinOptions{
		MeetingID:        a.cfg.Checkin.MeetingID,
		SuccessBannerTTL: a.cfg.Checkin.SuccessBannerTTL,
		ErrorBannerTTL:   a.cfg.Checkin.ErrorBannerTTL,
		RecentLimit:      a.cfg.Checkin.RecentLimit,
	})
	meetingService := service.NewMeetingService(client, n, a.log, a.cfg.Checkin.LiveWindow)
	actorCache := service.NewActorCache()

	a.scheduler = scheduler.New(
		a.checkin,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	if a.cfg.Checkin.CameraURL != "" {
		a.decoder = capture.NewLiveDecoder(
			capture.OpenMJPEG(a.cfg.Checkin.CameraURL, nil),
			a.cfg.Checkin.SampleInterval,
			a.log,
		)
	}

	h := handler.NewHandler(a.checkin, meetingService, a.cfg.Checkin.MeetingID)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.AdminOnly(actorCache, client, a.log),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
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

	if a.decoder != nil {
		go a.decoder.Start(ctx)
		go a.consumeScans(ctx)
	}

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

// consumeScans feeds camera decodes into the check-in pipeline. Every
// emission is acknowledged with Resume so the decoder re-acquires the camera
// for the next badge.
func (a *App) consumeScans(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case res := <-a.decoder.Results():
			if res.Err != nil {
				a.log.Error("live capture failed",
					logger.String("error", res.Err.Error()),
				)
				a.decoder.Resume()
				continue
			}

			if _, err := a.checkin.HandleScan(ctx, res.Text); err != nil {
				a.log.LogAttrs(ctx, logger.WarnLevel, "live scan rejected",
					logger.String("error", err.Error()),
				)
			}
			a.decoder.Resume()
		}
	}
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

	if a.decoder != nil {
		a.decoder.Stop()
	}
	a.checkin.Close()

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
