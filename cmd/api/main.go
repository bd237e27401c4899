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
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/Harika-001-tech/prenatal-app/internal/audit"
	"github.com/Harika-001-tech/prenatal-app/internal/config"
	dbpkg "github.com/Harika-001-tech/prenatal-app/internal/db"
	infraRepo "github.com/Harika-001-tech/prenatal-app/internal/infra/repository"
	"github.com/Harika-001-tech/prenatal-app/internal/lock"
	"github.com/Harika-001-tech/prenatal-app/internal/logger"
	"github.com/Harika-001-tech/prenatal-app/internal/routes"
	"github.com/Harika-001-tech/prenatal-app/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New("prenatal-api", cfg.LogLevel, cfg.IsLocal())

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := routes.Deps{
		Config:   cfg,
		Location: timezone.Fixed(cfg.UTCOffsetMinutes),
		Log:      log,
	}

	// ======================================================
	// STORAGE
	// ======================================================
	var sinks []audit.Sink

	switch cfg.Storage {
	case config.StorageMemory:
		memLog := audit.NewMemoryLog()
		deps.Repo = infraRepo.NewMemoryRepository()
		deps.AuditReader = memLog
		sinks = append(sinks, memLog)

		log.Warn().Msg("using in-memory storage; data is lost on restart")

	default:
		db, err := dbpkg.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := dbpkg.Close(db); err != nil {
				log.Error().Err(err).Msg("close database")
			}
		}()

		store := audit.NewStore(db)
		deps.Repo = infraRepo.NewAppointmentGormRepository(db, cfg.PersistenceTimeout)
		deps.AuditReader = store
		sinks = append(sinks, store)
	}

	// ======================================================
	// PER-DOCTOR LOCK
	// ======================================================
	deps.Locker = lock.NewKeyedMutex()

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return err
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(ctx, cfg.PersistenceTimeout)
		err = rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return err
		}

		deps.Locker = lock.NewRedisLocker(rdb, cfg.LockTTL, "booking:doctor")
		log.Info().Msg("booking lock shared through redis")
	}

	// ======================================================
	// AUDIT
	// ======================================================
	if len(cfg.KafkaBrokers) > 0 {
		kafkaSink := audit.NewKafkaSink(cfg.KafkaBrokers, cfg.KafkaAuditTopic)
		defer kafkaSink.Close()
		sinks = append(sinks, kafkaSink)
	}

	deps.Audit = audit.NewDispatcher(logger.Module(log, "audit"), sinks...)
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := deps.Audit.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("audit queue not drained")
		}
	}()

	// ======================================================
	// HTTP
	// ======================================================
	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr()).Str("offset", deps.Location.String()).Msg("server running")
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

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
