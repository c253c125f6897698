package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/microservices/callcenter/internal/api"
	"github.com/samandr77/microservices/callcenter/internal/clients/oauth"
	"github.com/samandr77/microservices/callcenter/internal/repository"
	"github.com/samandr77/microservices/callcenter/internal/repository/memory"
	"github.com/samandr77/microservices/callcenter/internal/service"
	"github.com/samandr77/microservices/callcenter/pkg/broker"
	"github.com/samandr77/microservices/callcenter/pkg/config"
	"github.com/samandr77/microservices/callcenter/pkg/job"
	"github.com/samandr77/microservices/callcenter/pkg/logger"
	"github.com/samandr77/microservices/callcenter/pkg/mailer"
	"github.com/samandr77/microservices/callcenter/pkg/metrics"
	"github.com/samandr77/microservices/callcenter/pkg/postgres"
)

const (
	ReadTimeout     = 5 * time.Second
	WriteTimeout    = 30 * time.Second
	ShutdownTimeout = 10 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.Logger.Level))
	slog.SetDefault(l)

	generated, err := cfg.FillMissingSecrets()
	panicOnErr("generate secrets", err)

	for _, name := range generated {
		slog.WarnContext(ctx, name+" is empty, using a random secret for this process")
	}

	store := memory.NewSeeded()

	var crm service.CRMRepository = store

	if cfg.Postgres.DSN != "" {
		err = postgres.UpMigrations(cfg.Postgres.DSN)
		panicOnErr("up migrations", err)

		pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
		panicOnErr("connect to postgres", err)
		defer pool.Close()

		crm = repository.New(pool)

		slog.InfoContext(ctx, "crm data served from postgres")
	}

	var events interface {
		service.EventPublisher
		Close()
	} = broker.LogPublisher{}

	if len(cfg.Kafka.Brokers) > 0 {
		events = broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
	}
	defer events.Close()

	var notifier service.Notifier = mailer.Noop{}
	if cfg.Mailer.Host != "" {
		notifier = mailer.New(cfg.Mailer)
	}

	m := metrics.New()

	providers := oauth.NewRegistry(oauth.Providers(cfg)...)
	connector := oauth.NewClient(cfg.OAuth.Timeout, cfg.OAuth.RetryAttempts)

	s := service.New(cfg, store, crm, providers, connector, events, notifier, m)

	limiter := api.NewRateLimiter(cfg.N8N.RateLimitRPS, cfg.N8N.RateLimitBurst)

	if cfg.N8N.APIKey == "" {
		slog.WarnContext(ctx, "N8N_API_KEY is empty, bridge requests will be rejected")
	}

	jobs := job.NewService(job.WithObserver(m.JobRun)).
		TryRegisterJob(cfg.Job.StateCleanupEnabled, "delete expired oauth states", cfg.Job.StateCleanupInterval, s.CleanupExpiredStates).
		TryRegisterJob(cfg.Job.LimiterPruneEnabled, "prune bridge rate limiter", cfg.Job.LimiterPruneInterval, limiter.Prune)
	jobs.Start(ctx)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s, cfg.N8N, limiter)

	router := api.NewRouter(handler, mw, m)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port, "app_url", cfg.AppURL)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer shutdownCancel()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}

		cancel()
		jobs.Stop()
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
