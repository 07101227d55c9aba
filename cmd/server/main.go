package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"regate/internal/confirmation"
	"regate/internal/organization"
	"regate/internal/platform/config"
	"regate/internal/platform/httpserver"
	"regate/internal/platform/logger"
	"regate/internal/platform/metrics"
	"regate/internal/platform/postgres"
	redisplatform "regate/internal/platform/redis"
	"regate/internal/policy"
	registrationHandler "regate/internal/registration/handler"
	"regate/internal/registration/service"
	registrationStore "regate/internal/registration/store"
	"regate/internal/registration/store/migrations"
	httptransport "regate/internal/transport/http"
	id "regate/pkg/domain"
	"regate/pkg/platform/audit"
	auditkafka "regate/pkg/platform/audit/kafka"
	auditworker "regate/pkg/platform/audit/worker"
)

// main wires dependencies and keeps the server lifecycle small. Every
// external system is optional: with no Postgres, Redis or Kafka configured
// the process runs fully in memory, which is the local-dev setup.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	pol, err := config.LoadPolicy(cfg.PolicyFile)
	if err != nil {
		log.Error("policy load failed", "file", cfg.PolicyFile, "error", err.Error())
		os.Exit(1)
	}

	db, err := postgres.Open(cfg.PostgresURL)
	if err != nil {
		log.Error("postgres connection failed", "error", err.Error())
		os.Exit(1)
	}

	healthChecks := map[string]httptransport.HealthCheck{}

	var (
		orgs     registrationHandler.OrganizationResolver
		accounts service.AccountQuery
	)
	if db != nil {
		if err := migrations.Run(db); err != nil {
			log.Error("migrations failed", "error", err.Error())
			os.Exit(1)
		}
		orgs = organization.NewPostgres(db)
		accounts = registrationStore.NewPostgres(db)
		healthChecks["postgres"] = db.PingContext
	} else {
		log.Warn("no postgres configured, using in-memory stores")
		memOrgs := organization.NewInMemory()
		seedDevOrganization(memOrgs, log)
		orgs = memOrgs
		accounts = registrationStore.NewInMemory()
	}

	emailOpts := []policy.EmailOption{}
	redisClient, err := redisplatform.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis connection failed", "error", err.Error())
		os.Exit(1)
	}
	if redisClient != nil {
		emailOpts = append(emailOpts, policy.WithDisposableSource(policy.NewRedisDisposableSource(redisClient.Client)))
		healthChecks["redis"] = redisClient.Health
	}

	var auditSink audit.Store = audit.NewInMemoryStore()
	if len(cfg.KafkaSeeds) > 0 {
		kafkaSink, err := auditkafka.New(cfg.KafkaSeeds)
		if err != nil {
			log.Error("kafka client failed", "error", err.Error())
			os.Exit(1)
		}
		auditSink = kafkaSink
	}
	channel := audit.NewChannelStore(1024)
	worker := auditworker.NewWorker(auditSink, channel.Inbox(), log)

	svc := service.NewService(
		accounts,
		policy.NewPasswordPolicy(pol.PasswordMinLength),
		policy.NewEmailPolicy(pol.DisposableDomains, emailOpts...),
		policy.NewArgon2Hasher(),
		confirmation.NewService(cfg.ConfirmationKey, pol.ConfirmationTTL),
		pol.NicknameMaxLength,
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithAuditPublisher(audit.NewPublisher(channel)),
	)

	router := httptransport.NewRouter(httptransport.Config{
		Logger:              log,
		Registration:        registrationHandler.New(svc, orgs, log),
		SignupRatePerMinute: 30,
		HealthChecks:        healthChecks,
	})
	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting regate", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if err := worker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server exited", "error", err.Error())
		os.Exit(1)
	}
	log.Info("shutdown complete")
}

// seedDevOrganization registers a host for local runs so signup requests
// against localhost resolve without a database.
func seedDevOrganization(orgs *organization.InMemory, log *slog.Logger) {
	host := os.Getenv("REGATE_DEV_ORG_HOST")
	if host == "" {
		host = "localhost"
	}
	org, err := organization.New(id.OrganizationID(uuid.New()), "Development", host, time.Now())
	if err != nil {
		log.Error("dev organization invalid", "host", host, "error", err.Error())
		return
	}
	if err := orgs.CreateIfHostAvailable(context.Background(), org); err != nil {
		log.Error("dev organization seed failed", "error", err.Error())
	}
}
