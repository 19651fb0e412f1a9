// @title           Record Store API
// @version         1.0
// @description     Accounts and vinyl catalog for the record store.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	_ "github.com/vinylshop/record-store/docs"
	"github.com/vinylshop/record-store/internal/api"
	"github.com/vinylshop/record-store/internal/api/handler"
	"github.com/vinylshop/record-store/internal/core/service"
	mongodb "github.com/vinylshop/record-store/internal/infrastructure/db/mongo"
	redisdb "github.com/vinylshop/record-store/internal/infrastructure/db/redis"
	"github.com/vinylshop/record-store/internal/pkg/config"
	"github.com/vinylshop/record-store/internal/pkg/token"
	"github.com/vinylshop/record-store/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// LOG_LEVEL and ENV are unknown yet.
		boot := logger.New(logger.Options{Service: "record-store"})
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "record-store",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("disconnect mongodb")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	if err := mongodb.EnsureIndexes(ctx, userRepo, productRepo); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	created, err := mongodb.EnsureAdminUser(ctx, userRepo, mongodb.AdminSeed{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin user")
	}
	if created {
		log.Info().Str("email", cfg.Admin.Email).Msg("admin user created")
	}

	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTTTL)
	revocations := redisdb.NewRevocationStore(rdb)
	userService := service.NewUserService(userRepo, tokens, revocations, log)
	productService := service.NewProductService(productRepo, log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	e, err := api.NewRouter(api.Deps{
		Users:       userService,
		Products:    productService,
		Tokens:      tokens,
		Revocations: revocations,
		Checks: map[string]handler.Checker{
			"mongodb": func(ctx context.Context) error { return client.Ping(ctx, nil) },
			"redis":   func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		},
		Logger:   log,
		Registry: reg,
		Swagger:  true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build router")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("shutdown complete")
}
