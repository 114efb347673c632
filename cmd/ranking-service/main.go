package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	rcache "github.com/radieske/tippspiel-poc/internal/ranking/cache"
	"github.com/radieske/tippspiel-poc/internal/ranking/httpapi"
	"github.com/radieske/tippspiel-poc/internal/ranking/repo"
	"github.com/radieske/tippspiel-poc/internal/ranking/sub"
	sharedcache "github.com/radieske/tippspiel-poc/internal/shared/cache"
	"github.com/radieske/tippspiel-poc/internal/shared/config"
	"github.com/radieske/tippspiel-poc/internal/shared/db"
	"github.com/radieske/tippspiel-poc/internal/shared/logger"
	"github.com/radieske/tippspiel-poc/internal/shared/metrics"

	"github.com/radieske/tippspiel-poc/internal/ranking"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	// conecta com db Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	// conecta com cache Redis
	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("failed to connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	// deps
	readRepo := &repo.ReadRepo{DB: pg}
	cache := rcache.New(redisClient)

	api := &httpapi.API{
		Log:     log,
		Ranking: &ranking.Builder{Repo: readRepo},
		Repo:    readRepo,
		Cache:   cache,
		TTL:     cfg.RankingCacheTTL,
	}

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Invalida o ranking cacheado quando o scoring-worker avisa que os scores mudaram
	sub.StartRedisSubscriber(ctx, log, redisClient, cfg.RedisPubSubChannel, func(ctx context.Context) {
		if err := cache.Invalidate(ctx); err != nil {
			log.Warn("ranking cache invalidate failed", zap.Error(err))
		}
	})

	// metrics/health
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return redisClient.Ping(ctx).Err()
	})

	// HTTP público
	apiSrv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: api.Router(),
	}

	go func() {
		<-ctx.Done()
		shCtx, shCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shCancel()
		_ = apiSrv.Shutdown(shCtx)
	}()

	log.Info("ranking-service listening", zap.String("addr", apiSrv.Addr))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
	log.Info("ranking-service stopped")
}
