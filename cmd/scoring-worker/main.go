package main

import (
	"context"
	"encoding/json"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/tippspiel-poc/internal/scoring"
	"github.com/radieske/tippspiel-poc/internal/scoring/producer"
	"github.com/radieske/tippspiel-poc/internal/scoring/pubsub"
	"github.com/radieske/tippspiel-poc/internal/scoring/repo"
	sharedcache "github.com/radieske/tippspiel-poc/internal/shared/cache"
	"github.com/radieske/tippspiel-poc/internal/shared/config"
	"github.com/radieske/tippspiel-poc/internal/shared/db"
	sharedkafka "github.com/radieske/tippspiel-poc/internal/shared/kafka"
	"github.com/radieske/tippspiel-poc/internal/shared/logger"
	"github.com/radieske/tippspiel-poc/internal/shared/metrics"
	"github.com/radieske/tippspiel-poc/internal/shared/schedule"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Agendas dos jobs: expressão inválida é erro de configuração, fatal aqui
	betSpec, err := schedule.Parse(cfg.BetScoreSchedule)
	if err != nil {
		log.Fatal("invalid bet score schedule", zap.Error(err))
	}
	groupSpec, err := schedule.Parse(cfg.GroupScoreSchedule)
	if err != nil {
		log.Fatal("invalid group score schedule", zap.Error(err))
	}

	// Inicializa dependências: Postgres e Redis
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pg.Close()

	redisClient, err := sharedcache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer redisClient.Close()

	// Kafka writer para eventos bet_scored
	writer := sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetScored)
	defer writer.Close()

	// Métricas Prometheus para monitoramento dos jobs
	scored := prometheus.NewCounter(prometheus.CounterOpts{Name: "scoring_bets_scored_total", Help: "apostas pontuadas"})
	skipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "scoring_bets_skipped_total", Help: "apostas puladas (jogo sem resultado)"})
	groupsUpd := prometheus.NewCounter(prometheus.CounterOpts{Name: "scoring_groups_updated_total", Help: "grupos com score recalculado"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "scoring_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(scored, skipped, groupsUpd, errorsBy)

	repository := repo.NewPostgres(pg)

	updater := &scoring.BetScoreUpdater{
		Log:       log,
		Bets:      repository,
		Publ:      producer.NewKafkaPublisher(writer),
		OnScored:  func() { scored.Inc() },
		OnSkipped: func() { skipped.Inc() },
		OnError:   func(stage string) { errorsBy.WithLabelValues("bet_" + stage).Inc() },
	}

	aggregator := &scoring.GroupScoreAggregator{
		Log:       log,
		Groups:    repository,
		OnUpdated: func() { groupsUpd.Inc() },
		OnError:   func(stage string) { errorsBy.WithLabelValues("group_" + stage).Inc() },
	}

	// Broadcaster para avisar o lado de leitura que os scores mudaram
	broadcaster := pubsub.NewRedisBroadcaster(redisClient)
	announce := func(ctx context.Context, job string) {
		b, _ := json.Marshal(pubsub.ScoresUpdated{Job: job, Ts: time.Now()})

		bctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
		defer cancel()

		if err := broadcaster.Publish(bctx, cfg.RedisPubSubChannel, b); err != nil {
			log.Warn("scores_updated publish failed", zap.Error(err))
		}
	}

	// Servidor HTTP para métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return redisClient.Ping(ctx).Err()
	})

	betRunner := schedule.NewRunner(log, "bet-score-updater", betSpec, cfg.JobRunTimeout, func(ctx context.Context) error {
		if err := updater.Run(ctx, time.Now()); err != nil {
			return err
		}
		announce(context.WithoutCancel(ctx), "bet-score-updater")
		return nil
	})

	groupRunner := schedule.NewRunner(log, "group-score-aggregator", groupSpec, cfg.JobRunTimeout, func(ctx context.Context) error {
		if err := aggregator.Run(ctx); err != nil {
			return err
		}
		announce(context.WithoutCancel(ctx), "group-score-aggregator")
		return nil
	})

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Os dois jobs rodam em goroutines próprias e podem se sobrepor entre si
	// (tocam registros primários distintos); cada um nunca sobrepõe a si mesmo.
	go betRunner.Start()
	go groupRunner.Start()

	log.Info("scoring-worker started",
		zap.String("betScoreSchedule", betSpec.String()),
		zap.String("groupScoreSchedule", groupSpec.String()),
	)

	<-ctx.Done()
	betRunner.Stop()
	groupRunner.Stop()
	log.Info("scoring-worker stopped")
}
