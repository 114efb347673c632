package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/radieske/tippspiel-poc/internal/result-ingest/consumer"
	"github.com/radieske/tippspiel-poc/internal/result-ingest/repo"
	"github.com/radieske/tippspiel-poc/internal/shared/config"
	"github.com/radieske/tippspiel-poc/internal/shared/db"
	sharedkafka "github.com/radieske/tippspiel-poc/internal/shared/kafka"
	"github.com/radieske/tippspiel-poc/internal/shared/logger"
	"github.com/radieske/tippspiel-poc/internal/shared/metrics"
)

func main() {
	cfg := config.Load()
	log, err := logger.New(cfg.ServiceName, cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	// Conexão com banco de dados Postgres para gravação dos resultados
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg connect", zap.Error(err))
	}
	defer pg.Close()

	// Kafka consumer: consome o feed externo de resultados de jogos
	reader := sharedkafka.NewReader(cfg.KafkaBrokers, cfg.TopicGameResults, "result-ingest")
	defer reader.Close()

	var dlqWriter *sharedkafka.Writer
	if cfg.TopicGameResultsDLQ != "" {
		dlqWriter = sharedkafka.NewWriter(cfg.KafkaBrokers, cfg.TopicGameResultsDLQ)
		defer dlqWriter.Close()
	}

	// Métricas Prometheus para monitoramento do processamento
	consumed := prometheus.NewCounter(prometheus.CounterOpts{Name: "result_ingest_messages_consumed_total", Help: "mensagens consumidas"})
	persist := prometheus.NewCounter(prometheus.CounterOpts{Name: "result_ingest_db_writes_total", Help: "resultados gravados no banco"})
	errorsBy := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "result_ingest_errors_total", Help: "erros por estágio"}, []string{"stage"})
	prometheus.MustRegister(consumed, persist, errorsBy)

	proc := &consumer.Processor{
		Log:        log,
		Reader:     reader,
		Repo:       repo.NewPostgres(pg),
		DLQ:        dlqWriter,
		OnConsumed: func() { consumed.Inc() },
		OnPersist:  func() { persist.Inc() },
		OnError:    func(stage string) { errorsBy.WithLabelValues(stage).Inc() },
	}

	// Servidor HTTP para métricas e health check
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return pg.PingContext(ctx)
	})

	// Sinalização para shutdown gracioso (SIGINT/SIGTERM)
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("result-ingest-worker started", zap.String("consume", cfg.TopicGameResults))
	if err := proc.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal("processor stopped with error", zap.Error(err))
	}
	log.Info("result-ingest-worker stopped")
}
