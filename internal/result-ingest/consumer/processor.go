package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/radieske/tippspiel-poc/internal/result-ingest/repo"
	sharedkafka "github.com/radieske/tippspiel-poc/internal/shared/kafka"
	"github.com/radieske/tippspiel-poc/pkg/contracts/events"
)

// MessageReader é o que o Processor precisa de um consumer Kafka.
// *kafka.Reader satisfaz; testes usam um fake.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// ResultStore persiste resultados de jogos.
type ResultStore interface {
	RecordResult(ctx context.Context, gameID string, homeGoals, awayGoals int) error
}

// Processor consome eventos de resultado do Kafka e grava os gols no banco.
// Mensagens inválidas ou de jogo desconhecido vão para a DLQ (se configurada).
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa.
type Processor struct {
	Log    *zap.Logger
	Reader MessageReader
	Repo   ResultStore
	DLQ    *kafka.Writer // opcional

	OnConsumed func()       // métricas (counter++)
	OnPersist  func()       // métricas
	OnError    func(string) // métricas por fase
}

// Run inicia o loop principal de consumo e processamento das mensagens Kafka
func (p *Processor) Run(ctx context.Context) error {
	for {
		m, err := p.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // encerra se o contexto for cancelado
			}
			p.Log.Warn("kafka read failed", zap.Error(err))
			if p.OnError != nil {
				p.OnError("read")
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		if p.OnConsumed != nil {
			p.OnConsumed()
		}

		var ev events.GameResultRecorded
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			p.Log.Warn("invalid message", zap.Error(err))
			if p.OnError != nil {
				p.OnError("decode")
			}
			p.toDLQ(ctx, m.Key, m.Value)
			continue
		}
		if ev.GameID == "" || ev.HomeGoals < 0 || ev.AwayGoals < 0 {
			p.Log.Warn("invalid game result", zap.String("gameId", ev.GameID))
			if p.OnError != nil {
				p.OnError("validate")
			}
			p.toDLQ(ctx, m.Key, m.Value)
			continue
		}

		if err := p.Repo.RecordResult(ctx, ev.GameID, ev.HomeGoals, ev.AwayGoals); err != nil {
			if errors.Is(err, repo.ErrGameNotFound) {
				p.Log.Warn("result for unknown game", zap.String("gameId", ev.GameID))
				if p.OnError != nil {
					p.OnError("unknown_game")
				}
				p.toDLQ(ctx, m.Key, m.Value)
				continue
			}
			p.Log.Warn("db record result failed", zap.String("gameId", ev.GameID), zap.Error(err))
			if p.OnError != nil {
				p.OnError("db")
			}
			continue
		}
		if p.OnPersist != nil {
			p.OnPersist()
		}
	}
}

func (p *Processor) toDLQ(ctx context.Context, key, payload []byte) {
	if p.DLQ == nil {
		return
	}
	if err := sharedkafka.WriteJSON(ctx, p.DLQ, string(key), payload); err != nil {
		p.Log.Warn("dlq write failed", zap.Error(err))
		if p.OnError != nil {
			p.OnError("dlq")
		}
	}
}
