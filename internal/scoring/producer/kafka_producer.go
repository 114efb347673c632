package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/radieske/tippspiel-poc/pkg/contracts/events"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(w *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: w}
}

func (p *KafkaPublisher) PublishBetScored(ctx context.Context, e events.BetScored) error {
	e.TsUnixMs = time.Now().UnixMilli()
	b, _ := json.Marshal(e)
	return p.Writer.WriteMessages(ctx, kafka.Message{Key: []byte(e.BetID), Value: b})
}
