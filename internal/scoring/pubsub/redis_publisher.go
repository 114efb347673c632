package pubsub

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const ChannelScoresBroadcast = "scores_updated_broadcast"

type RedisBroadcaster struct {
	r *redis.Client
}

func NewRedisBroadcaster(r *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{r: r}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.r.Publish(ctx, channel, payload).Err()
}

// Payload enviado após cada execução de job que mexe em scores
type ScoresUpdated struct {
	Job string    `json:"job"` // "bet-score-updater" | "group-score-aggregator"
	Ts  time.Time `json:"ts"`
}
