package sub

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/tippspiel-poc/internal/scoring/pubsub"
)

// StartRedisSubscriber inicia uma goroutine que escuta o canal Redis Pub/Sub
// de atualização de scores e chama onUpdate a cada aviso recebido
//
// Funcionamento:
// - Recebe mensagens JSON do canal Redis (publicadas pelo scoring-worker)
// - Desserializa para ScoresUpdated (só pra log)
// - Chama onUpdate (tipicamente a invalidação do cache de ranking)
func StartRedisSubscriber(ctx context.Context, log *zap.Logger, r *redis.Client, channel string, onUpdate func(context.Context)) {
	s := r.Subscribe(ctx, channel)
	ch := s.Channel()
	go func() {
		for {
			select {
			case <-ctx.Done():
				_ = s.Close() // encerra a inscrição ao finalizar o contexto
				return
			case msg := <-ch:
				if msg == nil {
					continue
				}
				var upd pubsub.ScoresUpdated
				if err := json.Unmarshal([]byte(msg.Payload), &upd); err != nil {
					log.Warn("scores_updated unmarshal failed", zap.Error(err))
					continue
				}
				log.Debug("scores updated broadcast", zap.String("job", upd.Job))
				onUpdate(ctx)
			}
		}
	}()
}
