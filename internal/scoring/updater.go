package scoring

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/tippspiel-poc/pkg/contracts/events"
)

// Bet é uma aposta hidratada com os dados do jogo, pronta para pontuação.
// Result nil significa jogo ainda sem resultado registrado.
type Bet struct {
	ID        string
	UserID    string
	GameID    string
	Predicted Scoreline
	Score     *int // nil = ainda não pontuada

	GameTime time.Time
	Result   *Scoreline
}

// BetStore define as operações de persistência usadas pelo BetScoreUpdater.
type BetStore interface {
	ListBetsForDay(ctx context.Context, start, end time.Time) ([]Bet, error)
	SaveScore(ctx context.Context, betID string, score int) error
}

// BetScoreUpdater é o job que mantém Bet.score atualizado para os jogos do dia.
// O escopo é o dia corrente da execução: apostas de jogos agendados em outros
// dias não são tocadas por esta rotina.
// Callbacks de métricas podem ser usadas para monitoramento de cada etapa.
type BetScoreUpdater struct {
	Log  *zap.Logger
	Bets BetStore
	Publ interface {
		PublishBetScored(context.Context, events.BetScored) error
	} // opcional

	OnScored  func()       // métricas (counter++)
	OnSkipped func()       // métricas: jogo sem resultado
	OnError   func(string) // métricas por fase
}

// Run pontua as apostas dos jogos agendados no dia de "asOf" que já têm
// resultado. A pontuação é recomputação pura: rodar de novo com os mesmos
// dados produz os mesmos valores. Falha ao salvar uma aposta não impede as
// demais da mesma execução.
func (u *BetScoreUpdater) Run(ctx context.Context, asOf time.Time) error {
	start := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, asOf.Location())
	end := start.AddDate(0, 0, 1)

	bets, err := u.Bets.ListBetsForDay(ctx, start, end)
	if err != nil {
		if u.OnError != nil {
			u.OnError("list")
		}
		return err
	}

	for _, b := range bets {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if b.Result == nil {
			// jogo ainda sem resultado: não é erro, só pula
			u.Log.Debug("bet skipped, game not played yet",
				zap.String("betId", b.ID),
				zap.String("gameId", b.GameID),
			)
			if u.OnSkipped != nil {
				u.OnSkipped()
			}
			continue
		}

		score := Points(b.Predicted, *b.Result)

		if err := u.Bets.SaveScore(ctx, b.ID, score); err != nil {
			u.Log.Warn("bet score save failed",
				zap.String("betId", b.ID),
				zap.Error(err),
			)
			if u.OnError != nil {
				u.OnError("save")
			}
			// próxima agenda recomputa; segue para as demais apostas
			continue
		}
		if u.OnScored != nil {
			u.OnScored()
		}

		if u.Publ != nil {
			ev := events.BetScored{
				BetID:  b.ID,
				UserID: b.UserID,
				GameID: b.GameID,
				Score:  score,
			}
			if err := u.Publ.PublishBetScored(ctx, ev); err != nil {
				u.Log.Warn("bet_scored publish failed", zap.String("betId", b.ID), zap.Error(err))
				if u.OnError != nil {
					u.OnError("publish")
				}
			}
		}
	}

	return nil
}
