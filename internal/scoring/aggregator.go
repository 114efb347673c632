package scoring

import (
	"context"

	"go.uber.org/zap"
)

// Group identifica um grupo de apostadores.
type Group struct {
	ID   string
	Name string
}

// GroupStore define as operações de persistência usadas pelo GroupScoreAggregator.
type GroupStore interface {
	ListGroups(ctx context.Context) ([]Group, error)
	// MemberTotals retorna o total de pontos de cada membro do grupo
	// (apostas sem pontuação contam como 0).
	MemberTotals(ctx context.Context, groupID string) ([]int, error)
	UpdateScore(ctx context.Context, groupID string, score int) error
}

// GroupScoreAggregator recomputa o score agregado de cada grupo a partir dos
// totais dos membros. É recomputação completa, não incremental: o valor
// anterior não entra na conta. Grupos são independentes entre si.
type GroupScoreAggregator struct {
	Log    *zap.Logger
	Groups GroupStore

	OnUpdated func()       // métricas (counter++)
	OnError   func(string) // métricas por fase
}

// Run recomputa e grava o score de todos os grupos. Falha em um grupo não
// bloqueia os demais; o score antigo do grupo que falhou permanece válido.
func (a *GroupScoreAggregator) Run(ctx context.Context) error {
	groups, err := a.Groups.ListGroups(ctx)
	if err != nil {
		if a.OnError != nil {
			a.OnError("list")
		}
		return err
	}

	for _, g := range groups {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		totals, err := a.Groups.MemberTotals(ctx, g.ID)
		if err != nil {
			a.Log.Warn("group member totals failed", zap.String("groupId", g.ID), zap.Error(err))
			if a.OnError != nil {
				a.OnError("totals")
			}
			continue
		}

		score := truncatedAverage(totals)

		if err := a.Groups.UpdateScore(ctx, g.ID, score); err != nil {
			a.Log.Warn("group score update failed", zap.String("groupId", g.ID), zap.Error(err))
			if a.OnError != nil {
				a.OnError("update")
			}
			continue
		}
		if a.OnUpdated != nil {
			a.OnUpdated()
		}
	}

	return nil
}

// truncatedAverage é a média truncada dos totais; grupo vazio vale 0.
func truncatedAverage(totals []int) int {
	if len(totals) == 0 {
		return 0
	}
	sum := 0
	for _, t := range totals {
		sum += t
	}
	return sum / len(totals)
}
