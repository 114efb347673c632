package ranking

import (
	"context"
	"sort"

	"github.com/radieske/tippspiel-poc/internal/ranking/dto"
)

// TotalsReader fornece os totais de pontos por usuário.
type TotalsReader interface {
	ListUserTotals(ctx context.Context) ([]dto.RankingEntry, error)
}

// Builder monta o ranking de usuários sob demanda, sempre a partir dos
// scores correntes no banco.
type Builder struct {
	Repo TotalsReader
}

// BuildRanking retorna uma entrada por usuário, ordenada por score crescente
// (pior primeiro). Quem quiser "melhor primeiro" inverte do lado de lá.
func (b *Builder) BuildRanking(ctx context.Context) ([]dto.RankingEntry, error) {
	entries, err := b.Repo.ListUserTotals(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score < entries[j].Score
	})
	return entries, nil
}
