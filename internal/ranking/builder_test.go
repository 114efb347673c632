package ranking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/tippspiel-poc/internal/ranking/dto"
)

type fakeTotals struct {
	entries []dto.RankingEntry
	err     error
}

func (f *fakeTotals) ListUserTotals(context.Context) ([]dto.RankingEntry, error) {
	return f.entries, f.err
}

func TestBuildRankingAscending(t *testing.T) {
	b := &Builder{Repo: &fakeTotals{entries: []dto.RankingEntry{
		{ID: "a", Name: "Anna", Score: 10},
		{ID: "b", Name: "Beat", Score: 3},
		{ID: "c", Name: "Cla", Score: 7},
	}}}

	got, err := b.BuildRanking(context.Background())
	require.NoError(t, err)

	// crescente por score: pior primeiro
	want := []dto.RankingEntry{
		{ID: "b", Name: "Beat", Score: 3},
		{ID: "c", Name: "Cla", Score: 7},
		{ID: "a", Name: "Anna", Score: 10},
	}
	assert.Equal(t, want, got)
}

func TestBuildRankingStableOnTies(t *testing.T) {
	b := &Builder{Repo: &fakeTotals{entries: []dto.RankingEntry{
		{ID: "a", Score: 5},
		{ID: "b", Score: 5},
		{ID: "c", Score: 2},
	}}}

	got, err := b.BuildRanking(context.Background())
	require.NoError(t, err)

	// empate preserva a ordem de entrada
	assert.Equal(t, []string{"c", "a", "b"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestBuildRankingError(t *testing.T) {
	b := &Builder{Repo: &fakeTotals{err: errors.New("db down")}}
	_, err := b.BuildRanking(context.Background())
	require.Error(t, err)
}
