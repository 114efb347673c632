package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/tippspiel-poc/internal/ranking"
	"github.com/radieske/tippspiel-poc/internal/ranking/dto"
)

// fakeRepo implementa Reader e ranking.TotalsReader em memória
type fakeRepo struct {
	totals []dto.RankingEntry
	groups []dto.Group
	users  map[string]*dto.UserBets
}

func (f *fakeRepo) ListUserTotals(context.Context) ([]dto.RankingEntry, error) {
	return f.totals, nil
}

func (f *fakeRepo) ListGroups(context.Context) ([]dto.Group, error) {
	return f.groups, nil
}

func (f *fakeRepo) GetUserBets(_ context.Context, userID string) (*dto.UserBets, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return u, nil
}

func newTestAPI(repo *fakeRepo) *API {
	return &API{
		Log:     zap.NewNop(),
		Ranking: &ranking.Builder{Repo: repo},
		Repo:    repo,
		// sem cache nos testes
	}
}

func TestGetRanking(t *testing.T) {
	api := newTestAPI(&fakeRepo{totals: []dto.RankingEntry{
		{ID: "a", Name: "Anna", Score: 10},
		{ID: "b", Name: "Beat", Score: 3},
		{ID: "c", Name: "Cla", Score: 7},
	}})
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/ranking")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []dto.RankingEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 3)

	// resposta vem em ordem crescente de score
	assert.Equal(t, []string{"b", "c", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestGetRankingEmpty(t *testing.T) {
	api := newTestAPI(&fakeRepo{})
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/ranking")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []dto.RankingEntry
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Empty(t, got) // lista vazia, não null
}

func TestListGroups(t *testing.T) {
	seven := 7
	api := newTestAPI(&fakeRepo{groups: []dto.Group{
		{ID: "g1", Name: "Kollegen", Score: &seven},
		{ID: "g2", Name: "Neu"}, // ainda sem agregação
	}})
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/groups")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []dto.Group
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 2)
	require.NotNil(t, got[0].Score)
	assert.Equal(t, 7, *got[0].Score)
	assert.Nil(t, got[1].Score)
}

func TestGetUserBets(t *testing.T) {
	ten := 10
	api := newTestAPI(&fakeRepo{users: map[string]*dto.UserBets{
		"u1": {UserID: "u1", Name: "Anna", Bets: []dto.UserBet{
			{BetID: "b1", GameID: "g1", HomeGoals: 2, AwayGoals: 1, Score: &ten},
		}},
	}})
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/users/u1/bets")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.UserBets
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Anna", got.Name)
	require.Len(t, got.Bets, 1)
	require.NotNil(t, got.Bets[0].Score)
	assert.Equal(t, 10, *got.Bets[0].Score)
}

func TestGetUserBetsNotFound(t *testing.T) {
	api := newTestAPI(&fakeRepo{users: map[string]*dto.UserBets{}})
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/v1/users/ghost/bets")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRankingMethodNotAllowed(t *testing.T) {
	api := newTestAPI(&fakeRepo{})
	srv := httptest.NewServer(api.Router())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/v1/ranking", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
