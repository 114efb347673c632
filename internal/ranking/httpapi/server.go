package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/tippspiel-poc/internal/ranking"
	"github.com/radieske/tippspiel-poc/internal/ranking/cache"
	"github.com/radieske/tippspiel-poc/internal/ranking/dto"
)

// Reader define as consultas de leitura usadas pelos handlers HTTP
type Reader interface {
	ListGroups(ctx context.Context) ([]dto.Group, error)
	GetUserBets(ctx context.Context, userID string) (*dto.UserBets, error)
}

// API expõe os endpoints REST de ranking e grupos
// Utiliza o builder de ranking, um repositório de leitura (Postgres) e cache (Redis)
type API struct {
	Log     *zap.Logger
	Ranking *ranking.Builder
	Repo    Reader
	Cache   *cache.Cache  // opcional; nil desliga o cache
	TTL     time.Duration // TTL do ranking cacheado
}

// Router retorna o roteador HTTP com os endpoints REST
func (a *API) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/ranking", a.getRanking) // GET, ordenado por score crescente
	mux.HandleFunc("/v1/groups", a.listGroups)  // GET
	mux.HandleFunc("/v1/users/", a.getUserBets) // GET /v1/users/{id}/bets
	return mux
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// getRanking retorna o ranking de usuários, preferencialmente do cache.
// A ordenação é crescente por score (pior primeiro); clientes que querem
// leaderboard invertem na apresentação.
func (a *API) getRanking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if a.Cache != nil {
		var fromCache []dto.RankingEntry
		if ok, _ := a.Cache.GetRanking(r.Context(), &fromCache); ok {
			writeJSON(w, http.StatusOK, fromCache)
			return
		}
	}

	entries, err := a.Ranking.BuildRanking(r.Context())
	if err != nil {
		a.Log.Error("build ranking", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if entries == nil {
		entries = []dto.RankingEntry{}
	}

	if a.Cache != nil {
		_ = a.Cache.SetRanking(r.Context(), entries, a.TTL)
	}
	writeJSON(w, http.StatusOK, entries)
}

// listGroups retorna os grupos com o último score agregado
func (a *API) listGroups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	groups, err := a.Repo.ListGroups(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if groups == nil {
		groups = []dto.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

// getUserBets retorna as apostas de um usuário: GET /v1/users/{id}/bets
func (a *API) getUserBets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/v1/users/")
	userID, tail, ok := strings.Cut(rest, "/")
	if !ok || userID == "" || tail != "bets" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	bets, err := a.Repo.GetUserBets(r.Context(), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if bets.Bets == nil {
		bets.Bets = []dto.UserBet{}
	}
	writeJSON(w, http.StatusOK, bets)
}
