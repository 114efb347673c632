package repo

import (
	"context"
	"database/sql"

	"github.com/radieske/tippspiel-poc/internal/ranking/dto"
)

type ReadRepo struct {
	DB *sql.DB
}

// ListUserTotals retorna cada usuário com a soma dos scores das suas apostas.
// Apostas sem score (jogo ainda não pontuado) contam como 0.
func (r *ReadRepo) ListUserTotals(ctx context.Context) ([]dto.RankingEntry, error) {
	const q = `
		SELECT u.id, u.name, COALESCE(SUM(b.score), 0) AS total
		FROM users u
		LEFT JOIN bets b ON b.user_id = u.id
		GROUP BY u.id, u.name
		ORDER BY u.id;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []dto.RankingEntry
	for rows.Next() {
		var e dto.RankingEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Score); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// ListGroups retorna os grupos com o último score agregado gravado pelo job.
func (r *ReadRepo) ListGroups(ctx context.Context) ([]dto.Group, error) {
	const q = `
		SELECT id, name, score
		FROM bet_groups
		ORDER BY id;
	`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []dto.Group
	for rows.Next() {
		var g dto.Group
		var score sql.NullInt64
		if err := rows.Scan(&g.ID, &g.Name, &score); err != nil {
			return nil, err
		}
		if score.Valid {
			s := int(score.Int64)
			g.Score = &s
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// GetUserBets retorna as apostas de um usuário.
// Usuário inexistente retorna sql.ErrNoRows.
func (r *ReadRepo) GetUserBets(ctx context.Context, userID string) (*dto.UserBets, error) {
	out := &dto.UserBets{UserID: userID}
	if err := r.DB.QueryRowContext(ctx, `SELECT name FROM users WHERE id=$1`, userID).Scan(&out.Name); err != nil {
		return nil, err
	}

	const q = `
		SELECT id, game_id, home_goals, away_goals, score
		FROM bets
		WHERE user_id = $1
		ORDER BY id;
	`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b dto.UserBet
		var score sql.NullInt64
		if err := rows.Scan(&b.BetID, &b.GameID, &b.HomeGoals, &b.AwayGoals, &score); err != nil {
			return nil, err
		}
		if score.Valid {
			s := int(score.Int64)
			b.Score = &s
		}
		out.Bets = append(out.Bets, b)
	}
	return out, rows.Err()
}
