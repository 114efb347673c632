package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/radieske/tippspiel-poc/internal/scoring"
)

// Postgres implementa BetStore e GroupStore sobre o banco Postgres.
// Os campos de score (bets.score, bet_groups.score) são de propriedade
// exclusiva dos jobs; o resto das tabelas é só leitura aqui.
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório de pontuação
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// ListBetsForDay retorna as apostas cujos jogos estão agendados na janela
// [start, end), hidratadas com horário e resultado do jogo.
func (p *Postgres) ListBetsForDay(ctx context.Context, start, end time.Time) ([]scoring.Bet, error) {
	const q = `
		SELECT b.id, b.user_id, b.game_id, b.home_goals, b.away_goals, b.score,
		       g.date_time, g.home_goals, g.away_goals
		FROM bets b
		JOIN games g ON g.id = b.game_id
		WHERE g.date_time >= $1 AND g.date_time < $2
		ORDER BY b.id`
	rows, err := p.db.QueryContext(ctx, q, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scoring.Bet
	for rows.Next() {
		var b scoring.Bet
		var betScore, gameHome, gameAway sql.NullInt64
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.GameID, &b.Predicted.Home, &b.Predicted.Away, &betScore,
			&b.GameTime, &gameHome, &gameAway,
		); err != nil {
			return nil, err
		}
		if betScore.Valid {
			s := int(betScore.Int64)
			b.Score = &s
		}
		// NULL em qualquer gol = jogo sem resultado registrado
		if gameHome.Valid && gameAway.Valid {
			b.Result = &scoring.Scoreline{Home: int(gameHome.Int64), Away: int(gameAway.Int64)}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// SaveScore grava a pontuação de uma aposta (overwrite completo do campo).
func (p *Postgres) SaveScore(ctx context.Context, betID string, score int) error {
	_, err := p.db.ExecContext(ctx, `UPDATE bets SET score=$1 WHERE id=$2`, score, betID)
	return err
}

// ListGroups retorna todos os grupos de aposta.
func (p *Postgres) ListGroups(ctx context.Context) ([]scoring.Group, error) {
	const q = `SELECT id, name FROM bet_groups ORDER BY id`
	rows, err := p.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []scoring.Group
	for rows.Next() {
		var g scoring.Group
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// MemberTotals retorna o total de pontos de cada membro do grupo.
// Apostas sem pontuação contam como 0 (COALESCE); membro sem aposta idem.
func (p *Postgres) MemberTotals(ctx context.Context, groupID string) ([]int, error) {
	const q = `
		SELECT COALESCE(SUM(b.score), 0)
		FROM bet_group_members m
		LEFT JOIN bets b ON b.user_id = m.user_id
		WHERE m.group_id = $1
		GROUP BY m.user_id`
	rows, err := p.db.QueryContext(ctx, q, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int
	for rows.Next() {
		var total int
		if err := rows.Scan(&total); err != nil {
			return nil, err
		}
		out = append(out, total)
	}
	return out, rows.Err()
}

// UpdateScore grava o score agregado do grupo. UPDATE único: ou o valor novo
// entra inteiro, ou o anterior permanece.
func (p *Postgres) UpdateScore(ctx context.Context, groupID string, score int) error {
	_, err := p.db.ExecContext(ctx, `UPDATE bet_groups SET score=$1 WHERE id=$2`, score, groupID)
	return err
}
