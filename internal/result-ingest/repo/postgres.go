package repo

import (
	"context"
	"database/sql"
	"errors"
)

var ErrGameNotFound = errors.New("game not found")

// Postgres grava resultados de jogos recebidos do feed externo.
// É o único escritor dos gols reais; os jobs de pontuação apenas leem.
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// RecordResult grava o placar final de um jogo (overwrite completo dos dois
// campos). Regravar o mesmo resultado é idempotente.
func (p *Postgres) RecordResult(ctx context.Context, gameID string, homeGoals, awayGoals int) error {
	res, err := p.db.ExecContext(ctx,
		`UPDATE games SET home_goals=$1, away_goals=$2 WHERE id=$3`,
		homeGoals, awayGoals, gameID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGameNotFound
	}
	return nil
}
