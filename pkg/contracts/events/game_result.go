package events

import "time"

// Evento publicado no tópico "game_results" pelo feed externo de resultados
type GameResultRecorded struct {
	GameID     string    `json:"game_id"`
	HomeGoals  int       `json:"home_goals"`
	AwayGoals  int       `json:"away_goals"`
	FinishedAt time.Time `json:"finished_at"`
	Source     string    `json:"source"` // ex: "result-feed"
}
