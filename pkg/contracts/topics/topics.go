package topics

const (
	// Resultados de jogos (feed externo -> result-ingest-worker)
	GameResults    = "game_results"
	GameResultsDLQ = "game_results_dlq"

	// Pontuação de apostas (scoring-worker -> consumidores externos)
	BetScored = "bet_scored"
)
