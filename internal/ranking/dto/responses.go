package dto

// RankingEntry é uma linha do ranking geral de usuários.
type RankingEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"` // soma dos scores das apostas (sem score = 0)
}

// Group é a visão de leitura de um grupo de aposta.
type Group struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Score *int   `json:"score"` // null até a primeira agregação
}

// UserBet é uma aposta do usuário com o jogo e a pontuação (se houver).
type UserBet struct {
	BetID     string `json:"betId"`
	GameID    string `json:"gameId"`
	HomeGoals int    `json:"home_goals"` // palpite
	AwayGoals int    `json:"away_goals"` // palpite
	Score     *int   `json:"score"`      // null até o jogo ter resultado e o job rodar
}

// UserBets agrupa as apostas de um usuário.
type UserBets struct {
	UserID string    `json:"userId"`
	Name   string    `json:"name"`
	Bets   []UserBet `json:"bets"`
}
