package events

// Evento emitido pelo scoring-worker após pontuar uma aposta.
type BetScored struct {
	BetID    string `json:"betId"`
	UserID   string `json:"userId"`
	GameID   string `json:"gameId"`
	Score    int    `json:"score"`
	TsUnixMs int64  `json:"ts_unix_ms"`
}
