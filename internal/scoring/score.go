package scoring

// Scoreline é um placar: gols do mandante e do visitante.
type Scoreline struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Diff retorna a diferença de gols (mandante - visitante).
func (s Scoreline) Diff() int { return s.Home - s.Away }

// Points compara o palpite com o resultado real e retorna os pontos da aposta.
// As regras são cumulativas e avaliadas de forma independente:
//
//	+5 placar exato
//	+1 acertou os gols do visitante
//	+1 acertou os gols do mandante
//	+3 acertou a diferença de gols
//
// Um palpite totalmente correto satisfaz as quatro condições e vale 10.
// Pré-condição: o jogo já tem resultado registrado (quem chama garante).
func Points(predicted, actual Scoreline) int {
	points := 0
	if predicted.Home == actual.Home && predicted.Away == actual.Away {
		points += 5
	}
	if predicted.Away == actual.Away {
		points++
	}
	if predicted.Home == actual.Home {
		points++
	}
	if predicted.Diff() == actual.Diff() {
		points += 3
	}
	return points
}
