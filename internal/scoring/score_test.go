package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoints(t *testing.T) {
	tests := []struct {
		name      string
		predicted Scoreline
		actual    Scoreline
		want      int
	}{
		// placar exato soma as quatro regras: 5+1+1+3
		{"exact match", Scoreline{2, 1}, Scoreline{2, 1}, 10},
		{"exact match zero zero", Scoreline{0, 0}, Scoreline{0, 0}, 10},
		{"exact match high score", Scoreline{4, 3}, Scoreline{4, 3}, 10},
		// só os gols do mandante certos (diferença também erra)
		{"home goals only", Scoreline{1, 2}, Scoreline{1, 3}, 1},
		// só os gols do visitante certos
		{"away goals only", Scoreline{3, 1}, Scoreline{0, 1}, 1},
		// nada certo, mas diferença bate (2-1 == 3-2)
		{"difference only", Scoreline{2, 1}, Scoreline{3, 2}, 3},
		// empate previsto, empate diferente: só a diferença (0 == 0)
		{"draw difference only", Scoreline{0, 0}, Scoreline{1, 1}, 3},
		// tudo errado
		{"nothing matches", Scoreline{1, 2}, Scoreline{2, 1}, 0},
		// visitante certo, mandante e diferença errados
		{"away goals, wrong difference", Scoreline{2, 2}, Scoreline{3, 2}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Points(tt.predicted, tt.actual))
		})
	}
}

func TestPointsIsPure(t *testing.T) {
	p, a := Scoreline{2, 0}, Scoreline{2, 0}
	first := Points(p, a)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Points(p, a))
	}
}
