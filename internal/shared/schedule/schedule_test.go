package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDaily(t *testing.T) {
	s, err := Parse("23:00")
	require.NoError(t, err)
	assert.False(t, s.Interval())
	assert.Equal(t, "daily 23:00", s.String())
}

func TestParseEvery(t *testing.T) {
	s, err := Parse("@every 90s")
	require.NoError(t, err)
	assert.True(t, s.Interval())
	assert.Equal(t, "@every 1m30s", s.String())
}

func TestParseInvalid(t *testing.T) {
	for _, expr := range []string{"", "banana", "25:00", "12:75", "@every", "@every banana", "@every -5s"} {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			assert.Error(t, err)
		})
	}
}

func TestNextDaily(t *testing.T) {
	s, err := Parse("23:00")
	require.NoError(t, err)

	// antes do horário: dispara hoje
	after := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC), s.Next(after))

	// depois do horário: dispara amanhã
	after = time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC), s.Next(after))

	// exatamente no horário: estritamente depois, então amanhã
	after = time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC), s.Next(after))
}

func TestNextEvery(t *testing.T) {
	s, err := Parse("@every 5m")
	require.NoError(t, err)

	after := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, after.Add(5*time.Minute), s.Next(after))
}
