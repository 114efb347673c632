package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Spec descreve a agenda de um job: disparo diário em um horário fixo ("HH:MM")
// ou em intervalo fixo ("@every <duração>", útil em ambiente local/teste).
type Spec struct {
	daily  bool
	hour   int
	minute int
	every  time.Duration
}

// Parse interpreta a expressão de agenda.
// Expressão inválida é erro de configuração: os serviços tratam como fatal no startup.
func Parse(expr string) (Spec, error) {
	expr = strings.TrimSpace(expr)

	if rest, ok := strings.CutPrefix(expr, "@every "); ok {
		d, err := time.ParseDuration(strings.TrimSpace(rest))
		if err != nil {
			return Spec{}, fmt.Errorf("schedule %q: %w", expr, err)
		}
		if d <= 0 {
			return Spec{}, fmt.Errorf("schedule %q: interval must be positive", expr)
		}
		return Spec{every: d}, nil
	}

	var h, m int
	if _, err := fmt.Sscanf(expr, "%d:%d", &h, &m); err != nil {
		return Spec{}, fmt.Errorf("schedule %q: want \"HH:MM\" or \"@every <duration>\"", expr)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Spec{}, fmt.Errorf("schedule %q: hour/minute out of range", expr)
	}
	return Spec{daily: true, hour: h, minute: m}, nil
}

// Next retorna o próximo instante de disparo estritamente depois de "after".
func (s Spec) Next(after time.Time) time.Time {
	if !s.daily {
		return after.Add(s.every)
	}
	next := time.Date(after.Year(), after.Month(), after.Day(), s.hour, s.minute, 0, 0, after.Location())
	if !next.After(after) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Interval informa se a agenda é por intervalo fixo (e não diária).
func (s Spec) Interval() bool { return !s.daily }

func (s Spec) String() string {
	if s.daily {
		return fmt.Sprintf("daily %02d:%02d", s.hour, s.minute)
	}
	return "@every " + s.every.String()
}
