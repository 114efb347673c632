package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Runner dispara um job conforme sua Spec. O loop é sequencial: a próxima
// execução só é agendada depois que a atual termina, então execuções do mesmo
// job nunca se sobrepõem. Cada execução recebe um contexto com deadline.
type Runner struct {
	log        *zap.Logger
	name       string
	spec       Spec
	runTimeout time.Duration
	job        func(ctx context.Context) error

	ctx    context.Context
	cancel context.CancelFunc
}

func NewRunner(log *zap.Logger, name string, spec Spec, runTimeout time.Duration, job func(ctx context.Context) error) *Runner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		log:        log,
		name:       name,
		spec:       spec,
		runTimeout: runTimeout,
		job:        job,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start inicia o loop de agendamento. Deve rodar em uma goroutine.
func (r *Runner) Start() {
	r.log.Info("job runner starting",
		zap.String("job", r.name),
		zap.String("schedule", r.spec.String()),
	)

	for {
		next := r.spec.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-r.ctx.Done():
			timer.Stop()
			r.log.Info("job runner shutting down", zap.String("job", r.name))
			return
		case <-timer.C:
			r.runOnce()
		}
	}
}

// Stop encerra o loop; uma execução em andamento é cancelada via contexto.
func (r *Runner) Stop() {
	r.cancel()
}

func (r *Runner) runOnce() {
	ctx, cancel := context.WithTimeout(r.ctx, r.runTimeout)
	defer cancel()

	start := time.Now()
	if err := r.job(ctx); err != nil {
		r.log.Warn("job run failed",
			zap.String("job", r.name),
			zap.Duration("took", time.Since(start)),
			zap.Error(err),
		)
		return
	}
	r.log.Info("job run done",
		zap.String("job", r.name),
		zap.Duration("took", time.Since(start)),
	)
}
