package ica

import "github.com/rs/zerolog"

// Observer receives per-iteration progress from the unmixing loop.
//
// Progress is called exactly once per iteration with the iteration index
// (0-based) and the Frobenius norm of the W update. Observers are read-only:
// they must not mutate solver state, and nothing they do can abort or alter
// the numerical result. A panicking observer is the caller's bug.
type Observer interface {
	Progress(iteration int, delta float64)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(iteration int, delta float64)

// Progress implements Observer.
func (f ObserverFunc) Progress(iteration int, delta float64) { f(iteration, delta) }

// logObserver reports progress as zerolog debug events.
type logObserver struct {
	log zerolog.Logger
}

// NewLogObserver returns an Observer that emits one Debug event per
// iteration on the given logger:
//
//	{"level":"debug","iteration":41,"delta":3.2e-07,"message":"ica iteration"}
//
// Intended for long runs where convergence behavior needs to be watched;
// keep the logger at Info level or above to silence it in production.
func NewLogObserver(log zerolog.Logger) Observer {
	return &logObserver{log: log}
}

// Progress implements Observer.
func (o *logObserver) Progress(iteration int, delta float64) {
	o.log.Debug().
		Int("iteration", iteration).
		Float64("delta", delta).
		Msg("ica iteration")
}
