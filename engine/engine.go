package engine

import (
	"errors"
	"log/slog"

	"github.com/krisalay/objstats/logger"
	"github.com/krisalay/objstats/types"
	"github.com/krisalay/objstats/validation"
)

// ErrNotFound is returned in strict mode when there is no current object.
var ErrNotFound = errors.New("no current object")

/*
StatsEngine is the policy layer of the store.
It is responsible for the "rules" around Records, NOT for keeping them.

It decides:
- Whether touch arguments are acceptable
- Whether a call without a current object is an error or a no-op
- How events are reported to metrics and logs

It does NOT:
- Store Records
- Track the cursor
- Handle locking
*/
type StatsEngine struct {

	// Validator checks size and data type before a Record is created or updated.
	// Permissive unless strict mode is configured.
	Validator validation.Validator

	// Strict turns silent no-ops on a missing current object into ErrNotFound.
	Strict bool

	// Metrics receives one event per insert, update, outcome and rejection.
	Metrics types.Metrics

	// Logger only sees rejections, at debug level. The hot path stays quiet.
	Logger *slog.Logger
}

/*
NewStatsEngine creates a StatsEngine.
Nil arguments are replaced by their do-nothing defaults.
*/
func NewStatsEngine(
	validator validation.Validator,
	strict bool,
	metrics types.Metrics,
	log *slog.Logger,
) *StatsEngine {

	if validator == nil {
		validator = validation.Permissive{}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if log == nil {
		log = logger.Discard()
	}

	return &StatsEngine{
		Validator: validator,
		Strict:    strict,
		Metrics:   metrics,
		Logger:    log,
	}
}

// CheckTouch runs the validator. On rejection it records the event and returns the error untouched.
func (e *StatsEngine) CheckTouch(key int64, size float64, dataType int) error {
	err := e.Validator.Validate(size, dataType)
	if err == nil {
		return nil
	}

	e.Metrics.Reject()
	e.Logger.Debug("touch rejected",
		slog.Int64("key", key),
		slog.Float64("size", size),
		slog.Int("data_type", dataType),
		slog.String("error", err.Error()),
	)
	return err
}

// OnInsert is called after a new Record was put in the store.
func (e *StatsEngine) OnInsert() {
	e.Metrics.Insert()
}

// OnUpdate is called after an existing Record got its size overwritten.
func (e *StatsEngine) OnUpdate() {
	e.Metrics.Update()
}

// OnOutcome is called after a hit or miss was recorded.
func (e *StatsEngine) OnOutcome(hit bool) {
	if hit {
		e.Metrics.Hit()
	} else {
		e.Metrics.Miss()
	}
}

/*
OnMissingCursor decides what a call without a current object means.

- Default: nothing happened, return nil
- Strict: report ErrNotFound to the caller
*/
func (e *StatsEngine) OnMissingCursor(op string) error {
	if !e.Strict {
		return nil
	}

	e.Metrics.Reject()
	e.Logger.Debug("no current object", slog.String("op", op))
	return ErrNotFound
}
