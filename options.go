package objstats

import (
	"log/slog"

	"github.com/krisalay/objstats/types"
	"github.com/krisalay/objstats/validation"
)

// Option configures a Store.
type Option func(*settings)

type settings struct {
	validator validation.Validator
	strict    bool
	metrics   types.Metrics
	logger    *slog.Logger
	sizeHint  int
}

// WithValidator checks every Touch with v.
func WithValidator(v validation.Validator) Option {
	return func(s *settings) {
		s.validator = v
	}
}

// WithStrict makes RecordOutcome report ErrNotFound when nothing was touched yet.
func WithStrict() Option {
	return func(s *settings) {
		s.strict = true
	}
}

// WithMetrics attaches a metrics observer.
func WithMetrics(m types.Metrics) Option {
	return func(s *settings) {
		s.metrics = m
	}
}

// WithLogger sets the logger used for rejected calls.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}

// WithSizeHint preallocates room for n objects.
func WithSizeHint(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.sizeHint = n
		}
	}
}
