package engine_test

import (
	"testing"

	"github.com/krisalay/objstats/engine"
	"github.com/krisalay/objstats/types"
	"github.com/krisalay/objstats/validation"
	"github.com/stretchr/testify/assert"
)

type rejectCounter struct {
	types.NoopMetrics
	rejects int
}

func (r *rejectCounter) Reject() { r.rejects++ }

func TestDefaults(t *testing.T) {
	e := engine.NewStatsEngine(nil, false, nil, nil)

	assert.NotNil(t, e.Validator)
	assert.NotNil(t, e.Metrics)
	assert.NotNil(t, e.Logger)
	assert.NoError(t, e.CheckTouch(1, -1, 0))
	assert.NoError(t, e.OnMissingCursor("snapshot"))
}

func TestStrictEngine(t *testing.T) {
	m := &rejectCounter{}
	e := engine.NewStatsEngine(validation.NewStrict(0), true, m, nil)

	assert.ErrorIs(t, e.CheckTouch(1, -1, 0), validation.ErrValidation)
	assert.ErrorIs(t, e.OnMissingCursor("record_outcome"), engine.ErrNotFound)
	assert.NoError(t, e.CheckTouch(1, 1, 0))
	assert.Equal(t, 2, m.rejects)
}
