package validation_test

import (
	"errors"
	"math"
	"testing"

	"github.com/krisalay/objstats/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermissive(t *testing.T) {
	var v validation.Validator = validation.Permissive{}

	assert.NoError(t, v.Validate(-1, -1))
	assert.NoError(t, v.Validate(math.NaN(), 1<<20))
}

func TestStrict(t *testing.T) {
	v := validation.NewStrict(1, 2)

	tests := []struct {
		name     string
		size     float64
		dataType int
		wantErr  bool
	}{
		{"ok", 10, 1, false},
		{"zero size", 0, 2, false},
		{"negative", -1, 1, true},
		{"nan", math.NaN(), 1, true},
		{"inf", math.Inf(-1), 1, true},
		{"unknown type", 10, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.size, tt.dataType)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, validation.ErrValidation))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	err := validation.NewStrict().Validate(-2, 0)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "size", verr.Field)
	assert.Equal(t, "invalid size -2: must not be negative", err.Error())
}
