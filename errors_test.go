package csvfixture

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ctx      *ErrorContext
		baseErr  error
		expected string
	}{
		{
			name:     "Operation only",
			ctx:      newErrorContext("load", ""),
			baseErr:  nil,
			expected: "csvfixture: load failed",
		},
		{
			name:     "With file and row",
			ctx:      newErrorContext("load", "insert.csv").WithRow(3),
			baseErr:  ErrEmptyFixture,
			expected: "csvfixture: load failed, file: insert.csv, row: 3: csvfixture: empty fixture",
		},
		{
			name:     "With details",
			ctx:      newErrorContext("exec statements", "").WithDetails("statement 1: SELECT"),
			baseErr:  errors.New("boom"),
			expected: "csvfixture: exec statements failed, details: statement 1: SELECT: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.ctx.Error(tt.baseErr)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
			if tt.baseErr != nil {
				assert.ErrorIs(t, err, tt.baseErr)
			}
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrFixtureNotFound,
		ErrPermissionDenied,
		ErrUnsupportedFormat,
		ErrEmptyFixture,
		ErrIteratorClosed,
	}
	for i, a := range sentinels {
		assert.Contains(t, a.Error(), "csvfixture: ")
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b)
			}
		}
	}
}
