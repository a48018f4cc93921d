package cycle_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/cyclesim/cycle"
)

// TestProject covers the modulo reduction, including the boundaries where
// no additional steps are needed.
func TestProject(t *testing.T) {
	c := cycle.Descriptor{Start: 3, Length: 7}
	cases := []struct {
		name  string
		total int
		want  int
		whole int
	}{
		{"AtStart", 3, 0, 0},
		{"OneFullCycle", 10, 0, 1},
		{"InsideFirstCycle", 5, 2, 0},
		{"LastOfCycle", 9, 6, 0},
		{"FarHorizon", 1_000_000_000, (1_000_000_000 - 3) % 7, (1_000_000_000 - 3) / 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cycle.Project(tc.total, c)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)

			whole, err := cycle.Skipped(tc.total, c)
			assert.NoError(t, err)
			assert.Equal(t, tc.whole, whole)
		})
	}
}

// TestProject_Errors verifies logic errors fail loudly instead of clamping.
func TestProject_Errors(t *testing.T) {
	if _, err := cycle.Project(2, cycle.Descriptor{Start: 3, Length: 7}); !errors.Is(err, cycle.ErrBeforeCycle) {
		t.Errorf("total before start: want ErrBeforeCycle, got %v", err)
	}
	if _, err := cycle.Project(10, cycle.Descriptor{Start: 3, Length: 0}); !errors.Is(err, cycle.ErrInvalidCycle) {
		t.Errorf("zero length: want ErrInvalidCycle, got %v", err)
	}
	if _, err := cycle.Skipped(10, cycle.Descriptor{Start: -1, Length: 2}); !errors.Is(err, cycle.ErrInvalidCycle) {
		t.Errorf("negative start: want ErrInvalidCycle, got %v", err)
	}
}
