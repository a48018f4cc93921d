package platform_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclesim/fixture"
	"github.com/katalvlaran/cyclesim/grid"
	"github.com/katalvlaran/cyclesim/platform"
)

func loadExample(t *testing.T) *fixture.Fixture {
	t.Helper()
	f, err := fixture.Load("testdata/example.yaml")
	require.NoError(t, err)
	return f
}

// TestTilt checks single tilts in every direction on small platforms.
func TestTilt(t *testing.T) {
	cases := []struct {
		name string
		in   string
		dir  grid.Direction
		want string
	}{
		{"East", "..O.#.O\n", grid.East, "...O#.O\n"},
		{"West", "..O.#.O\n", grid.West, "O...#O.\n"},
		{"North", "...\n.O.\nO#O\n", grid.North, "OOO\n...\n.#.\n"},
		{"South", "O.O\n.#.\n...\n", grid.South, "...\n.#.\nO.O\n"},
		{"Stacked", "O\nO\n.\n#\nO\n", grid.South, ".\nO\nO\n#\nO\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := platform.Parse(tc.in)
			require.NoError(t, err)
			p.Tilt(tc.dir)
			assert.Equal(t, tc.want, p.String())
		})
	}
}

// TestLoad uses the distance to the south edge, counting the rock's own row.
func TestLoad(t *testing.T) {
	p, err := platform.Parse("OOO\n...\n.#.\n")
	require.NoError(t, err)
	assert.Equal(t, 9, p.Load())

	p, err = platform.Parse("...\n...\nO.O\n")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Load())
}

// TestParse_Errors rejects tiles that do not belong on a platform.
func TestParse_Errors(t *testing.T) {
	_, err := platform.Parse("O.S\n")
	assert.True(t, errors.Is(err, platform.ErrUnexpectedTile))
	_, err = platform.Parse("O.\n.\n")
	assert.True(t, errors.Is(err, grid.ErrNonRectangular))
	_, err = platform.LoadAfterTilt("")
	assert.True(t, errors.Is(err, grid.ErrEmptyGrid))
}

// TestExample_Answers checks both answers against the fixture.
func TestExample_Answers(t *testing.T) {
	f := loadExample(t)

	tilt, err := f.Case("tilt-north")
	require.NoError(t, err)
	got, err := platform.LoadAfterTilt(f.Input)
	require.NoError(t, err)
	assert.Equal(t, tilt.Want, got)

	spin, err := f.Case("spin")
	require.NoError(t, err)
	got, err = platform.LoadAfterCycles(f.Input, spin.Steps)
	require.NoError(t, err)
	assert.Equal(t, spin.Want, got)
}

// TestSpin_DirectMatchesProjected compares direct spin cycles with the
// projected result for every count up to 60, and checks the detected loop.
func TestSpin_DirectMatchesProjected(t *testing.T) {
	f := loadExample(t)
	base, err := platform.Parse(f.Input)
	require.NoError(t, err)

	direct := base.Clone()
	for n := 0; n <= 60; n++ {
		if n > 0 {
			direct.SpinCycle()
		}
		res, err := base.Clone().Spin(n)
		require.NoError(t, err)
		require.Equal(t, direct.String(), res.State.String(), "after %d cycles", n)
		require.Equal(t, direct.Load(), res.State.Load())
	}

	res, err := base.Clone().Spin(1_000_000_000)
	require.NoError(t, err)
	require.NotNil(t, res.Cycle)
	assert.Equal(t, 7, res.Cycle.Length)
	assert.LessOrEqual(t, res.Simulated, res.Cycle.Start+2*res.Cycle.Length)
}

// TestFingerprint is stable and ignores how a state was reached.
func TestFingerprint(t *testing.T) {
	a, err := platform.Parse("O.#\n.O.\n...\n")
	require.NoError(t, err)
	b, err := platform.Parse("O.#\n..O\n...\n")
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint(), a.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())

	a.Tilt(grid.West)
	b.Tilt(grid.West)
	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}
