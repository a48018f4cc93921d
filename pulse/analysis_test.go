package pulse_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cyclesim/cycle"
	"github.com/katalvlaran/cyclesim/pulse"
)

// BranchSuite exercises hub decomposition on small counter networks.
type BranchSuite struct {
	suite.Suite
}

func (s *BranchSuite) branches(name string) []pulse.BranchInfo {
	n := parse(s.T(), load(s.T(), name))
	infos, err := n.Branches("rx")
	s.Require().NoError(err)
	return infos
}

// TestCounters checks feeders, cycles, and offsets for three counters.
func (s *BranchSuite) TestCounters() {
	infos := s.branches("counters")
	s.Require().Len(infos, 3)

	want := []struct {
		feeder string
		cycle  cycle.Descriptor
		branch cycle.Branch
	}{
		{"x", cycle.Descriptor{Start: 2, Length: 2}, cycle.Branch{Offset: 2, Period: 2}},
		{"y", cycle.Descriptor{Start: 4, Length: 4}, cycle.Branch{Offset: 4, Period: 4}},
		{"z", cycle.Descriptor{Start: 8, Length: 8}, cycle.Branch{Offset: 8, Period: 8}},
	}
	for i, w := range want {
		s.Equal(w.feeder, infos[i].Feeder)
		s.Equal(w.cycle, infos[i].Cycle)
		s.Equal(w.branch, infos[i].Branch)
	}
	s.ElementsMatch([]string{"broadcaster", "ra", "ra2", "a1", "a2", "ka", "x", pulse.ButtonName}, infos[0].Members)
	s.NotContains(infos[2].Members, "hub")
	s.NotContains(infos[2].Members, "a1")
}

// TestCountersAnswer compares the combined answer with direct presses.
func (s *BranchSuite) TestCountersAnswer() {
	f := load(s.T(), "counters")
	c, err := f.Case("presses-until-low")
	s.Require().NoError(err)

	got, err := pulse.PressesUntilLow(f.Input, "rx")
	s.Require().NoError(err)
	s.Equal(c.Want, got)

	direct, err := parse(s.T(), f).PressesUntilLowDirect("rx", 100)
	s.Require().NoError(err)
	s.Equal(c.Want, direct)

	// synchronized branches agree with the plain LCM
	infos := s.branches("counters")
	var bs []cycle.Branch
	for _, b := range infos {
		bs = append(bs, b.Branch)
	}
	lcm, err := cycle.CombineSynchronized(bs...)
	s.Require().NoError(err)
	s.Equal(c.Want, lcm)
}

// TestOffsetBranch checks a branch whose first firing is not its period.
func (s *BranchSuite) TestOffsetBranch() {
	f := load(s.T(), "offset")
	c, err := f.Case("presses-until-low")
	s.Require().NoError(err)

	infos := s.branches("offset")
	s.Require().Len(infos, 2)
	s.Equal("x", infos[0].Feeder)
	s.Equal(cycle.Descriptor{Start: 1, Length: 2}, infos[0].Cycle)
	s.Equal(cycle.Branch{Offset: 3, Period: 2}, infos[0].Branch)
	s.Equal("y", infos[1].Feeder)
	s.Equal(cycle.Branch{Offset: 1, Period: 1}, infos[1].Branch)

	_, err = cycle.CombineSynchronized(infos[0].Branch, infos[1].Branch)
	s.ErrorIs(err, cycle.ErrUnsynchronized)

	got, err := pulse.PressesUntilLow(f.Input, "rx")
	s.Require().NoError(err)
	s.Equal(c.Want, got)

	direct, err := parse(s.T(), f).PressesUntilLowDirect("rx", 100)
	s.Require().NoError(err)
	s.Equal(c.Want, direct)
}

// TestLatchedFeeder rejects feeders that leave the hub slot high between
// presses, while direct simulation still finds the answer.
func (s *BranchSuite) TestLatchedFeeder() {
	f := load(s.T(), "latched")
	c, err := f.Case("presses-until-low")
	s.Require().NoError(err)

	_, err = pulse.PressesUntilLow(f.Input, "rx")
	s.ErrorIs(err, pulse.ErrIrregularBranch)
	s.ErrorContains(err, "still high")

	direct, err := parse(s.T(), f).PressesUntilLowDirect("rx", 100)
	s.Require().NoError(err)
	s.Equal(c.Want, direct)
}

// TestWiring mirrors every output wire in the module graph.
func (s *BranchSuite) TestWiring() {
	n := parse(s.T(), load(s.T(), "offset"))
	g := n.Wiring()
	s.Equal(n.Len(), g.VertexCount())

	outs, err := g.NeighborIDs("a1")
	s.Require().NoError(err)
	s.Equal([]string{"k", "t"}, outs)

	ins, err := g.Reverse().NeighborIDs("hub")
	s.Require().NoError(err)
	s.Equal([]string{"x", "y"}, ins)

	ins, err = g.Reverse().NeighborIDs("broadcaster")
	s.Require().NoError(err)
	s.Equal([]string{pulse.ButtonName}, ins)
}

// TestErrors covers networks that cannot be decomposed.
func (s *BranchSuite) TestErrors() {
	cases := []struct {
		name  string
		input string
		sink  string
		err   error
	}{
		{"UnknownSink", "broadcaster -> a\n%a -> out\n", "rx", pulse.ErrUnknownModule},
		{"FlipFlopFeeder", "broadcaster -> a\n%a -> rx\n", "rx", pulse.ErrNoHub},
		{"TwoFeeders", "broadcaster -> a, b\n&a -> rx\n&b -> rx\n", "rx", pulse.ErrNoHub},
		{"FiresTwice", "broadcaster -> a, y\n%a -> y\n&y -> hub\n&hub -> rx\n", "rx", pulse.ErrIrregularBranch},
		{"HubFeedback", "broadcaster -> a\n%a -> x\n&x -> hub\n&hub -> rx, a\n", "rx", pulse.ErrIrregularBranch},
		{"NeverFires", "broadcaster -> a\n%a -> b\n&x -> hub\n&hub -> rx\n", "rx", pulse.ErrIrregularBranch},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := pulse.PressesUntilLow(tc.input, tc.sink)
			s.True(errors.Is(err, tc.err), "got %v", err)
		})
	}
}

func TestBranchSuite(t *testing.T) {
	suite.Run(t, new(BranchSuite))
}

// TestPressesUntilLowDirect_Limit stops at the press limit.
func TestPressesUntilLowDirect_Limit(t *testing.T) {
	n := parse(t, load(t, "counters"))
	_, err := n.PressesUntilLowDirect("rx", 7)
	require.ErrorIs(t, err, pulse.ErrLimit)

	_, err = n.PressesUntilLowDirect("nope", 1)
	assert.ErrorIs(t, err, pulse.ErrUnknownModule)
}

// TestPressMany_Options surfaces option violations and step limits.
func TestPressMany_Options(t *testing.T) {
	n := parse(t, load(t, "example2"))

	_, err := n.PressMany(10, cycle.WithMaxSteps(0))
	assert.ErrorIs(t, err, cycle.ErrOptionViolation)

	_, err = n.Clone().PressMany(1000, cycle.WithMaxSteps(2))
	assert.ErrorIs(t, err, cycle.ErrNoCycle)

	_, err = n.PressMany(-1)
	assert.ErrorIs(t, err, cycle.ErrNegativeSteps)
}
