package garden

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/katalvlaran/cyclesim/cycle"
)

// InfiniteReachable returns how many plots of the infinitely repeated garden
// can be the final position of a walk of exactly steps moves.
//
// Layers are expanded with an Expander while the second differences
//
//	d2[n] = c[n] - 2·c[n-P] + c[n-2P]
//
// of the reachable counts c are grouped into windows of P consecutive
// layers. Each window is the fingerprint recorded in a cycle.Ledger. Once the
// same window is seen in Confirmations+1 consecutive periods, growth is taken
// to be quadratic per residue class mod P and the count at steps is
// extrapolated in O(1):
//
//	c[b+kP] = c[b] + k·(c[b] - c[b-P]) + d2[b]·k(k+1)/2
//
// When steps is reached first the count is returned directly. The returned
// Result carries the count as State; Cycle is the repeating window when
// extrapolation was used, and Simulated is the number of layers expanded.
//
// Returns cycle.ErrNegativeSteps, cycle.ErrOptionViolation,
// cycle.ErrOverflow when the extrapolated count does not fit an int, or
// cycle.ErrNoCycle when MaxLayers layers pass without a stable window.
func (g *Garden) InfiniteReachable(steps int, opts ...Option) (cycle.Result[int], error) {
	if steps < 0 {
		return cycle.Result[int]{}, fmt.Errorf("garden: %w: %d", cycle.ErrNegativeSteps, steps)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return cycle.Result[int]{}, fmt.Errorf("garden: %w", o.err)
	}
	period := o.Period
	if period == 0 {
		var err error
		if period, err = cycle.LCM(g.g.Width, g.g.Height); err != nil {
			return cycle.Result[int]{}, fmt.Errorf("garden: %w", err)
		}
	}

	e := g.Expander()
	counts := []int{e.Reachable()}
	ledger := cycle.NewLedger[string]()
	anchor, streak := -1, 0

	for e.Layer() < steps {
		if e.Layer() >= o.MaxLayers {
			o.Logger.Warn().
				Int("max_layers", o.MaxLayers).
				Int("period", period).
				Msg("layer bound exhausted without a stable growth window")
			return cycle.Result[int]{}, fmt.Errorf("garden: %w: %d layers", cycle.ErrNoCycle, o.MaxLayers)
		}
		counts = append(counts, e.Next())
		n := e.Layer()
		if n < 3*period-1 || (n+1)%period != 0 {
			continue
		}

		c, err := ledger.Observe(window(counts, n, period), n)
		if err != nil {
			return cycle.Result[int]{}, fmt.Errorf("garden: %w", err)
		}
		switch {
		case c == nil:
			anchor, streak = n, 0
		case c.Start == anchor:
			streak++
		default:
			anchor, streak = c.Start, 0
		}
		if streak < o.Confirmations {
			continue
		}

		plots, err := extrapolate(counts, n, steps, period)
		if err != nil {
			return cycle.Result[int]{}, fmt.Errorf("garden: %d steps: %w", steps, err)
		}
		o.Logger.Debug().
			Int("period", period).
			Int("window_start", anchor-period+1).
			Int("detected_at", n).
			Int("steps", steps).
			Msg("extrapolating reachable plots")

		return cycle.Result[int]{
			State:     plots,
			Steps:     steps,
			Cycle:     &cycle.Descriptor{Start: anchor - period + 1, Length: period},
			Simulated: n,
		}, nil
	}

	return cycle.Result[int]{State: counts[steps], Steps: steps, Simulated: e.Layer()}, nil
}

// window encodes d2 over layers n-p+1..n.
func window(c []int, n, p int) string {
	buf := make([]byte, 0, p*8)
	for i := n - p + 1; i <= n; i++ {
		buf = strconv.AppendInt(buf, int64(c[i]-2*c[i-p]+c[i-2*p]), 10)
		buf = append(buf, ',')
	}
	return string(buf)
}

// extrapolate projects the count at target from the last simulated layer n,
// assuming d2 repeats with period p from layer n-p+1 on. The quadratic is
// evaluated exactly; cycle.ErrOverflow is returned when it exceeds an int.
func extrapolate(c []int, n, target, p int) (int, error) {
	b := n - ((n-target)%p+p)%p
	k := big.NewInt(int64((target - b) / p))
	cb, cp, cpp := big.NewInt(int64(c[b])), big.NewInt(int64(c[b-p])), big.NewInt(int64(c[b-2*p]))

	d1 := new(big.Int).Sub(cb, cp)
	d2 := new(big.Int).Sub(cb, new(big.Int).Lsh(cp, 1))
	d2.Add(d2, cpp)

	// c[b] + k·d1 + d2·k(k+1)/2; k(k+1) is even
	tri := new(big.Int).Add(k, big.NewInt(1))
	tri.Mul(tri, k).Rsh(tri, 1)
	sum := new(big.Int).Mul(k, d1)
	sum.Add(sum, cb)
	sum.Add(sum, tri.Mul(tri, d2))

	return cycle.ToInt(sum)
}
