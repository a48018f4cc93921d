package cycle

import "fmt"

// AccumulatingStep advances a state by one transition and reports the
// output produced by that transition (for example, pulses emitted).
type AccumulatingStep[S any, V any] func(s S) (S, V)

// Accumulate sums the outputs of exactly total steps starting from init.
//
// Outputs are recorded per step until a fingerprint repeats. With the cycle
// {p, L} known, the sum is the prefix of the first p outputs, plus the cycle
// sum scaled by the number of whole cycles between p and total, plus the
// first Project(total, cycle) outputs of the cycle. The final state is
// reached by executing only those remaining steps. The zero value of V must
// be the additive identity.
//
// Returns the same errors as Advance.
func Accumulate[S any, F comparable, V Summable[V]](
	init S,
	step AccumulatingStep[S, V],
	fp Fingerprint[S, F],
	total int,
	opts ...Option,
) (Accumulated[S, V], error) {
	var out Accumulated[S, V]
	if step == nil || fp == nil {
		return out, ErrNilFunc
	}
	if total < 0 {
		return out, fmt.Errorf("%w: %d", ErrNegativeSteps, total)
	}
	r, err := newRunner(init, fp, opts)
	if err != nil {
		return out, err
	}

	out.Steps = total
	outputs := make([]V, 0, 64)
	var sum V
	for n := 1; n <= total; n++ {
		if err = r.guard(n); err != nil {
			return out, err
		}
		var v V
		r.state, v = step(r.state)
		r.simulated++
		outputs = append(outputs, v)
		if sum, err = sum.Add(v); err != nil {
			return out, err
		}
		if n == total {
			break
		}

		c, err := r.observe(n)
		if err != nil {
			return out, err
		}
		if c == nil {
			continue
		}

		sum, err = projectSum(outputs, total, *c)
		if err != nil {
			return out, err
		}
		remaining, _ := Project(total, *c)
		for i := 0; i < remaining; i++ {
			r.state, _ = step(r.state)
			r.simulated++
		}
		out.Cycle = c
		break
	}

	out.State = r.state
	out.Simulated = r.simulated
	out.Total = sum

	return out, nil
}

// projectSum combines recorded per-step outputs into the total over
// total steps. outputs[i] is the output of step i+1 and covers at least
// the first c.Start+c.Length steps.
func projectSum[V Summable[V]](outputs []V, total int, c Descriptor) (V, error) {
	var prefix, loop, partial V
	whole, err := Skipped(total, c)
	if err != nil {
		return prefix, err
	}
	remaining, err := Project(total, c)
	if err != nil {
		return prefix, err
	}

	if prefix, err = sumOf(outputs[:c.Start]); err != nil {
		return prefix, err
	}
	if loop, err = sumOf(outputs[c.Start : c.Start+c.Length]); err != nil {
		return prefix, err
	}
	if partial, err = sumOf(outputs[c.Start : c.Start+remaining]); err != nil {
		return prefix, err
	}
	if loop, err = loop.Scale(whole); err != nil {
		return prefix, err
	}
	if prefix, err = prefix.Add(loop); err != nil {
		return prefix, err
	}

	return prefix.Add(partial)
}

func sumOf[V Summable[V]](vs []V) (V, error) {
	var sum V
	var err error
	for _, v := range vs {
		if sum, err = sum.Add(v); err != nil {
			return sum, err
		}
	}
	return sum, nil
}
