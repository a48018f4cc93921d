// Package springs counts the ways damaged-spring records can be completed.
//
// A record is a row of conditions ('.' operational, '#' damaged, '?'
// unknown) followed by the sizes of the contiguous damaged groups, e.g.
// "???.### 1,1,3". Arrangements assigns every unknown and counts the
// assignments whose damaged groups match, memoized on (position, group).
//
// Complexity: Arrangements is O(N × G × maxGroup) for N conditions and G
// groups.
package springs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedRecord is returned for lines without a conditions/groups pair.
	ErrMalformedRecord = errors.New("springs: malformed record")
	// ErrUnknownCondition is returned for condition runes other than '.', '#', '?'.
	ErrUnknownCondition = errors.New("springs: unknown condition")
	// ErrGroupSize is returned for group sizes that are not positive integers.
	ErrGroupSize = errors.New("springs: invalid group size")
	// ErrUnfold is returned for unfold factors below one.
	ErrUnfold = errors.New("springs: unfold factor must be positive")
)

// Condition is the state of one spring.
type Condition byte

const (
	// Operational marks a working spring.
	Operational Condition = '.'
	// Damaged marks a broken spring; runs of them form the groups.
	Damaged Condition = '#'
	// Unknown may be either; Arrangements counts the assignments.
	Unknown Condition = '?'
)

// Record is one row of conditions with its damaged group sizes.
type Record struct {
	Conditions []Condition
	Groups     []int
}

// ParseRecord parses "conditions groups", e.g. "?#?. 1,1".
func ParseRecord(line string) (Record, error) {
	conds, groups, ok := strings.Cut(strings.TrimSpace(line), " ")
	if !ok || conds == "" || groups == "" {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	var r Record
	for i, c := range conds {
		switch cond := Condition(c); cond {
		case Operational, Damaged, Unknown:
			if rune(cond) == c {
				r.Conditions = append(r.Conditions, cond)
				continue
			}
		}
		return Record{}, fmt.Errorf("%w: %q at column %d of %q", ErrUnknownCondition, c, i, line)
	}
	for _, s := range strings.Split(groups, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n <= 0 {
			return Record{}, fmt.Errorf("%w: %q in %q", ErrGroupSize, s, line)
		}
		r.Groups = append(r.Groups, n)
	}

	return r, nil
}

// String renders r in the format ParseRecord accepts.
func (r Record) String() string {
	var b strings.Builder
	for _, c := range r.Conditions {
		b.WriteByte(byte(c))
	}
	b.WriteByte(' ')
	for i, g := range r.Groups {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(g))
	}
	return b.String()
}

// Unfold returns r repeated n times: conditions joined by Unknown, groups
// concatenated.
func (r Record) Unfold(n int) (Record, error) {
	if n < 1 {
		return Record{}, fmt.Errorf("%w: %d", ErrUnfold, n)
	}
	out := Record{
		Conditions: make([]Condition, 0, n*(len(r.Conditions)+1)),
		Groups:     make([]int, 0, n*len(r.Groups)),
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			out.Conditions = append(out.Conditions, Unknown)
		}
		out.Conditions = append(out.Conditions, r.Conditions...)
		out.Groups = append(out.Groups, r.Groups...)
	}
	return out, nil
}

// Arrangements returns the number of ways to assign every Unknown so that
// the damaged groups, left to right, have exactly the sizes in Groups.
func (r Record) Arrangements() int {
	n, g := len(r.Conditions), len(r.Groups)

	// memo[pos*(g+1)+group] caches ways(pos, group); -1 is unset.
	memo := make([]int, (n+1)*(g+1))
	for i := range memo {
		memo[i] = -1
	}
	// clearUntil[i] is the first index >= i holding an Operational spring.
	clearUntil := make([]int, n+1)
	clearUntil[n] = n
	for i := n - 1; i >= 0; i-- {
		if r.Conditions[i] == Operational {
			clearUntil[i] = i
		} else {
			clearUntil[i] = clearUntil[i+1]
		}
	}

	var ways func(pos, group int) int
	ways = func(pos, group int) int {
		if group == g {
			for _, c := range r.Conditions[pos:] {
				if c == Damaged {
					return 0
				}
			}
			return 1
		}
		if pos >= n {
			return 0
		}
		key := pos*(g+1) + group
		if v := memo[key]; v >= 0 {
			return v
		}

		total := 0
		c := r.Conditions[pos]
		if c != Damaged {
			total += ways(pos+1, group)
		}
		if c != Operational {
			end := pos + r.Groups[group]
			if end <= n && clearUntil[pos] >= end && (end == n || r.Conditions[end] != Damaged) {
				total += ways(min(end+1, n), group+1)
			}
		}

		memo[key] = total
		return total
	}

	return ways(0, 0)
}

// SumArrangements parses one record per line, unfolds each unfold times,
// and returns the sum of their arrangements. Blank lines are skipped.
func SumArrangements(s string, unfold int) (int, error) {
	sum := 0
	for i, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		r, err := ParseRecord(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		if r, err = r.Unfold(unfold); err != nil {
			return 0, err
		}
		sum += r.Arrangements()
	}
	return sum, nil
}
