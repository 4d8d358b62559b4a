package life

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRule is returned when a rule string is not in B/S notation.
var ErrInvalidRule = errors.New("life: invalid rule")

// MaxNeighbors is the largest possible Moore neighbourhood count.
const MaxNeighbors = 8

// Counts is a set of neighbour counts in the range [0, MaxNeighbors].
type Counts uint16

// NewCounts builds a set from ns, ignoring entries outside [0, MaxNeighbors].
func NewCounts(ns ...int) Counts {
	var c Counts
	for _, n := range ns {
		if n < 0 || n > MaxNeighbors {
			continue
		}
		c |= 1 << n
	}
	return c
}

// Has reports whether n is in the set.
func (c Counts) Has(n int) bool {
	if n < 0 || n > MaxNeighbors {
		return false
	}
	return c&(1<<n) != 0
}

// Values returns the members in ascending order.
func (c Counts) Values() []int {
	var out []int
	for n := 0; n <= MaxNeighbors; n++ {
		if c.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

func (c Counts) digits() string {
	var b strings.Builder
	for _, n := range c.Values() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// Rule lists the neighbour counts at which a dead cell is born and a live
// cell survives.
type Rule struct {
	Birth   Counts
	Survive Counts
}

// DefaultRule returns Conway's B3/S23.
func DefaultRule() Rule {
	return Rule{Birth: NewCounts(3), Survive: NewCounts(2, 3)}
}

// String formats the rule in B/S notation, e.g. "B3/S23".
func (r Rule) String() string {
	return "B" + r.Birth.digits() + "/S" + r.Survive.digits()
}

var rulePattern = regexp.MustCompile(`(?i)B(\d*)/S(\d*)`)

// ParseRule reads a rule in "B{digits}/S{digits}" notation. Matching is case
// insensitive and the notation may be embedded in surrounding text. One of
// the digit lists may be empty, as in "B2/S", but not both. Digits above
// MaxNeighbors are dropped.
func ParseRule(s string) (Rule, error) {
	m := rulePattern.FindStringSubmatch(s)
	if m == nil || m[1]+m[2] == "" {
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
	return Rule{Birth: countsFromDigits(m[1]), Survive: countsFromDigits(m[2])}, nil
}

// ParseRuleOr parses s, returning fallback when s is malformed.
func ParseRuleOr(s string, fallback Rule) Rule {
	r, err := ParseRule(s)
	if err != nil {
		return fallback
	}
	return r
}

func countsFromDigits(s string) Counts {
	ns := make([]int, 0, len(s))
	for _, ch := range s {
		ns = append(ns, int(ch-'0'))
	}
	return NewCounts(ns...)
}
