package main

import (
	"fmt"
	"strconv"
	"strings"
)

// ParamRange is an inclusive integer range for one sweep dimension. A single
// value is the degenerate range [v, v].
type ParamRange struct {
	Lo, Hi int64
}

func (r ParamRange) Count() int64 {
	return r.Hi - r.Lo + 1
}

func (r ParamRange) String() string {
	if r.Lo == r.Hi {
		return strconv.FormatInt(r.Lo, 10)
	}
	return fmt.Sprintf("%d-%d", r.Lo, r.Hi)
}

// Triple is one point of the search cube: iteration count and the two
// cat-map coefficients.
type Triple struct {
	K, A, B int64
}

func (t Triple) String() string {
	return fmt.Sprintf("%d_%d_%d", t.K, t.A, t.B)
}

// ParseRange accepts either a single integer ("8") or an inclusive range
// ("0-10"). A single value may be negative; ranges are limited to the
// "lo-hi" form with lo <= hi.
func ParseRange(s string) (ParamRange, error) {
	s = strings.TrimSpace(s)

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ParamRange{Lo: v, Hi: v}, nil
	}

	parts := strings.Split(s, "-")
	if len(parts) == 2 {
		lo, errLo := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		hi, errHi := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if errLo == nil && errHi == nil && lo <= hi {
			return ParamRange{Lo: lo, Hi: hi}, nil
		}
	}

	return ParamRange{}, fmt.Errorf("invalid range %q: want a single number (\"8\") or an inclusive range (\"0-10\")", s)
}

// EnumerateTriples expands the Cartesian product of the three ranges in
// k -> a -> b nested order. The order carries no meaning, every triple is an
// independent unit of work, but it keeps output listings predictable.
func EnumerateTriples(times, aRange, bRange ParamRange) []Triple {
	total := times.Count() * aRange.Count() * bRange.Count()
	if total <= 0 {
		return nil
	}

	triples := make([]Triple, 0, total)
	for k := times.Lo; k <= times.Hi; k++ {
		for a := aRange.Lo; a <= aRange.Hi; a++ {
			for b := bRange.Lo; b <= bRange.Hi; b++ {
				triples = append(triples, Triple{K: k, A: a, B: b})
			}
		}
	}
	return triples
}
