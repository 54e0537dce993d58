package person

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxGeneration bounds generation values so 2^(g+1) and the surname slot
// total stay inside int64.
const MaxGeneration = 60

// decimalPattern limits the float fallback to plain decimals such as "3.0"
var decimalPattern = regexp.MustCompile(`^\d+\.\d+$`)

// Generation is a parsed generation number.
// Degraded is set when the raw cell could not be read as a generation; the
// value is then 0 and only usable as a layout level.
type Generation struct {
	Value    int  `json:"value"`
	Degraded bool `json:"degraded,omitempty"`
}

// Known builds a non-degraded generation
func Known(g int) Generation {
	return Generation{Value: g}
}

// ParseGeneration parses a generation cell.
// Integers and integral plain decimals ("3", "3.0") are accepted. Empty,
// non-numeric, exponent or hex spellings, fractional, negative and
// out-of-range values return {0, Degraded: true}.
func ParseGeneration(raw string) Generation {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Generation{Degraded: true}
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return bounded(n)
	}

	if !decimalPattern.MatchString(raw) {
		return Generation{Degraded: true}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Generation{Degraded: true}
	}
	if f < 0 || f > MaxGeneration {
		return Generation{Degraded: true}
	}
	return Generation{Value: int(f)}
}

func bounded(n int) Generation {
	if n < 0 || n > MaxGeneration {
		return Generation{Degraded: true}
	}
	return Generation{Value: n}
}

// Level returns the generation as a layout level (0 when degraded)
func (g Generation) Level() int {
	if g.Degraded {
		return 0
	}
	return g.Value
}

// Expected returns the theoretical ancestor count for the generation, 2^g.
func Expected(g int) int64 {
	return int64(1) << uint(g)
}
