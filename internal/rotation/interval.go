package rotation

import (
	"fmt"
	"strconv"
	"strings"
)

type Unit string

const (
	Minute Unit = "minute"
	Hour   Unit = "hour"
	Day    Unit = "day"
	Week   Unit = "week"
	Month  Unit = "month"
	Year   Unit = "year"
)

var unitSuffix = map[Unit]string{
	Minute: "m",
	Hour:   "h",
	Day:    "d",
	Week:   "w",
	Month:  "mo",
	Year:   "y",
}

var unitFromSuffix = map[string]Unit{
	"m":  Minute,
	"h":  Hour,
	"d":  Day,
	"w":  Week,
	"mo": Month,
	"y":  Year,
}

// Interval describes how often a duty rotates, e.g. {2, Week} = every two weeks.
type Interval struct {
	Value int  `json:"value"`
	Unit  Unit `json:"unit"`
}

// ParseInterval parses a compact interval string like "15m", "2h", "1d",
// "2w", "3mo" or "1y". The value must be at least 1.
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Interval{}, fmt.Errorf("empty interval")
	}

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return Interval{}, fmt.Errorf("interval missing value: %q", s)
	}

	n, err := strconv.Atoi(s[:i])
	if err != nil || n < 1 {
		return Interval{}, fmt.Errorf("invalid interval value: %q", s)
	}

	unit, ok := unitFromSuffix[s[i:]]
	if !ok {
		return Interval{}, fmt.Errorf("unknown interval unit: %q", s[i:])
	}

	return Interval{Value: n, Unit: unit}, nil
}

// String serializes the interval back to its compact form.
func (iv Interval) String() string {
	return fmt.Sprintf("%d%s", iv.Value, unitSuffix[iv.Unit])
}

// Describe returns a human-readable description of the interval.
func (iv Interval) Describe() string {
	if iv.Value == 1 {
		switch iv.Unit {
		case Day:
			return "Rotates daily"
		case Week:
			return "Rotates weekly"
		case Month:
			return "Rotates monthly"
		case Year:
			return "Rotates yearly"
		}
		return fmt.Sprintf("Rotates every %s", iv.Unit)
	}
	return fmt.Sprintf("Rotates every %d %ss", iv.Value, iv.Unit)
}
