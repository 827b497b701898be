package recurrence

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestParseFreqOnly(t *testing.T) {
	tests := []struct {
		input string
		freq  Freq
	}{
		{"FREQ=DAILY", Daily},
		{"FREQ=WEEKLY", Weekly},
		{"FREQ=MONTHLY", Monthly},
	}

	for _, tt := range tests {
		r, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if r.Freq != tt.freq {
			t.Errorf("Parse(%q).Freq = %d, want %d", tt.input, r.Freq, tt.freq)
		}
		if r.Interval != 1 {
			t.Errorf("Parse(%q).Interval = %d, want 1", tt.input, r.Interval)
		}
	}
}

func TestParseWithByDay(t *testing.T) {
	r, err := Parse("FREQ=WEEKLY;BYDAY=MO,TH")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want := []time.Weekday{time.Monday, time.Thursday}
	if len(r.ByDay) != len(want) {
		t.Fatalf("ByDay len = %d, want %d", len(r.ByDay), len(want))
	}
	for i, d := range r.ByDay {
		if d != want[i] {
			t.Errorf("ByDay[%d] = %v, want %v", i, d, want[i])
		}
	}
}

func TestParseWithEndConditions(t *testing.T) {
	r, err := Parse("FREQ=DAILY;COUNT=5")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if r.Count != 5 {
		t.Errorf("Count = %d, want 5", r.Count)
	}

	r, err = Parse("FREQ=WEEKLY;UNTIL=20260301")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if r.Until == nil || !r.Until.Equal(date(2026, 3, 1)) {
		t.Errorf("Until = %v, want 2026-03-01", r.Until)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"BYDAY=MO", // no FREQ
		"FREQ=YEARLY",
		"FREQ=HOURLY",
		"FREQ=WEEKLY;INTERVAL=0",
		"FREQ=WEEKLY;BYDAY=XX",
		"FREQ=MONTHLY;BYMONTHDAY=32",
		"FREQ=DAILY;COUNT=0",
		"FREQ=DAILY;UNKNOWN=1",
	}

	for _, input := range tests {
		if _, err := Parse(input); err == nil {
			t.Errorf("Parse(%q) should error", input)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []string{
		"FREQ=DAILY",
		"FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,TH",
		"FREQ=MONTHLY;BYMONTHDAY=15;COUNT=12",
		"FREQ=WEEKLY;UNTIL=20261231T000000Z",
	}

	for _, input := range tests {
		r, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", input, err)
		}
		if got := r.String(); got != input {
			t.Errorf("String() = %q, want %q", got, input)
		}
	}
}

func TestNextDaily(t *testing.T) {
	r := Rule{Freq: Daily, Interval: 1}
	if got, want := Next(date(2026, 2, 1), r), date(2026, 2, 2); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	r.Interval = 3
	if got, want := Next(date(2026, 2, 1), r), date(2026, 2, 4); !got.Equal(want) {
		t.Errorf("interval 3: got %v, want %v", got, want)
	}
}

func TestNextWeeklySimple(t *testing.T) {
	r := Rule{Freq: Weekly, Interval: 2}
	if got, want := Next(date(2026, 1, 5), r), date(2026, 1, 19); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// A Mon/Thu rule starting on a Wednesday hits the Thursday in the same week,
// then the Monday after, then that week's Thursday.
func TestNextWeeklyByDay(t *testing.T) {
	r := Rule{Freq: Weekly, Interval: 1, ByDay: []time.Weekday{time.Monday, time.Thursday}}

	wednesday := date(2026, 1, 7)
	if wednesday.Weekday() != time.Wednesday {
		t.Fatalf("fixture: %v is %v, want Wednesday", wednesday, wednesday.Weekday())
	}

	first := Next(wednesday, r)
	if want := date(2026, 1, 8); !first.Equal(want) || first.Weekday() != time.Thursday {
		t.Fatalf("first = %v (%v), want %v (Thursday)", first, first.Weekday(), want)
	}

	second := Next(first, r)
	if want := date(2026, 1, 12); !second.Equal(want) || second.Weekday() != time.Monday {
		t.Fatalf("second = %v (%v), want %v (Monday)", second, second.Weekday(), want)
	}

	third := Next(second, r)
	if want := date(2026, 1, 15); !third.Equal(want) || third.Weekday() != time.Thursday {
		t.Fatalf("third = %v (%v), want %v (Thursday)", third, third.Weekday(), want)
	}
}

func TestNextWeeklyByDayUnsorted(t *testing.T) {
	// Day order in the rule must not matter.
	r := Rule{Freq: Weekly, Interval: 1, ByDay: []time.Weekday{time.Thursday, time.Monday}}
	got := Next(date(2026, 1, 7), r)
	if want := date(2026, 1, 8); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNextWeeklyByDayIntervalWrap(t *testing.T) {
	// Biweekly Mondays: from a Monday the week is exhausted, so the series
	// wraps a full interval ahead.
	r := Rule{Freq: Weekly, Interval: 2, ByDay: []time.Weekday{time.Monday}}
	monday := date(2026, 1, 5)
	if monday.Weekday() != time.Monday {
		t.Fatalf("fixture: %v is not a Monday", monday)
	}
	got := Next(monday, r)
	if want := date(2026, 1, 19); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNextMonthlyByMonthDay(t *testing.T) {
	r := Rule{Freq: Monthly, Interval: 1, ByMonthDay: 31}

	got := Next(date(2026, 1, 31), r)
	if want := date(2026, 2, 28); !got.Equal(want) {
		t.Errorf("Jan 31 -> %v, want %v", got, want)
	}

	// The day springs back to 31 in months that have it.
	got = Next(got, r)
	if want := date(2026, 3, 31); !got.Equal(want) {
		t.Errorf("Feb 28 -> %v, want %v", got, want)
	}
}

func TestNextMonthlyPlain(t *testing.T) {
	r := Rule{Freq: Monthly, Interval: 1}
	got := Next(date(2026, 1, 31), r)
	if want := date(2026, 2, 28); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNextUntil(t *testing.T) {
	until := date(2026, 2, 10)
	r := Rule{Freq: Daily, Interval: 1, Until: &until}

	if got := Next(date(2026, 2, 9), r); got.IsZero() {
		t.Error("occurrence on the end date should still be produced")
	}
	if got := Next(date(2026, 2, 10), r); !got.IsZero() {
		t.Errorf("occurrence past the end date should be zero, got %v", got)
	}
}

func TestShouldEnd(t *testing.T) {
	until := date(2026, 2, 10)

	tests := []struct {
		name  string
		rule  Rule
		total int
		next  time.Time
		want  bool
	}{
		{"unbounded", Rule{Freq: Daily, Interval: 1}, 100, date(2026, 3, 1), false},
		{"count reached", Rule{Freq: Daily, Interval: 1, Count: 10}, 10, date(2026, 3, 1), true},
		{"count exceeded", Rule{Freq: Daily, Interval: 1, Count: 10}, 11, date(2026, 3, 1), true},
		{"count not reached", Rule{Freq: Daily, Interval: 1, Count: 10}, 9, date(2026, 3, 1), false},
		{"past end date", Rule{Freq: Daily, Interval: 1, Until: &until}, 0, date(2026, 2, 11), true},
		{"before end date", Rule{Freq: Daily, Interval: 1, Until: &until}, 0, date(2026, 2, 10), false},
		{"zero sentinel", Rule{Freq: Daily, Interval: 1}, 0, time.Time{}, true},
	}

	for _, tt := range tests {
		if got := ShouldEnd(tt.rule, tt.total, tt.next); got != tt.want {
			t.Errorf("%s: ShouldEnd = %v, want %v", tt.name, got, tt.want)
		}
	}
}
