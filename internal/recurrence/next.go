package recurrence

import (
	"sort"
	"time"
)

// Next computes the occurrence after current for the rule. The zero time is
// the "series over" sentinel, returned when the computed occurrence would
// fall past the rule's Until date.
func Next(current time.Time, r Rule) time.Time {
	interval := r.Interval
	if interval < 1 {
		interval = 1
	}

	var next time.Time
	switch r.Freq {
	case Daily:
		next = current.AddDate(0, 0, interval)

	case Weekly:
		if len(r.ByDay) > 0 {
			next = nextByDay(current, r.ByDay, interval)
		} else {
			next = current.AddDate(0, 0, 7*interval)
		}

	case Monthly:
		next = addMonths(current, interval)
		if r.ByMonthDay > 0 {
			day := r.ByMonthDay
			if last := daysInMonth(next.Year(), next.Month()); day > last {
				day = last
			}
			next = time.Date(next.Year(), next.Month(), day,
				next.Hour(), next.Minute(), next.Second(), next.Nanosecond(), next.Location())
		}

	default:
		return time.Time{}
	}

	if r.Until != nil && next.After(*r.Until) {
		return time.Time{}
	}
	return next
}

// nextByDay picks the next target weekday after current. Remaining target
// days within the current week come first; once the week is exhausted the
// series wraps to the first target day interval weeks ahead.
func nextByDay(current time.Time, byDay []time.Weekday, interval int) time.Time {
	days := make([]time.Weekday, len(byDay))
	copy(days, byDay)
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	wd := current.Weekday()
	for _, d := range days {
		if d > wd {
			return current.AddDate(0, 0, int(d-wd))
		}
	}

	// Wrap: first target day of the week interval weeks out.
	offset := 7 - int(wd) + int(days[0]) + 7*(interval-1)
	return current.AddDate(0, 0, offset)
}

// ShouldEnd reports whether the recurrence series is over: the occurrence
// cap is reached, the next date falls past the end date, or next is the
// zero-time sentinel from Next. The caller owns flipping the task inactive.
func ShouldEnd(r Rule, totalOccurrences int, next time.Time) bool {
	if r.Count > 0 && totalOccurrences >= r.Count {
		return true
	}
	if next.IsZero() {
		return true
	}
	if r.Until != nil && next.After(*r.Until) {
		return true
	}
	return false
}

// addMonths advances t by n calendar months, clamping the day of month so
// that overflow never spills into the following month.
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, n, 0)
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
