package rotation

import "time"

// Fixed-length units compare elapsed wall time directly. Month and year
// never appear here: they use calendar arithmetic instead, so a monthly
// rotation fires on the same day of month regardless of month length.
var fixedDurations = map[Unit]time.Duration{
	Minute: time.Minute,
	Hour:   time.Hour,
	Day:    24 * time.Hour,
	Week:   7 * 24 * time.Hour,
}

// ShouldRotate reports whether a rotation is due at now. A manual override
// that has not yet expired pins the current assignee and suppresses the
// schedule entirely. A nil lastRotation means the duty has never rotated,
// which is always due.
func ShouldRotate(lastRotation *time.Time, iv Interval, manualOverrideUntil *time.Time, now time.Time) bool {
	if manualOverrideUntil != nil && manualOverrideUntil.After(now) {
		return false
	}
	if lastRotation == nil {
		return true
	}

	if d, ok := fixedDurations[iv.Unit]; ok {
		return now.Sub(*lastRotation) >= time.Duration(iv.Value)*d
	}

	var target time.Time
	switch iv.Unit {
	case Month:
		target = addMonths(*lastRotation, iv.Value)
	case Year:
		target = addYears(*lastRotation, iv.Value)
	default:
		return false
	}
	return !now.Before(target)
}

// Assignment is the result of resolving the next assignee for a duty.
// NewIndex is the chosen member's index in the raw assignee list.
type Assignment struct {
	AssigneeID string `json:"assignee_id"`
	NewIndex   int    `json:"new_index"`
}

// NextAssignee resolves who holds a duty next. Empty strings in assignees
// mark inactive slots and are skipped; positions are taken in the remaining
// active sublist, but the returned index refers back to the raw list.
//
// A manualAssigneeID present in the active sublist short-circuits rotation.
// With rotate=false the current position is returned unchanged (clamped to 0
// when out of range). With rotate=true the position advances by one with
// wraparound, so a single-member list rotates to itself. Returns nil when no
// assignee is active.
func NextAssignee(assignees []string, currentIndex int, rotate bool, manualAssigneeID string) *Assignment {
	var active []string
	for _, id := range assignees {
		if id != "" {
			active = append(active, id)
		}
	}
	if len(active) == 0 {
		return nil
	}

	if manualAssigneeID != "" {
		for _, id := range active {
			if id == manualAssigneeID {
				return &Assignment{AssigneeID: id, NewIndex: rawIndex(assignees, id)}
			}
		}
	}

	pos := currentIndex
	if rotate {
		pos = (currentIndex + 1) % len(active)
		if pos < 0 {
			pos += len(active)
		}
	} else if pos < 0 || pos >= len(active) {
		pos = 0
	}

	id := active[pos]
	return &Assignment{AssigneeID: id, NewIndex: rawIndex(assignees, id)}
}

func rawIndex(assignees []string, id string) int {
	for i, a := range assignees {
		if a == id {
			return i
		}
	}
	return 0
}

// NextRotationTime computes when the rotation after lastRotation fires.
// A nil lastRotation bases the schedule at now. Month and year additions
// clamp to the last valid day of the target month, so Jan 31 + 1 month is
// Feb 28 (or 29) and Feb 29 + 1 year is Feb 28.
func NextRotationTime(lastRotation *time.Time, iv Interval, now time.Time) time.Time {
	base := now
	if lastRotation != nil {
		base = *lastRotation
	}

	switch iv.Unit {
	case Minute:
		return base.Add(time.Duration(iv.Value) * time.Minute)
	case Hour:
		return base.Add(time.Duration(iv.Value) * time.Hour)
	case Day:
		return base.AddDate(0, 0, iv.Value)
	case Week:
		return base.AddDate(0, 0, 7*iv.Value)
	case Month:
		return addMonths(base, iv.Value)
	case Year:
		return addYears(base, iv.Value)
	}
	return base
}

// addMonths advances t by n calendar months, clamping the day of month so
// that overflow never spills into the following month.
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	// Normalize via the first of the month so AddDate cannot overflow.
	first := time.Date(year, month, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()).AddDate(0, n, 0)
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func addYears(t time.Time, n int) time.Time {
	return addMonths(t, 12*n)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
