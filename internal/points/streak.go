package points

import "time"

// StreakResetHours is the grace window: activity gaps shorter than this
// keep a streak alive even when the calendar-day difference exceeds one.
const StreakResetHours = 48

var streakMilestones = [...]int{3, 7, 14, 30, 50, 100}

// StreakDays returns the streak after an activity at now. Day differences
// use UTC calendar dates, not raw durations, so time of day and timezone
// skew cannot break a streak across midnight.
//
//	no prior activity       -> 1
//	same calendar day       -> unchanged (no double-counting)
//	exactly one day later   -> +1
//	inside the grace window -> unchanged
//	otherwise               -> reset to 1
func StreakDays(current int, lastActivity *time.Time, now time.Time) int {
	if current < 0 {
		current = 0
	}
	if lastActivity == nil {
		return 1
	}

	switch utcDayDiff(*lastActivity, now) {
	case 0:
		return current
	case 1:
		return current + 1
	}

	if now.Sub(*lastActivity) < StreakResetHours*time.Hour {
		return current
	}
	return 1
}

// StreakBonus returns bonus points for a base award: 10% per milestone
// reached in {3, 7, 14, 30, 50, 100} streak days, capped at 60%. The result
// rounds up, so any eligible base of at least one point yields a bonus.
func StreakBonus(basePoints, streakDays int) int {
	if basePoints < 0 {
		basePoints = 0
	}
	tenths := 0
	for _, m := range streakMilestones {
		if streakDays >= m {
			tenths++
		}
	}
	if tenths == 0 {
		return 0
	}
	return (basePoints*tenths + 9) / 10
}

func utcDayDiff(from, to time.Time) int {
	return int(utcDate(to).Sub(utcDate(from)).Hours() / 24)
}

func utcDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
