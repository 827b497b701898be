// Package points converts task effort into points and points into
// progression (levels, streaks, bonuses). Every function is pure; "now" is
// always an explicit parameter. Out-of-range numeric input is normalized
// rather than rejected: negative minutes, points and streaks clamp to zero,
// which callers rely on as a contract.
package points

// PointsPerLevel is the size of one level band.
const PointsPerLevel = 100

// FromMinutes converts task effort in minutes to points: one point per
// started 5-minute block, so even a 1-minute task earns a point. Negative
// effort clamps to zero.
func FromMinutes(minutes int) int {
	if minutes < 0 {
		minutes = 0
	}
	return (minutes + 4) / 5
}

// Level returns the level for a point total. Levels start at 1 and advance
// every PointsPerLevel points.
func Level(pts int) int {
	if pts < 0 {
		pts = 0
	}
	return pts/PointsPerLevel + 1
}

// LevelProgress returns the percentage progress within the current level
// band, in [0, 99].
func LevelProgress(pts int) int {
	if pts < 0 {
		pts = 0
	}
	return pts % PointsPerLevel
}

// LevelTitle returns the display title for a level.
func LevelTitle(level int) string {
	switch {
	case level >= 50:
		return "Household Legend"
	case level >= 40:
		return "Hero of the House"
	case level >= 30:
		return "Champion"
	case level >= 20:
		return "Taskmaster"
	case level >= 10:
		return "Rising Star"
	case level >= 5:
		return "Busy Bee"
	default:
		return "New Helper"
	}
}

// LevelColor returns the display color (hex) for a level.
func LevelColor(level int) string {
	switch {
	case level >= 50:
		return "#f59e0b"
	case level >= 40:
		return "#ef4444"
	case level >= 30:
		return "#a855f7"
	case level >= 20:
		return "#3b82f6"
	case level >= 10:
		return "#14b8a6"
	case level >= 5:
		return "#22c55e"
	default:
		return "#9ca3af"
	}
}
