// Package leaderboard ranks household members by points. The computation is
// stateless: callers pass the current member snapshots and render the result.
package leaderboard

import (
	"sort"

	"github.com/pfahey/rota/internal/model"
	"github.com/pfahey/rota/internal/points"
)

// Entry is one row of the standings.
type Entry struct {
	Rank       int    `json:"rank"`
	MemberID   string `json:"member_id"`
	Name       string `json:"name"`
	Points     int    `json:"points"`
	Level      int    `json:"level"`
	LevelTitle string `json:"level_title"`
	StreakDays int    `json:"streak_days"`
}

// Compute returns standings ordered by points descending, breaking ties by
// streak length and then name. Members with equal points and streak share a
// rank; the next distinct score takes the following rank (dense ranking).
func Compute(members []model.Member) []Entry {
	entries := make([]Entry, 0, len(members))
	for _, m := range members {
		pts := m.Stats.Points
		if pts < 0 {
			pts = 0
		}
		entries = append(entries, Entry{
			MemberID:   m.ID,
			Name:       m.Name,
			Points:     pts,
			Level:      points.Level(pts),
			LevelTitle: points.LevelTitle(points.Level(pts)),
			StreakDays: m.Stats.StreakDays,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		if entries[i].StreakDays != entries[j].StreakDays {
			return entries[i].StreakDays > entries[j].StreakDays
		}
		return entries[i].Name < entries[j].Name
	})

	rank := 0
	for i := range entries {
		if i == 0 || entries[i].Points != entries[i-1].Points || entries[i].StreakDays != entries[i-1].StreakDays {
			rank++
		}
		entries[i].Rank = rank
	}
	return entries
}
