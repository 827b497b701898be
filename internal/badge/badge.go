// Package badge holds the achievement registry and its evaluation logic.
// Badges are a closed, hand-maintained table: each entry carries its unlock
// criterion and progress counter in one place, so adding a badge is a single
// declarative row.
package badge

import "github.com/pfahey/rota/internal/model"

type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Definition is one row of the badge table. Current extracts the counter
// the badge tracks; the badge is earned once Current reaches Target, unless
// a custom Earned predicate overrides that (used by the time-of-day badges).
type Definition struct {
	ID          string `json:"id"`
	Tier        Tier   `json:"tier"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Target      int    `json:"target"`

	Current func(model.MemberStats) int  `json:"-"`
	Earned  func(model.MemberStats) bool `json:"-"`
}

var registry = []Definition{
	{
		ID: "first_task", Tier: TierFree, Name: "First Steps",
		Description: "Complete your first task", Icon: "sprout",
		Target: 1, Current: func(s model.MemberStats) int { return s.TasksCompleted },
	},
	{
		ID: "task_10", Tier: TierFree, Name: "Getting Going",
		Description: "Complete 10 tasks", Icon: "muscle",
		Target: 10, Current: func(s model.MemberStats) int { return s.TasksCompleted },
	},
	{
		ID: "task_50", Tier: TierFree, Name: "Workhorse",
		Description: "Complete 50 tasks", Icon: "medal",
		Target: 50, Current: func(s model.MemberStats) int { return s.TasksCompleted },
	},
	{
		ID: "task_100", Tier: TierFree, Name: "Centurion",
		Description: "Complete 100 tasks", Icon: "trophy",
		Target: 100, Current: func(s model.MemberStats) int { return s.TasksCompleted },
	},
	{
		ID: "week_streak", Tier: TierFree, Name: "On a Roll",
		Description: "Keep a 7-day streak", Icon: "flame",
		Target: 7, Current: func(s model.MemberStats) int { return s.StreakDays },
	},
	{
		ID: "month_streak", Tier: TierFree, Name: "Unstoppable",
		Description: "Keep a 30-day streak", Icon: "bolt",
		Target: 30, Current: func(s model.MemberStats) int { return s.StreakDays },
	},
	{
		ID: "points_500", Tier: TierFree, Name: "Point Collector",
		Description: "Earn 500 points", Icon: "coin",
		Target: 500, Current: func(s model.MemberStats) int { return s.Points },
	},
	{
		ID: "level_5", Tier: TierFree, Name: "Busy Bee",
		Description: "Reach level 5", Icon: "bee",
		Target: 5, Current: func(s model.MemberStats) int { return s.Level },
	},
	{
		ID: "early_bird", Tier: TierFree, Name: "Early Bird",
		Description: "Complete a task before 7am", Icon: "sunrise",
		Target: 1,
		Current: func(s model.MemberStats) int {
			if earlyBird(s) {
				return 1
			}
			return 0
		},
		Earned: earlyBird,
	},
	{
		ID: "night_owl", Tier: TierFree, Name: "Night Owl",
		Description: "Complete a task after 10pm", Icon: "owl",
		Target: 1,
		Current: func(s model.MemberStats) int {
			if nightOwl(s) {
				return 1
			}
			return 0
		},
		Earned: nightOwl,
	},
	{
		ID: "creator", Tier: TierFree, Name: "Planner",
		Description: "Create 5 tasks", Icon: "pencil",
		Target: 5, Current: func(s model.MemberStats) int { return s.TasksCreated },
	},
	{
		ID: "chatterbox", Tier: TierFree, Name: "Chatterbox",
		Description: "Send 100 chat messages", Icon: "chat",
		Target: 100, Current: func(s model.MemberStats) int { return s.MessagesCount },
	},
	{
		ID: "note_taker", Tier: TierFree, Name: "Note Taker",
		Description: "Write 10 notes", Icon: "pin",
		Target: 10, Current: func(s model.MemberStats) int { return s.NotesCreated },
	},
	{
		ID: "pet_pal", Tier: TierPremium, Name: "Pet Pal",
		Description: "Complete 10 pet care tasks", Icon: "paw",
		Target: 10, Current: func(s model.MemberStats) int { return s.PetTasksCompleted },
	},
	{
		ID: "speed_demon", Tier: TierPremium, Name: "Speed Demon",
		Description: "Finish first 5 times", Icon: "stopwatch",
		Target: 5, Current: func(s model.MemberStats) int { return s.SpeedWins },
	},
	{
		ID: "perfectionist", Tier: TierPremium, Name: "Perfectionist",
		Description: "Earn 10 perfect ratings", Icon: "sparkles",
		Target: 10, Current: func(s model.MemberStats) int { return s.PerfectRatings },
	},
	{
		ID: "helping_hand", Tier: TierPremium, Name: "Helping Hand",
		Description: "Help others 5 times", Icon: "handshake",
		Target: 5, Current: func(s model.MemberStats) int { return s.HelpedOthers },
	},
	{
		ID: "captain_excellent", Tier: TierPremium, Name: "Captain Excellent",
		Description: "Earn 3 perfect ratings as captain", Icon: "anchor",
		Target: 3, Current: func(s model.MemberStats) int { return s.CaptainPerfectRatings },
	},
	{
		ID: "crowd_favorite", Tier: TierPremium, Name: "Crowd Favorite",
		Description: "Receive 20 positive ratings", Icon: "star",
		Target: 20, Current: func(s model.MemberStats) int { return s.PositiveRatings },
	},
	{
		ID: "all_rounder", Tier: TierPremium, Name: "All-Rounder",
		Description: "Reach 200 total activity", Icon: "target",
		Target: 200, Current: func(s model.MemberStats) int { return s.TotalActivity },
	},
	{
		ID: "streak_legend", Tier: TierPremium, Name: "Streak Legend",
		Description: "Keep a 100-day streak", Icon: "crown",
		Target: 100, Current: func(s model.MemberStats) int { return s.StreakDays },
	},
	{
		ID: "level_10", Tier: TierPremium, Name: "Rising Star",
		Description: "Reach level 10", Icon: "rocket",
		Target: 10, Current: func(s model.MemberStats) int { return s.Level },
	},
}

// Time-of-day criteria compare "HH:MM" strings lexicographically, which
// orders correctly for zero-padded 24-hour times.
func earlyBird(s model.MemberStats) bool {
	return s.CompleteBefore != "" && s.CompleteBefore <= "07:00"
}

func nightOwl(s model.MemberStats) bool {
	return s.CompleteAfter >= "22:00"
}

var byID = func() map[string]Definition {
	m := make(map[string]Definition, len(registry))
	for _, d := range registry {
		m[d.ID] = d
	}
	return m
}()

// All returns the badge table in registry order.
func All() []Definition {
	out := make([]Definition, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the definition for a badge id.
func Lookup(id string) (Definition, bool) {
	d, ok := byID[id]
	return d, ok
}

// CheckNew evaluates every badge the member has not already earned and
// returns those whose criterion is now satisfied. Premium-tier badges are
// only considered for premium members.
func CheckNew(stats model.MemberStats, alreadyEarned map[string]bool, premium bool) []Definition {
	var unlocked []Definition
	for _, d := range registry {
		if alreadyEarned[d.ID] {
			continue
		}
		if d.Tier == TierPremium && !premium {
			continue
		}
		if d.earned(stats) {
			unlocked = append(unlocked, d)
		}
	}
	return unlocked
}

// Progress returns how close the member is to a badge as a ratio in [0, 1].
// Unknown ids report zero progress.
func Progress(id string, stats model.MemberStats) float64 {
	d, ok := byID[id]
	if !ok || d.Target <= 0 {
		return 0
	}
	cur := d.Current(stats)
	if cur <= 0 {
		return 0
	}
	if cur >= d.Target {
		return 1
	}
	return float64(cur) / float64(d.Target)
}

func (d Definition) earned(s model.MemberStats) bool {
	if d.Earned != nil {
		return d.Earned(s)
	}
	return d.Current(s) >= d.Target
}
