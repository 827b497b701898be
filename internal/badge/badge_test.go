package badge

import (
	"testing"

	"github.com/pfahey/rota/internal/model"
)

func ids(defs []Definition) map[string]bool {
	m := make(map[string]bool, len(defs))
	for _, d := range defs {
		m[d.ID] = true
	}
	return m
}

func TestCheckNewFirstTask(t *testing.T) {
	stats := model.MemberStats{TasksCompleted: 1}
	got := ids(CheckNew(stats, nil, false))

	if !got["first_task"] {
		t.Error("first_task should unlock at 1 completed task")
	}
	if got["task_10"] {
		t.Error("task_10 should not unlock at 1 completed task")
	}
}

func TestCheckNewSkipsEarned(t *testing.T) {
	stats := model.MemberStats{TasksCompleted: 12}
	earned := map[string]bool{"first_task": true}
	got := ids(CheckNew(stats, earned, false))

	if got["first_task"] {
		t.Error("already earned badge should not be returned again")
	}
	if !got["task_10"] {
		t.Error("task_10 should unlock at 12 completed tasks")
	}
}

func TestCheckNewPremiumGate(t *testing.T) {
	stats := model.MemberStats{PetTasksCompleted: 10}

	if got := ids(CheckNew(stats, nil, false)); got["pet_pal"] {
		t.Error("premium badge should not unlock for free member")
	}
	if got := ids(CheckNew(stats, nil, true)); !got["pet_pal"] {
		t.Error("premium badge should unlock for premium member")
	}
}

func TestCheckNewEmptyStats(t *testing.T) {
	if got := CheckNew(model.MemberStats{}, nil, true); len(got) != 0 {
		t.Errorf("empty stats unlocked %v, want none", ids(got))
	}
}

func TestTimeOfDayBadges(t *testing.T) {
	tests := []struct {
		name  string
		stats model.MemberStats
		badge string
		want  bool
	}{
		{"early bird before 7", model.MemberStats{CompleteBefore: "06:30"}, "early_bird", true},
		{"early bird at 7", model.MemberStats{CompleteBefore: "07:00"}, "early_bird", true},
		{"early bird after 7", model.MemberStats{CompleteBefore: "07:01"}, "early_bird", false},
		{"early bird unknown", model.MemberStats{}, "early_bird", false},
		{"night owl at 22", model.MemberStats{CompleteAfter: "22:00"}, "night_owl", true},
		{"night owl late", model.MemberStats{CompleteAfter: "23:45"}, "night_owl", true},
		{"night owl early", model.MemberStats{CompleteAfter: "21:59"}, "night_owl", false},
		{"night owl unknown", model.MemberStats{}, "night_owl", false},
	}

	for _, tt := range tests {
		got := ids(CheckNew(tt.stats, nil, false))
		if got[tt.badge] != tt.want {
			t.Errorf("%s: unlocked=%v, want %v", tt.name, got[tt.badge], tt.want)
		}
	}
}

func TestStreakBadges(t *testing.T) {
	stats := model.MemberStats{StreakDays: 30}
	got := ids(CheckNew(stats, nil, true))

	if !got["week_streak"] || !got["month_streak"] {
		t.Errorf("both streak badges should unlock at 30 days, got %v", got)
	}
	if got["streak_legend"] {
		t.Error("streak_legend needs 100 days")
	}
}

func TestProgress(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		stats model.MemberStats
		want  float64
	}{
		{"halfway", "task_10", model.MemberStats{TasksCompleted: 5}, 0.5},
		{"complete", "task_10", model.MemberStats{TasksCompleted: 10}, 1},
		{"over target clamps", "task_10", model.MemberStats{TasksCompleted: 25}, 1},
		{"zero", "task_10", model.MemberStats{}, 0},
		{"negative clamps", "points_500", model.MemberStats{Points: -10}, 0},
		{"unknown id", "no_such_badge", model.MemberStats{TasksCompleted: 99}, 0},
		{"time badge earned", "early_bird", model.MemberStats{CompleteBefore: "05:00"}, 1},
		{"time badge not earned", "early_bird", model.MemberStats{CompleteBefore: "09:00"}, 0},
	}

	for _, tt := range tests {
		if got := Progress(tt.id, tt.stats); got != tt.want {
			t.Errorf("%s: Progress(%q) = %v, want %v", tt.name, tt.id, got, tt.want)
		}
	}
}

func TestRegistryConsistency(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range All() {
		if d.ID == "" {
			t.Error("badge with empty id")
		}
		if seen[d.ID] {
			t.Errorf("duplicate badge id %q", d.ID)
		}
		seen[d.ID] = true

		if d.Target < 1 {
			t.Errorf("badge %q has target %d", d.ID, d.Target)
		}
		if d.Current == nil {
			t.Errorf("badge %q has no counter", d.ID)
		}
		if d.Tier != TierFree && d.Tier != TierPremium {
			t.Errorf("badge %q has unknown tier %q", d.ID, d.Tier)
		}

		if _, ok := Lookup(d.ID); !ok {
			t.Errorf("Lookup(%q) missing", d.ID)
		}
	}
}
