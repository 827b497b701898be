package model

import "time"

// MemberStats is a flat record of a member's cumulative counters, as read
// from the persistence layer. Every field defaults to its zero value; the
// engine never requires a complete record, and badge predicates over missing
// counters simply evaluate to "not earned".
type MemberStats struct {
	Points                int        `json:"points"`
	StreakDays            int        `json:"streak_days"`
	LastActivityDate      *time.Time `json:"last_activity_date"`
	Level                 int        `json:"level"`
	TasksCompleted        int        `json:"tasks_completed"`
	PetTasksCompleted     int        `json:"pet_tasks_completed"`
	SpeedWins             int        `json:"speed_wins"`
	PerfectRatings        int        `json:"perfect_ratings"`
	HelpedOthers          int        `json:"helped_others"`
	TasksCreated          int        `json:"tasks_created"`
	MessagesCount         int        `json:"messages_count"`
	NotesCreated          int        `json:"notes_created"`
	CaptainPerfectRatings int        `json:"captain_perfect_ratings"`
	PositiveRatings       int        `json:"positive_ratings"`
	TotalActivity         int        `json:"total_activity"`

	// Time-of-day strings ("HH:MM", 24-hour) recording the earliest and
	// latest completion times seen for this member. Empty when unknown.
	CompleteBefore string `json:"complete_before"`
	CompleteAfter  string `json:"complete_after"`
}

// Member pairs identity with stats for ranking and display.
type Member struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Stats MemberStats `json:"stats"`
}
