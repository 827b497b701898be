package model

import "time"

// RecurringTask is the state of a recurring task template. RecurrenceRule is
// a serialized rule string like "FREQ=WEEKLY;BYDAY=MO,TH" (empty = one-off).
// NextOccurrenceAt and TotalOccurrences are advanced by the caller each time
// it materializes a concrete task from the template; Active flips to false
// permanently once the rule's end condition is met.
type RecurringTask struct {
	ID               int64      `json:"id"`
	Title            string     `json:"title"`
	RecurrenceRule   string     `json:"recurrence_rule"`
	LastGeneratedAt  *time.Time `json:"last_generated_at"`
	NextOccurrenceAt time.Time  `json:"next_occurrence_at"`
	TotalOccurrences int        `json:"total_occurrences"`
	Active           bool       `json:"active"`
	CreatedAt        time.Time  `json:"created_at"`
}
