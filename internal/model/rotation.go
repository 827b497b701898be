package model

import "time"

// RotationState is a caller-owned snapshot of a rotating duty (e.g. "captain
// of the week"). The engine never mutates it; callers persist the values the
// rotation functions return.
//
// Assignees is the raw roster in rotation order. An empty string marks an
// inactive slot that rotation skips over. CurrentIndex addresses the raw
// list; see rotation.NextAssignee for how positions are resolved against the
// active sublist.
type RotationState struct {
	Assignees           []string   `json:"assignees"`
	CurrentIndex        int        `json:"current_index"`
	LastRotationAt      *time.Time `json:"last_rotation_at"`
	ManualOverrideUntil *time.Time `json:"manual_override_until"`
	ManualAssigneeID    string     `json:"manual_assignee_id"`
}
