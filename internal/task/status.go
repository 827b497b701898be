package task

import (
	"log/slog"
	"time"

	"github.com/pfahey/rota/internal/model"
	"github.com/pfahey/rota/internal/recurrence"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
	StatusNotDue    Status = "not_due"
	StatusEnded     Status = "ended"
)

// ComputeStatus determines the status and due date for a task given its last
// completion. One-off tasks (no recurrence rule) are pending until completed
// once. Recurring tasks are judged against the task's current occurrence;
// an invalid stored rule is logged and the task falls back to one-off
// semantics rather than failing.
func ComputeStatus(t model.RecurringTask, lastCompletion *time.Time, now time.Time) (Status, *time.Time) {
	today := startOfDay(now)

	if t.RecurrenceRule == "" {
		if lastCompletion != nil {
			return StatusCompleted, nil
		}
		return StatusPending, nil
	}

	rule, err := recurrence.Parse(t.RecurrenceRule)
	if err != nil {
		slog.Error("invalid recurrence rule", "task_id", t.ID, "rule", t.RecurrenceRule, "error", err)
		if lastCompletion != nil {
			return StatusCompleted, nil
		}
		return StatusPending, nil
	}

	if !t.Active || t.NextOccurrenceAt.IsZero() ||
		recurrence.ShouldEnd(rule, t.TotalOccurrences, t.NextOccurrenceAt) {
		return StatusEnded, nil
	}

	due := startOfDay(t.NextOccurrenceAt)

	// Check if completed since the current occurrence came due
	if lastCompletion != nil && !startOfDay(*lastCompletion).Before(due) {
		return StatusCompleted, &due
	}

	if due.After(today) {
		return StatusNotDue, &due
	}

	if due.Before(today) {
		return StatusOverdue, &due
	}

	return StatusPending, &due
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
