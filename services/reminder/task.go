package reminder

import (
	"encoding/json"
	"fmt"
	"time"

	"classboard/models"

	"github.com/hibiken/asynq"
)

const TypeActivityReminder = "activity:remind"

// taskID identifies one occurrence of an item so the same reminder is only queued once.
func taskID(p models.ReminderPayload) string {
	return fmt.Sprintf("remind:%s:%d", p.ItemID, p.StartsAt.Unix())
}

// NewReminderTask builds the reminder task for p, to be processed at fireAt.
func NewReminderTask(p models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeActivityReminder, b)
	// Keep the ID reserved until the activity has started so a replan
	// cannot queue the same occurrence again.
	retention := time.Until(p.StartsAt) + time.Minute
	if retention < time.Minute {
		retention = time.Minute
	}
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(taskID(p)),
		asynq.MaxRetry(3),
		asynq.Retention(retention),
	}
	return task, opts, nil
}

// ParsePayload decodes a reminder task body.
func ParsePayload(task *asynq.Task) (models.ReminderPayload, error) {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid reminder payload: %w", err)
	}
	return p, nil
}
