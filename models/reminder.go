package models

import "time"

// ReminderPayload is the body of an upcoming-activity reminder task.
type ReminderPayload struct {
	ItemID     string    `json:"itemId"`
	ScheduleID string    `json:"scheduleId"`
	Title      string    `json:"title"`
	Room       string    `json:"room,omitempty"`
	StartsAt   time.Time `json:"startsAt"`
}
