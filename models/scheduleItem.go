package models

import "time"

// ScheduleItem is a single time-blocked activity within a schedule.
// Items never cross midnight: StartTime < EndTime on DayOfWeek.
type ScheduleItem struct {
	ID          string    `bson:"id" json:"id"`
	ScheduleID  string    `bson:"scheduleId" json:"scheduleId"`
	Title       string    `bson:"title" json:"title"`                                 // class name
	Description *string   `bson:"description,omitempty" json:"description"`           // course description
	Teacher     *string   `bson:"teacher,omitempty" json:"teacher"`                   // teacher name(s)
	Room        *string   `bson:"room,omitempty" json:"room"`                         // room number/location
	Period      *int      `bson:"period,omitempty" json:"period"`                     // class period number
	Grade       *string   `bson:"grade,omitempty" json:"grade"`                       // grade level
	DayOfWeek   Weekday   `bson:"dayOfWeek" json:"dayOfWeek"`                         // 0-6 (Sunday-Saturday)
	StartTime   ClockTime `bson:"startTime" json:"startTime"`                         // minutes from midnight
	EndTime     ClockTime `bson:"endTime" json:"endTime"`                             // minutes from midnight
	Duration    int       `bson:"duration" json:"duration"`                           // minutes
	IsCompleted bool      `bson:"isCompleted" json:"isCompleted"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// CreateScheduleItemRequest is the payload for POST /api/schedule-items.
type CreateScheduleItemRequest struct {
	ScheduleID  string     `json:"scheduleId" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description *string    `json:"description"`
	Teacher     *string    `json:"teacher"`
	Room        *string    `json:"room"`
	Period      *int       `json:"period" binding:"omitempty,min=0"`
	Grade       *string    `json:"grade"`
	DayOfWeek   *Weekday   `json:"dayOfWeek" binding:"required,min=0,max=6"`
	StartTime   *ClockTime `json:"startTime" binding:"required"`
	EndTime     *ClockTime `json:"endTime" binding:"required"`
	Duration    *int       `json:"duration" binding:"omitempty,min=1"`
	IsCompleted *bool      `json:"isCompleted"`
}

// UpdateScheduleItemRequest is a partial update; nil fields are left untouched.
type UpdateScheduleItemRequest struct {
	ScheduleID  *string    `json:"scheduleId" binding:"omitempty,min=1"`
	Title       *string    `json:"title" binding:"omitempty,min=1"`
	Description *string    `json:"description"`
	Teacher     *string    `json:"teacher"`
	Room        *string    `json:"room"`
	Period      *int       `json:"period" binding:"omitempty,min=0"`
	Grade       *string    `json:"grade"`
	DayOfWeek   *Weekday   `json:"dayOfWeek" binding:"omitempty,min=0,max=6"`
	StartTime   *ClockTime `json:"startTime"`
	EndTime     *ClockTime `json:"endTime"`
	Duration    *int       `json:"duration" binding:"omitempty,min=1"`
	IsCompleted *bool      `json:"isCompleted"`
}

// Item builds a ScheduleItem from the request. ID and CreatedAt are left to the caller.
func (req CreateScheduleItemRequest) Item() ScheduleItem {
	item := ScheduleItem{
		ScheduleID:  req.ScheduleID,
		Title:       req.Title,
		Description: req.Description,
		Teacher:     req.Teacher,
		Room:        req.Room,
		Period:      req.Period,
		Grade:       req.Grade,
	}
	if req.DayOfWeek != nil {
		item.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		item.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		item.EndTime = *req.EndTime
	}
	if req.Duration != nil {
		item.Duration = *req.Duration
	} else {
		item.Duration = int(item.EndTime - item.StartTime)
	}
	if req.IsCompleted != nil {
		item.IsCompleted = *req.IsCompleted
	}
	return item
}

// Apply merges the non-nil fields of req into item. When the times change and
// no explicit duration is given, Duration is recomputed.
func (req UpdateScheduleItemRequest) Apply(item *ScheduleItem) {
	if req.ScheduleID != nil {
		item.ScheduleID = *req.ScheduleID
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Teacher != nil {
		item.Teacher = req.Teacher
	}
	if req.Room != nil {
		item.Room = req.Room
	}
	if req.Period != nil {
		item.Period = req.Period
	}
	if req.Grade != nil {
		item.Grade = req.Grade
	}
	if req.DayOfWeek != nil {
		item.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		item.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		item.EndTime = *req.EndTime
	}
	switch {
	case req.Duration != nil:
		item.Duration = *req.Duration
	case req.StartTime != nil || req.EndTime != nil:
		item.Duration = int(item.EndTime - item.StartTime)
	}
	if req.IsCompleted != nil {
		item.IsCompleted = *req.IsCompleted
	}
}
