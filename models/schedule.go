package models

import "time"

// Schedule is a named, day-scoped container of time-blocked activities.
type Schedule struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"` // academic, work, personal, fitness, social
	Color       string    `bson:"color" json:"color"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// CreateScheduleRequest is the payload for POST /api/schedules.
type CreateScheduleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Color       string `json:"color" binding:"required"`
	IsActive    *bool  `json:"isActive"`
}

// UpdateScheduleRequest is a partial update; nil fields are left untouched.
type UpdateScheduleRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	Category    *string `json:"category" binding:"omitempty,min=1"`
	Color       *string `json:"color" binding:"omitempty,min=1"`
	IsActive    *bool   `json:"isActive"`
}

// Apply merges the non-nil fields of req into s.
func (req UpdateScheduleRequest) Apply(s *Schedule) {
	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.Category != nil {
		s.Category = *req.Category
	}
	if req.Color != nil {
		s.Color = *req.Color
	}
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
}
