package models

// ActivityView is a schedule item plus its display labels.
type ActivityView struct {
	ScheduleItem
	DayName    string `json:"dayName"`
	StartLabel string `json:"startLabel"` // e.g. "7:45 AM"
	EndLabel   string `json:"endLabel"`
}

// DashboardSnapshot is everything the dashboard shows, derived from one clock read.
type DashboardSnapshot struct {
	CurrentTime     string        `json:"currentTime"`
	CurrentDate     string        `json:"currentDate"`
	WeekRange       string        `json:"weekRange"`
	Today           string        `json:"today"`
	CurrentActivity *ActivityView `json:"currentActivity"`
	NextActivity    *ActivityView `json:"nextActivity"`
	TimeRemaining   string        `json:"timeRemaining"`
	TimeUntilNext   string        `json:"timeUntilNext"`
}
