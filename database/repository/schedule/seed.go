package scheduleRepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"classboard/models"
)

type seedCourse struct {
	description, teacher, room string
}

var seedCourses = map[string]seedCourse{
	"Block A": {"PLTW Computer Science A", "Yeager, Gabriel", "230"},
	"Block B": {"Pre AP Algebra II", "Cohen, Craig", "333"},
	"Block C": {"French II Honors", "Ryan, Candace", "326"},
	"Block D": {"Study Skills", "Academic Support", "Library"},
	"Block E": {"Leadership ROTC", "Sumner, John", "139"},
	"Block F": {"AP English", "Kalinowski, Jill", "204"},
	"Block G": {"Early College Business", "Trammell, Anna", "IMC2"},
	"Block H": {"Physical Education", "Coach Martinez", "Gymnasium"},
	"Crew":    {"Advisory/homeroom period", "Desmond, Teague", "305"},
	"Chow":    {"Lunch period", "Cafeteria Staff", "Cafeteria"},
}

// bell schedule shared by every weekday, one entry per period
var seedPeriods = [8][2]string{
	{"07:45", "08:44"},
	{"08:44", "09:43"},
	{"09:44", "10:35"},
	{"10:39", "11:07"},
	{"11:11", "12:05"},
	{"12:49", "13:40"},
	{"13:45", "14:37"},
	{"15:41", "16:25"},
}

type seedDay struct {
	day         models.Weekday
	prefix      string
	color       string
	description string
	createdAt   time.Time
	blocks      [8]string
}

var seedDays = []seedDay{
	{models.Monday, "mon", "hsl(142.1 76.2% 36.3%)", "Monday class schedule", seedDate(25),
		[8]string{"Block A", "Block B", "Block C", "Crew", "Block E", "Chow", "Block F", "Block G"}},
	{models.Tuesday, "tue", "hsl(262.1 83.3% 57.8%)", "Tuesday class schedule", seedDate(26),
		[8]string{"Block B", "Block C", "Block D", "Crew", "Block F", "Chow", "Block G", "Block H"}},
	{models.Wednesday, "wed", "hsl(24.6 95% 53.1%)", "Wednesday class schedule", seedDate(27),
		[8]string{"Block A", "Block B", "Block C", "Crew", "Block F", "Chow", "Block G", "Block H"}},
	{models.Thursday, "thu", "hsl(221.2 83.2% 53.3%)", "Thursday, August 28, 2025", seedDate(28),
		[8]string{"Block C", "Block D", "Block A", "Crew", "Block E", "Chow", "Block F", "Block G"}},
	{models.Friday, "fri", "hsl(348.83 100% 60%)", "Friday class schedule", seedDate(29),
		[8]string{"Block D", "Block A", "Block B", "Crew", "Block E", "Chow", "Block F", "Block H"}},
}

func seedDate(day int) time.Time {
	return time.Date(2025, time.August, day, 0, 0, 0, 0, time.UTC)
}

// SeedWeek loads the Monday-Friday block schedule into repo.
func SeedWeek(ctx context.Context, repo ScheduleRepository) error {
	now := time.Now()
	grade := "11"
	for _, d := range seedDays {
		name := d.day.String()
		schedule := &models.Schedule{
			ID:          strings.ToLower(name) + "-schedule",
			Name:        name + " Classes",
			Description: d.description,
			Category:    "academic",
			Color:       d.color,
			IsActive:    true,
			CreatedAt:   d.createdAt,
			UpdatedAt:   d.createdAt,
		}
		if err := repo.CreateSchedule(ctx, schedule); err != nil {
			return fmt.Errorf("seed schedule %s: %w", schedule.ID, err)
		}

		for i, block := range d.blocks {
			course := seedCourses[block]
			period := i + 1
			start := models.MustClockTime(seedPeriods[i][0])
			end := models.MustClockTime(seedPeriods[i][1])
			item := &models.ScheduleItem{
				ID:          fmt.Sprintf("%s-%d", d.prefix, period),
				ScheduleID:  schedule.ID,
				Title:       block,
				Description: &course.description,
				Teacher:     &course.teacher,
				Room:        &course.room,
				Period:      &period,
				Grade:       &grade,
				DayOfWeek:   d.day,
				StartTime:   start,
				EndTime:     end,
				Duration:    int(end - start),
				CreatedAt:   now,
			}
			if err := repo.CreateItem(ctx, item); err != nil {
				return fmt.Errorf("seed item %s: %w", item.ID, err)
			}
		}
	}
	return nil
}
