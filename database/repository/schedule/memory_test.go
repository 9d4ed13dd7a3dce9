package scheduleRepo

import (
	"context"
	"errors"
	"testing"

	"classboard/models"
)

func newItem(scheduleID string, day models.Weekday, start, end string) *models.ScheduleItem {
	return &models.ScheduleItem{
		ScheduleID: scheduleID,
		Title:      "class",
		DayOfWeek:  day,
		StartTime:  models.MustClockTime(start),
		EndTime:    models.MustClockTime(end),
	}
}

func TestMemoryRepoScheduleCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScheduleRepo()

	s := &models.Schedule{Name: "Monday Classes", Category: "academic", IsActive: true}
	if err := repo.CreateSchedule(ctx, s); err != nil {
		t.Fatalf("CreateSchedule: %v", err)
	}
	if s.ID == "" || s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
		t.Fatalf("CreateSchedule did not fill id/timestamps: %+v", s)
	}

	got, err := repo.GetSchedule(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if got.Name != "Monday Classes" {
		t.Errorf("Name = %q", got.Name)
	}

	got.Name = "Renamed"
	if err := repo.UpdateSchedule(ctx, got); err != nil {
		t.Fatalf("UpdateSchedule: %v", err)
	}
	again, _ := repo.GetSchedule(ctx, s.ID)
	if again.Name != "Renamed" {
		t.Errorf("Name after update = %q", again.Name)
	}

	if err := repo.UpdateSchedule(ctx, &models.Schedule{ID: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateSchedule(missing) error = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetSchedule(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSchedule(missing) error = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepoDeleteScheduleCascades(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScheduleRepo()

	keep := &models.Schedule{Name: "keep"}
	drop := &models.Schedule{Name: "drop"}
	repo.CreateSchedule(ctx, keep)
	repo.CreateSchedule(ctx, drop)
	repo.CreateItem(ctx, newItem(keep.ID, models.Monday, "08:00", "09:00"))
	repo.CreateItem(ctx, newItem(drop.ID, models.Monday, "09:00", "10:00"))
	repo.CreateItem(ctx, newItem(drop.ID, models.Tuesday, "09:00", "10:00"))

	if err := repo.DeleteSchedule(ctx, drop.ID); err != nil {
		t.Fatalf("DeleteSchedule: %v", err)
	}
	all, _ := repo.ListAllItems(ctx)
	if len(all) != 1 || all[0].ScheduleID != keep.ID {
		t.Fatalf("items after cascade = %+v", all)
	}
	if err := repo.DeleteSchedule(ctx, drop.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteSchedule error = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepoItemOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScheduleRepo()

	first := newItem("s", models.Monday, "09:00", "10:00")
	first.Title = "first"
	second := newItem("s", models.Monday, "09:00", "09:30")
	second.Title = "second"
	for _, it := range []*models.ScheduleItem{
		newItem("s", models.Tuesday, "07:00", "08:00"),
		first,
		newItem("s", models.Monday, "07:00", "08:00"),
		second,
		newItem("other", models.Sunday, "07:00", "08:00"),
	} {
		if err := repo.CreateItem(ctx, it); err != nil {
			t.Fatalf("CreateItem: %v", err)
		}
	}

	items, err := repo.ListItems(ctx, "s")
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("len = %d, want 4", len(items))
	}
	want := []string{"07:00", "09:00", "09:00", "07:00"}
	for i, it := range items {
		if it.StartTime.String() != want[i] {
			t.Errorf("items[%d].StartTime = %s, want %s", i, it.StartTime, want[i])
		}
	}
	if items[1].Title != "first" || items[2].Title != "second" {
		t.Errorf("equal start times lost creation order: %s, %s", items[1].Title, items[2].Title)
	}
	if items[3].DayOfWeek != models.Tuesday {
		t.Errorf("last item day = %v, want Tuesday", items[3].DayOfWeek)
	}
}

func TestMemoryRepoItemUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScheduleRepo()

	it := newItem("s", models.Monday, "08:00", "09:00")
	repo.CreateItem(ctx, it)

	it.Title = "changed"
	if err := repo.UpdateItem(ctx, it); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	got, _ := repo.GetItem(ctx, it.ID)
	if got.Title != "changed" {
		t.Errorf("Title = %q", got.Title)
	}

	if err := repo.DeleteItem(ctx, it.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if _, err := repo.GetItem(ctx, it.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetItem after delete error = %v", err)
	}
	if err := repo.DeleteItem(ctx, it.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteItem twice error = %v", err)
	}
}

func TestSeedWeek(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryScheduleRepo()
	if err := SeedWeek(ctx, repo); err != nil {
		t.Fatalf("SeedWeek: %v", err)
	}

	schedules, _ := repo.ListSchedules(ctx)
	if len(schedules) != 5 {
		t.Fatalf("schedules = %d, want 5", len(schedules))
	}
	if schedules[0].ID != "monday-schedule" || schedules[0].Name != "Monday Classes" {
		t.Errorf("first schedule = %s %q", schedules[0].ID, schedules[0].Name)
	}

	items, _ := repo.ListAllItems(ctx)
	if len(items) != 40 {
		t.Fatalf("items = %d, want 40", len(items))
	}
	for _, it := range items {
		if it.StartTime >= it.EndTime {
			t.Errorf("%s: start %s not before end %s", it.ID, it.StartTime, it.EndTime)
		}
		if it.Duration != int(it.EndTime-it.StartTime) {
			t.Errorf("%s: duration %d", it.ID, it.Duration)
		}
	}

	thu, _ := repo.GetItem(ctx, "thu-3")
	if thu.Title != "Block A" || *thu.Room != "230" || thu.StartTime.String() != "09:44" {
		t.Errorf("thu-3 = %+v", thu)
	}
}
