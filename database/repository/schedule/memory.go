package scheduleRepo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"classboard/models"

	"github.com/google/uuid"
)

// MemoryScheduleRepo keeps schedules and items in process memory.
type MemoryScheduleRepo struct {
	mu        sync.RWMutex
	schedules map[string]models.Schedule
	items     map[string]models.ScheduleItem
	// insertion sequence, used to keep listings stable across map iteration
	scheduleSeq map[string]int
	itemSeq     map[string]int
	next        int
}

// NewMemoryScheduleRepo returns an empty in-memory repository.
func NewMemoryScheduleRepo() *MemoryScheduleRepo {
	return &MemoryScheduleRepo{
		schedules:   make(map[string]models.Schedule),
		items:       make(map[string]models.ScheduleItem),
		scheduleSeq: make(map[string]int),
		itemSeq:     make(map[string]int),
	}
}

func (r *MemoryScheduleRepo) seq() int {
	r.next++
	return r.next
}

func (r *MemoryScheduleRepo) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Schedule, 0, len(r.schedules))
	for _, s := range r.schedules {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b models.Schedule) int {
		return cmp.Compare(r.scheduleSeq[a.ID], r.scheduleSeq[b.ID])
	})
	return out, nil
}

func (r *MemoryScheduleRepo) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schedules[id]
	if !ok {
		return nil, fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	return &s, nil
}

func (r *MemoryScheduleRepo) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	if _, exists := r.schedules[schedule.ID]; exists {
		return fmt.Errorf("schedule with id %s already exists", schedule.ID)
	}
	now := time.Now()
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = now
	}
	if schedule.UpdatedAt.IsZero() {
		schedule.UpdatedAt = now
	}
	r.schedules[schedule.ID] = *schedule
	r.scheduleSeq[schedule.ID] = r.seq()
	return nil
}

func (r *MemoryScheduleRepo) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schedules[schedule.ID]; !ok {
		return fmt.Errorf("schedule %s: %w", schedule.ID, ErrNotFound)
	}
	r.schedules[schedule.ID] = *schedule
	return nil
}

func (r *MemoryScheduleRepo) DeleteSchedule(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.schedules[id]; !ok {
		return fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	delete(r.schedules, id)
	delete(r.scheduleSeq, id)
	for itemID, it := range r.items {
		if it.ScheduleID == id {
			delete(r.items, itemID)
			delete(r.itemSeq, itemID)
		}
	}
	return nil
}

func (r *MemoryScheduleRepo) ListItems(ctx context.Context, scheduleID string) ([]models.ScheduleItem, error) {
	return r.listItems(func(it models.ScheduleItem) bool { return it.ScheduleID == scheduleID }), nil
}

func (r *MemoryScheduleRepo) ListAllItems(ctx context.Context) ([]models.ScheduleItem, error) {
	return r.listItems(func(models.ScheduleItem) bool { return true }), nil
}

func (r *MemoryScheduleRepo) listItems(keep func(models.ScheduleItem) bool) []models.ScheduleItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ScheduleItem, 0)
	for _, it := range r.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	slices.SortFunc(out, func(a, b models.ScheduleItem) int {
		return cmp.Or(
			cmp.Compare(a.DayOfWeek, b.DayOfWeek),
			cmp.Compare(a.StartTime, b.StartTime),
			cmp.Compare(r.itemSeq[a.ID], r.itemSeq[b.ID]),
		)
	})
	return out
}

func (r *MemoryScheduleRepo) GetItem(ctx context.Context, id string) (*models.ScheduleItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	it, ok := r.items[id]
	if !ok {
		return nil, fmt.Errorf("schedule item %s: %w", id, ErrNotFound)
	}
	return &it, nil
}

func (r *MemoryScheduleRepo) CreateItem(ctx context.Context, item *models.ScheduleItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if _, exists := r.items[item.ID]; exists {
		return fmt.Errorf("schedule item with id %s already exists", item.ID)
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	r.items[item.ID] = *item
	r.itemSeq[item.ID] = r.seq()
	return nil
}

func (r *MemoryScheduleRepo) UpdateItem(ctx context.Context, item *models.ScheduleItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		return fmt.Errorf("schedule item %s: %w", item.ID, ErrNotFound)
	}
	r.items[item.ID] = *item
	return nil
}

func (r *MemoryScheduleRepo) DeleteItem(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return fmt.Errorf("schedule item %s: %w", id, ErrNotFound)
	}
	delete(r.items, id)
	delete(r.itemSeq, id)
	return nil
}
