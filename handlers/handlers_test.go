package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	scheduleRepo "classboard/database/repository/schedule"
	"classboard/models"
	"classboard/services/schedule"
	"classboard/services/timeutil"
	"classboard/utils"

	"github.com/gin-gonic/gin"
)

// Thursday, 2025-08-28 09:00 local.
var thursdayNine = time.Date(2025, time.August, 28, 9, 0, 0, 0, time.Local)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := scheduleRepo.NewMemoryScheduleRepo()
	if err := scheduleRepo.SeedWeek(context.Background(), repo); err != nil {
		t.Fatalf("SeedWeek: %v", err)
	}
	svc := &schedule.DefaultScheduleService{Repo: repo, Clock: timeutil.FixedClock(thursdayNine)}
	hb := NewHandlerBundle(NewScheduleHandler(svc), HealthHandler(utils.NewHealthMonitor("memory", nil, nil)))

	r := gin.New()
	r.Use(utils.ErrorHandler())
	r.GET("/api/schedules", hb.ListSchedulesHandler)
	r.GET("/api/schedules/:id", hb.GetScheduleHandler)
	r.POST("/api/schedules", hb.CreateScheduleHandler)
	r.PUT("/api/schedules/:id", hb.UpdateScheduleHandler)
	r.DELETE("/api/schedules/:id", hb.DeleteScheduleHandler)
	r.GET("/api/schedules/:id/items", hb.ListScheduleItemsFor)
	r.GET("/api/schedule-items", hb.ListItemsHandler)
	r.GET("/api/schedule-items/:id", hb.GetItemHandler)
	r.POST("/api/schedule-items", hb.CreateItemHandler)
	r.PUT("/api/schedule-items/:id", hb.UpdateItemHandler)
	r.DELETE("/api/schedule-items/:id", hb.DeleteItemHandler)
	r.GET("/api/dashboard", hb.DashboardHandler)
	r.GET("/health", hb.HealthHandler)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func TestListAndGetSchedules(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/schedules", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var schedules []models.Schedule
	decode(t, w, &schedules)
	if len(schedules) != 5 {
		t.Fatalf("got %d schedules, want 5", len(schedules))
	}

	w = do(t, r, http.MethodGet, "/api/schedules/thursday-schedule", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/schedules/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("missing status = %d, want 404", w.Code)
	}
	var errBody utils.ErrorResponse
	decode(t, w, &errBody)
	if errBody.Message != "Schedule not found" {
		t.Errorf("message = %q", errBody.Message)
	}
}

func TestCreateUpdateDeleteSchedule(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/schedules", `{"name":"Saturday Club","description":"Chess","category":"social","color":"#123456"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", w.Code, w.Body)
	}
	var created models.Schedule
	decode(t, w, &created)
	if created.ID == "" || !created.IsActive {
		t.Fatalf("created = %+v", created)
	}

	w = do(t, r, http.MethodPut, "/api/schedules/"+created.ID, `{"color":"#654321","isActive":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d body=%s", w.Code, w.Body)
	}
	var updated models.Schedule
	decode(t, w, &updated)
	if updated.Name != "Saturday Club" || updated.Color != "#654321" || updated.IsActive {
		t.Errorf("updated = %+v", updated)
	}

	if w := do(t, r, http.MethodDelete, "/api/schedules/"+created.ID, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/api/schedules/"+created.ID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
	if w := do(t, r, http.MethodPut, "/api/schedules/"+created.ID, `{"name":"x"}`); w.Code != http.StatusNotFound {
		t.Fatalf("update missing status = %d, want 404", w.Code)
	}
}

func TestCreateScheduleRejectsBadPayload(t *testing.T) {
	r := newTestRouter(t)

	for name, body := range map[string]string{
		"missing fields": `{"name":"Only name"}`,
		"malformed":      `{"name":`,
	} {
		t.Run(name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/schedules", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var errBody utils.ErrorResponse
			decode(t, w, &errBody)
			if errBody.Message != "Invalid schedule data" || errBody.Details == "" {
				t.Errorf("body = %+v", errBody)
			}
		})
	}
}

func TestScheduleItemEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/schedules/monday-schedule/items", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var items []models.ScheduleItem
	decode(t, w, &items)
	if len(items) != 8 {
		t.Fatalf("monday items = %d, want 8", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].StartTime < items[i-1].StartTime {
			t.Fatalf("items not ordered by start: %s before %s", items[i-1].StartTime, items[i].StartTime)
		}
	}

	w = do(t, r, http.MethodPost, "/api/schedule-items",
		`{"scheduleId":"monday-schedule","title":"Study Hall","dayOfWeek":1,"startTime":"15:30","endTime":"16:15"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d body=%s", w.Code, w.Body)
	}
	var created models.ScheduleItem
	decode(t, w, &created)
	if created.Duration != 45 || created.StartTime != models.MustClockTime("15:30") {
		t.Fatalf("created = %+v", created)
	}

	w = do(t, r, http.MethodGet, "/api/schedule-items/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = do(t, r, http.MethodPut, "/api/schedule-items/"+created.ID, `{"endTime":"16:30","room":"101"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d body=%s", w.Code, w.Body)
	}
	var updated models.ScheduleItem
	decode(t, w, &updated)
	if updated.Duration != 60 || updated.Room == nil || *updated.Room != "101" {
		t.Errorf("updated = %+v", updated)
	}

	if w := do(t, r, http.MethodDelete, "/api/schedule-items/"+created.ID, ""); w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/schedule-items/"+created.ID, ""); w.Code != http.StatusNotFound {
		t.Fatalf("get deleted status = %d, want 404", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/schedule-items", "")
	decode(t, w, &items)
	if len(items) != 40 {
		t.Errorf("all items = %d, want 40", len(items))
	}
}

func TestCreateItemRejectsInvalid(t *testing.T) {
	r := newTestRouter(t)

	cases := map[string]string{
		"missing day":      `{"scheduleId":"monday-schedule","title":"x","startTime":"09:00","endTime":"10:00"}`,
		"day out of range": `{"scheduleId":"monday-schedule","title":"x","dayOfWeek":7,"startTime":"09:00","endTime":"10:00"}`,
		"bad clock":        `{"scheduleId":"monday-schedule","title":"x","dayOfWeek":1,"startTime":"9am","endTime":"10:00"}`,
		"end before start": `{"scheduleId":"monday-schedule","title":"x","dayOfWeek":1,"startTime":"10:00","endTime":"09:00"}`,
		"unknown schedule": `{"scheduleId":"nope","title":"x","dayOfWeek":1,"startTime":"09:00","endTime":"10:00"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/schedule-items", body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (body=%s)", w.Code, w.Body)
			}
		})
	}
}

func TestDashboardEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var snap models.DashboardSnapshot
	decode(t, w, &snap)
	if snap.Today != "Thu" || snap.CurrentDate != "Thursday, August 28, 2025" {
		t.Errorf("today/date = %q / %q", snap.Today, snap.CurrentDate)
	}
	if snap.CurrentActivity == nil || snap.CurrentActivity.ID != "thu-2" {
		t.Fatalf("current = %+v", snap.CurrentActivity)
	}
	if snap.NextActivity == nil || snap.NextActivity.ID != "thu-3" {
		t.Fatalf("next = %+v", snap.NextActivity)
	}
	if snap.TimeRemaining != "43 min remaining" || snap.TimeUntilNext != "in 44 minutes" {
		t.Errorf("remaining/until = %q / %q", snap.TimeRemaining, snap.TimeUntilNext)
	}
	if snap.NextActivity.StartLabel != "9:44 AM" {
		t.Errorf("next start label = %q", snap.NextActivity.StartLabel)
	}

	if w := do(t, r, http.MethodGet, "/api/dashboard?scheduleId=nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing schedule status = %d, want 404", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/dashboard?scheduleId=monday-schedule", "")
	decode(t, w, &snap)
	if snap.CurrentActivity != nil || snap.NextActivity == nil || snap.NextActivity.ID != "mon-1" {
		t.Errorf("monday-only snapshot = %+v", snap)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Status   string             `json:"status"`
		Services utils.HealthStatus `json:"services"`
	}
	decode(t, w, &body)
	if body.Status != "ok" || body.Services.Storage != "memory" {
		t.Errorf("body = %+v", body)
	}
}
