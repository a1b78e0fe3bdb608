package save

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/service/reschedule"
	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type MockScheduleCreator struct {
	mock.Mock
}

func (m *MockScheduleCreator) Create(ctx context.Context, req storage.CreateSchedule) (*storage.ScheduleAssignment, error) {
	args := m.Called(ctx, req)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	a, ok := args.Get(0).(*storage.ScheduleAssignment)
	if !ok {
		return nil, fmt.Errorf("expected *storage.ScheduleAssignment, got %T", args.Get(0))
	}

	return a, args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&strings.Builder{}, nil))
}

func TestCreateSchedule_Success(t *testing.T) {
	mockCreator := new(MockScheduleCreator)

	created := &storage.ScheduleAssignment{
		ID: 15, ProjectID: 42, BayID: 3,
		StartDate: storage.NewDate(2025, 6, 1),
		EndDate:   storage.NewDate(2025, 6, 8),
		Status:    storage.ScheduleStatusScheduled,
	}
	mockCreator.On("Create", mock.Anything, mock.Anything).Return(created, nil)

	body := `{"project_id":42,"bay_id":3,"start_date":"2025-06-01","grid":"day"}`
	req := httptest.NewRequest(http.MethodPost, "/api/schedules", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateSchedule(testLogger(), mockCreator)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got storage.ScheduleAssignment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(15), got.ID)
	assert.Equal(t, "2025-06-08", got.EndDate.String())
}

func TestCreateSchedule_ConflictReturns409(t *testing.T) {
	mockCreator := new(MockScheduleCreator)

	occupying := storage.ScheduleAssignment{
		ID: 1, ProjectID: 9, BayID: 3,
		StartDate: storage.NewDate(2025, 6, 1),
		EndDate:   storage.NewDate(2025, 6, 10),
		Status:    storage.ScheduleStatusScheduled,
	}
	mockCreator.On("Create", mock.Anything, mock.Anything).Return(nil, &reschedule.ConflictError{Conflicting: occupying})

	body := `{"project_id":42,"bay_id":3,"start_date":"2025-06-10","grid":"day"}`
	req := httptest.NewRequest(http.MethodPost, "/api/schedules", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateSchedule(testLogger(), mockCreator)(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp struct {
		Error    string                     `json:"error"`
		Conflict storage.ScheduleAssignment `json:"conflict"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "schedule_conflict", resp.Error)
	assert.Equal(t, int64(1), resp.Conflict.ID)
}

func TestCreateSchedule_BadRequest(t *testing.T) {
	mockCreator := new(MockScheduleCreator)

	// missing bay_id
	body := `{"project_id":42,"start_date":"2025-06-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/schedules", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateSchedule(testLogger(), mockCreator)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockCreator.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)

	// broken JSON
	req = httptest.NewRequest(http.MethodPost, "/api/schedules", strings.NewReader(`{"project_id":`))
	rec = httptest.NewRecorder()

	CreateSchedule(testLogger(), mockCreator)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateSchedule_StorageError(t *testing.T) {
	mockCreator := new(MockScheduleCreator)
	mockCreator.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	body := `{"project_id":42,"bay_id":3,"start_date":"2025-06-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/schedules", strings.NewReader(body))
	rec := httptest.NewRecorder()

	CreateSchedule(testLogger(), mockCreator)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
