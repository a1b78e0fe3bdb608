package reschedule

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

type MockScheduleStorage struct {
	mock.Mock
}

func (m *MockScheduleStorage) GetSchedule(ctx context.Context, id int64) (*storage.ScheduleAssignment, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	a, ok := args.Get(0).(*storage.ScheduleAssignment)
	if !ok {
		return nil, fmt.Errorf("expected *storage.ScheduleAssignment, got %T", args.Get(0))
	}

	return a, args.Error(1)
}

func (m *MockScheduleStorage) GetSchedules(ctx context.Context, bayID int64) ([]storage.ScheduleAssignment, error) {
	args := m.Called(ctx, bayID)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	list, ok := args.Get(0).([]storage.ScheduleAssignment)
	if !ok {
		return nil, fmt.Errorf("expected []storage.ScheduleAssignment, got %T", args.Get(0))
	}

	return list, args.Error(1)
}

func (m *MockScheduleStorage) CreateSchedule(ctx context.Context, a storage.ScheduleAssignment) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockScheduleStorage) UpdateSchedule(ctx context.Context, a storage.ScheduleAssignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockScheduleStorage) DeleteSchedule(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func d(year int, month time.Month, day int) storage.Date {
	return storage.NewDate(year, month, day)
}

func TestMove_PreservesDuration(t *testing.T) {
	mockStorage := new(MockScheduleStorage)
	svc := NewScheduleService(mockStorage)

	original := &storage.ScheduleAssignment{
		ID: 7, ProjectID: 42, BayID: 1,
		StartDate: d(2025, 2, 1), EndDate: d(2025, 2, 8),
		Status: storage.ScheduleStatusScheduled,
	}
	mockStorage.On("GetSchedule", mock.Anything, int64(7)).Return(original, nil)
	mockStorage.On("GetSchedules", mock.Anything, int64(2)).Return([]storage.ScheduleAssignment{}, nil)
	mockStorage.On("UpdateSchedule", mock.Anything, mock.Anything).Return(nil)

	moved, err := svc.Move(context.Background(), 7, 2, d(2025, 3, 1))

	assert.NoError(t, err)
	assert.Equal(t, int64(2), moved.BayID)
	assert.Equal(t, d(2025, 3, 1), moved.StartDate)
	assert.Equal(t, d(2025, 3, 8), moved.EndDate)
	mockStorage.AssertCalled(t, "UpdateSchedule", mock.Anything, *moved)
}

func TestMove_ConflictRejectsWithoutCommit(t *testing.T) {
	mockStorage := new(MockScheduleStorage)
	svc := NewScheduleService(mockStorage)

	original := &storage.ScheduleAssignment{
		ID: 7, ProjectID: 42, BayID: 1,
		StartDate: d(2025, 2, 1), EndDate: d(2025, 2, 8),
		Status: storage.ScheduleStatusScheduled,
	}
	occupying := storage.ScheduleAssignment{
		ID: 9, ProjectID: 50, BayID: 2,
		StartDate: d(2025, 3, 8), EndDate: d(2025, 3, 20),
		Status: storage.ScheduleStatusScheduled,
	}
	mockStorage.On("GetSchedule", mock.Anything, int64(7)).Return(original, nil)
	mockStorage.On("GetSchedules", mock.Anything, int64(2)).Return([]storage.ScheduleAssignment{occupying}, nil)

	_, err := svc.Move(context.Background(), 7, 2, d(2025, 3, 1))

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(9), conflict.Conflicting.ID)
	mockStorage.AssertNotCalled(t, "UpdateSchedule", mock.Anything, mock.Anything)
}

func TestMove_SelfOverlapAllowed(t *testing.T) {
	mockStorage := new(MockScheduleStorage)
	svc := NewScheduleService(mockStorage)

	original := &storage.ScheduleAssignment{
		ID: 7, ProjectID: 42, BayID: 1,
		StartDate: d(2025, 2, 1), EndDate: d(2025, 2, 8),
		Status: storage.ScheduleStatusScheduled,
	}
	mockStorage.On("GetSchedule", mock.Anything, int64(7)).Return(original, nil)
	// nudging forward two days inside the same bay overlaps only itself
	mockStorage.On("GetSchedules", mock.Anything, int64(1)).Return([]storage.ScheduleAssignment{*original}, nil)
	mockStorage.On("UpdateSchedule", mock.Anything, mock.Anything).Return(nil)

	moved, err := svc.Move(context.Background(), 7, 1, d(2025, 2, 3))

	assert.NoError(t, err)
	assert.Equal(t, d(2025, 2, 10), moved.EndDate)
}

func TestMove_NotFound(t *testing.T) {
	mockStorage := new(MockScheduleStorage)
	svc := NewScheduleService(mockStorage)

	mockStorage.On("GetSchedule", mock.Anything, int64(99)).Return(nil, storage.ErrScheduleNotFound)

	_, err := svc.Move(context.Background(), 99, 2, d(2025, 3, 1))

	assert.ErrorIs(t, err, storage.ErrScheduleNotFound)
}

func TestCreate_GridDefaultDurations(t *testing.T) {
	tests := []struct {
		grid     string
		wantDays int
	}{
		{"day", 7},
		{"week", 14},
		{"month", 30},
		{"", 14},
	}

	for _, tt := range tests {
		t.Run("grid_"+tt.grid, func(t *testing.T) {
			mockStorage := new(MockScheduleStorage)
			svc := NewScheduleService(mockStorage)

			mockStorage.On("GetSchedules", mock.Anything, int64(3)).Return([]storage.ScheduleAssignment{}, nil)
			mockStorage.On("CreateSchedule", mock.Anything, mock.Anything).Return(int64(15), nil)

			created, err := svc.Create(context.Background(), storage.CreateSchedule{
				ProjectID: 42, BayID: 3, StartDate: d(2025, 6, 1), Grid: tt.grid,
			})

			assert.NoError(t, err)
			assert.Equal(t, int64(15), created.ID)
			assert.Equal(t, storage.ScheduleStatusScheduled, created.Status)
			assert.Equal(t, d(2025, 6, 1).AddDays(tt.wantDays), created.EndDate)
		})
	}
}

func TestCreate_ConflictRejectsWithoutCommit(t *testing.T) {
	mockStorage := new(MockScheduleStorage)
	svc := NewScheduleService(mockStorage)

	occupying := storage.ScheduleAssignment{
		ID: 1, ProjectID: 9, BayID: 3,
		StartDate: d(2025, 6, 1), EndDate: d(2025, 6, 10),
		Status: storage.ScheduleStatusScheduled,
	}
	mockStorage.On("GetSchedules", mock.Anything, int64(3)).Return([]storage.ScheduleAssignment{occupying}, nil)

	// touching the existing end day is already a conflict
	_, err := svc.Create(context.Background(), storage.CreateSchedule{
		ProjectID: 42, BayID: 3, StartDate: d(2025, 6, 10), Grid: "day",
	})

	var conflict *ConflictError
	assert.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(1), conflict.Conflicting.ID)
	mockStorage.AssertNotCalled(t, "CreateSchedule", mock.Anything, mock.Anything)
}

func TestCreate_MissingFields(t *testing.T) {
	svc := NewScheduleService(new(MockScheduleStorage))

	_, err := svc.Create(context.Background(), storage.CreateSchedule{BayID: 3, StartDate: d(2025, 6, 1)})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), storage.CreateSchedule{ProjectID: 42, StartDate: d(2025, 6, 1)})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), storage.CreateSchedule{ProjectID: 42, BayID: 3})
	assert.Error(t, err)
}

func TestUpdateStatus(t *testing.T) {
	mockStorage := new(MockScheduleStorage)
	svc := NewScheduleService(mockStorage)

	original := &storage.ScheduleAssignment{
		ID: 7, ProjectID: 42, BayID: 1,
		StartDate: d(2025, 2, 1), EndDate: d(2025, 2, 8),
		Status: storage.ScheduleStatusScheduled,
	}
	mockStorage.On("GetSchedule", mock.Anything, int64(7)).Return(original, nil)
	mockStorage.On("UpdateSchedule", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), 7, storage.ScheduleStatusInProgress)

	assert.NoError(t, err)
	assert.Equal(t, storage.ScheduleStatusInProgress, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), 7, "paused")
	assert.Error(t, err)
}

func TestUnschedule(t *testing.T) {
	mockStorage := new(MockScheduleStorage)
	svc := NewScheduleService(mockStorage)

	mockStorage.On("DeleteSchedule", mock.Anything, int64(7)).Return(nil)
	assert.NoError(t, svc.Unschedule(context.Background(), 7))

	mockStorage.On("DeleteSchedule", mock.Anything, int64(8)).Return(storage.ErrScheduleNotFound)
	assert.True(t, errors.Is(svc.Unschedule(context.Background(), 8), storage.ErrScheduleNotFound))
}
