package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

const scheduleColumns = "id, project_id, bay_id, start_date, end_date, status"

func (s *Storage) GetSchedules(ctx context.Context, bayID int64) ([]storage.ScheduleAssignment, error) {
	const op = "storage.mysql.GetSchedules"

	query := "SELECT " + scheduleColumns + " FROM manufacturing_schedules"
	var args []interface{}
	if bayID != 0 {
		query += " WHERE bay_id = ?"
		args = append(args, bayID)
	}
	query += " ORDER BY start_date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var schedules []storage.ScheduleAssignment
	for rows.Next() {
		var a storage.ScheduleAssignment
		err := rows.Scan(&a.ID, &a.ProjectID, &a.BayID, &a.StartDate, &a.EndDate, &a.Status)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		schedules = append(schedules, a)
	}

	return schedules, rows.Err()
}

func (s *Storage) GetSchedule(ctx context.Context, id int64) (*storage.ScheduleAssignment, error) {
	const op = "storage.mysql.GetSchedule"

	var a storage.ScheduleAssignment
	err := s.db.QueryRowContext(ctx,
		"SELECT "+scheduleColumns+" FROM manufacturing_schedules WHERE id = ?", id,
	).Scan(&a.ID, &a.ProjectID, &a.BayID, &a.StartDate, &a.EndDate, &a.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrScheduleNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &a, nil
}

func (s *Storage) CreateSchedule(ctx context.Context, a storage.ScheduleAssignment) (int64, error) {
	const op = "storage.mysql.CreateSchedule"

	res, err := s.db.ExecContext(ctx, `
        INSERT INTO manufacturing_schedules (project_id, bay_id, start_date, end_date, status)
        VALUES (?, ?, ?, ?, ?)`,
		a.ProjectID, a.BayID, a.StartDate, a.EndDate, a.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateSchedule(ctx context.Context, a storage.ScheduleAssignment) error {
	const op = "storage.mysql.UpdateSchedule"

	res, err := s.db.ExecContext(ctx, `
        UPDATE manufacturing_schedules
        SET bay_id = ?, start_date = ?, end_date = ?, status = ?
        WHERE id = ?`,
		a.BayID, a.StartDate, a.EndDate, a.Status, a.ID,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		var exists int
		if err := s.db.QueryRowContext(ctx, "SELECT 1 FROM manufacturing_schedules WHERE id = ?", a.ID).Scan(&exists); err != nil {
			return fmt.Errorf("%s: %w", op, storage.ErrScheduleNotFound)
		}
	}

	return nil
}

func (s *Storage) DeleteSchedule(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteSchedule"

	res, err := s.db.ExecContext(ctx, "DELETE FROM manufacturing_schedules WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrScheduleNotFound)
	}

	return nil
}
