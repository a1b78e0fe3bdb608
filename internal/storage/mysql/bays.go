package mysql

import (
	"context"
	"fmt"
	"strings"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

func (s *Storage) GetBays(ctx context.Context) ([]storage.Bay, error) {
	const op = "storage.mysql.GetBays"

	query := `
        SELECT id, name, bay_number, team, is_active, staff_count,
               COALESCE(hours_per_person_per_week, ?)
        FROM manufacturing_bays
        ORDER BY bay_number ASC`

	rows, err := s.db.QueryContext(ctx, query, storage.DefaultHoursPerPersonPerWeek)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var bays []storage.Bay
	for rows.Next() {
		var b storage.Bay
		err := rows.Scan(&b.ID, &b.Name, &b.BayNumber, &b.Team, &b.IsActive, &b.StaffCount, &b.HoursPerPersonPerWeek)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		bays = append(bays, b)
	}

	return bays, rows.Err()
}

func (s *Storage) UpdateBay(ctx context.Context, id int64, update storage.UpdateBay) error {
	const op = "storage.mysql.UpdateBay"

	var sets []string
	var args []interface{}

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Team != nil {
		sets = append(sets, "team = ?")
		args = append(args, *update.Team)
	}
	if update.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *update.IsActive)
	}
	if update.StaffCount != nil {
		sets = append(sets, "staff_count = ?")
		args = append(args, *update.StaffCount)
	}
	if update.HoursPerPersonPerWeek != nil {
		sets = append(sets, "hours_per_person_per_week = ?")
		args = append(args, *update.HoursPerPersonPerWeek)
	}

	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE manufacturing_bays SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		// either the bay is gone or nothing changed; check which
		var exists int
		err := s.db.QueryRowContext(ctx, "SELECT 1 FROM manufacturing_bays WHERE id = ?", id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("%s: %w", op, storage.ErrBayNotFound)
		}
	}

	return nil
}
