package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MahlumInnovationsLLC/MasterScheduler-sub001/internal/storage"
)

func (s *Storage) GetProjects(ctx context.Context, status string) ([]storage.Project, error) {
	const op = "storage.mysql.GetProjects"

	query := `
        SELECT id, project_number, name, total_hours, percent_complete, status,
               COALESCE(fab_percentage, ?),
               COALESCE(paint_percentage, ?),
               COALESCE(production_percentage, ?),
               COALESCE(it_percentage, ?),
               COALESCE(ntc_percentage, ?),
               COALESCE(qc_percentage, ?),
               fabrication_start, paint_start, production_start, it_start,
               ntc_testing_date, qc_start_date, ship_date, delivery_date
        FROM projects`
	args := []interface{}{
		storage.DefaultFabPercentage,
		storage.DefaultPaintPercentage,
		storage.DefaultProductionPercentage,
		storage.DefaultITPercentage,
		storage.DefaultNTCPercentage,
		storage.DefaultQCPercentage,
	}

	if status != "" {
		query += " WHERE status = ?"
		args = append(args, status)
	}
	query += " ORDER BY project_number ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var projects []storage.Project
	for rows.Next() {
		var p storage.Project
		var totalHours sql.NullFloat64
		var fabStart, paintStart, prodStart, itStart, ntcDate, qcDate, shipDate, deliveryDate sql.NullTime

		err := rows.Scan(
			&p.ID, &p.ProjectNumber, &p.Name, &totalHours, &p.PercentComplete, &p.Status,
			&p.FabPercentage, &p.PaintPercentage, &p.ProductionPercentage,
			&p.ITPercentage, &p.NTCPercentage, &p.QCPercentage,
			&fabStart, &paintStart, &prodStart, &itStart,
			&ntcDate, &qcDate, &shipDate, &deliveryDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		if totalHours.Valid {
			p.TotalHours = &totalHours.Float64
		}
		p.FabricationStart = nullDate(fabStart)
		p.PaintStart = nullDate(paintStart)
		p.ProductionStart = nullDate(prodStart)
		p.ITStart = nullDate(itStart)
		p.NTCTestingDate = nullDate(ntcDate)
		p.QCStartDate = nullDate(qcDate)
		p.ShipDate = nullDate(shipDate)
		p.DeliveryDate = nullDate(deliveryDate)

		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func nullDate(t sql.NullTime) *storage.Date {
	if !t.Valid {
		return nil
	}
	d := storage.DateOf(t.Time)
	return &d
}
