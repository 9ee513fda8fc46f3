package repository

import (
	"context"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

func (r *Postgres) ListShifts(ownerID int64) ([]*domain.Shift, error) {
	query := `
		SELECT id, staff_id, date, shift_type
		FROM shifts WHERE owner_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		s := &domain.Shift{OwnerID: ownerID}
		if err := rows.Scan(&s.ID, &s.StaffID, &s.Date, &s.ShiftType); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Postgres) ListShiftsByDate(ownerID int64, date string) ([]*domain.Shift, error) {
	query := `
		SELECT id, staff_id, shift_type
		FROM shifts WHERE owner_id = $1 AND date = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ownerID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]*domain.Shift, 0)
	for rows.Next() {
		s := &domain.Shift{OwnerID: ownerID, Date: date}
		if err := rows.Scan(&s.ID, &s.StaffID, &s.ShiftType); err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shifts, nil
}

func (r *Postgres) UpsertShift(shift *domain.Shift) error {
	// ID 由 {staffId}-{date} 派生，重复写同一天等价于覆盖，
	// 与排班表上"最后一次选择生效"的交互一致
	query := `
		INSERT INTO shifts (id, owner_id, staff_id, date, shift_type)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner_id, id) DO UPDATE SET shift_type = EXCLUDED.shift_type
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{shift.ID, shift.OwnerID, shift.StaffID, shift.Date, shift.ShiftType}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return err
	}

	return nil
}
