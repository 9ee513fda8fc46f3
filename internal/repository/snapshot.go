package repository

import (
	"context"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

func (r *Postgres) ExportSnapshot(ownerID int64) (*domain.Snapshot, error) {
	staff, err := r.ListStaff(ownerID)
	if err != nil {
		return nil, err
	}

	taskTypes, err := r.ListTaskTypes(ownerID)
	if err != nil {
		return nil, err
	}

	requests, err := r.ListRequests(ownerID)
	if err != nil {
		return nil, err
	}

	shifts, err := r.ListShifts(ownerID)
	if err != nil {
		return nil, err
	}

	assignments, err := r.ListAssignments(ownerID)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{
		Staff:       staff,
		TaskTypes:   taskTypes,
		Requests:    requests,
		Shifts:      shifts,
		Assignments: assignments,
	}, nil
}

// ImportSnapshot 用快照整体覆盖该用户的数据，在一个事务中先清空再写入
func (r *Postgres) ImportSnapshot(ownerID int64, snapshot *domain.Snapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	tables := []string{"task_assignments", "shift_requests", "shifts", "task_types", "staff"}
	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE owner_id = $1", ownerID); err != nil {
			return err
		}
	}

	for _, s := range snapshot.Staff {
		query := `INSERT INTO staff (id, owner_id, name) VALUES ($1, $2, $3)`
		if _, err := tx.ExecContext(ctx, query, s.ID, ownerID, s.Name); err != nil {
			return mapUniqueViolation(err)
		}
	}

	for _, t := range snapshot.TaskTypes {
		query := `INSERT INTO task_types (id, owner_id, name, color, text_color, duration) VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := tx.ExecContext(ctx, query, t.ID, ownerID, t.Name, t.Color, t.TextColor, t.Duration); err != nil {
			return mapUniqueViolation(err)
		}
	}

	for _, req := range snapshot.Requests {
		query := `INSERT INTO shift_requests (id, owner_id, staff_id, date, type) VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.ExecContext(ctx, query, req.ID, ownerID, req.StaffID, req.Date, req.Type); err != nil {
			return mapUniqueViolation(err)
		}
	}

	for _, s := range snapshot.Shifts {
		query := `INSERT INTO shifts (id, owner_id, staff_id, date, shift_type) VALUES ($1, $2, $3, $4, $5)`
		if _, err := tx.ExecContext(ctx, query, s.ID, ownerID, s.StaffID, s.Date, s.ShiftType); err != nil {
			return mapUniqueViolation(err)
		}
	}

	for _, a := range snapshot.Assignments {
		query := `INSERT INTO task_assignments (id, owner_id, staff_id, date, start_time, end_time, task_type_id) VALUES ($1, $2, $3, $4, $5, $6, $7)`
		if _, err := tx.ExecContext(ctx, query, a.ID, ownerID, a.StaffID, a.Date, a.StartTime, a.EndTime, a.TaskTypeID); err != nil {
			return mapUniqueViolation(err)
		}
	}

	return tx.Commit()
}
