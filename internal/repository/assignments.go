package repository

import (
	"context"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

func (r *Postgres) ListAssignments(ownerID int64) ([]*domain.TaskAssignment, error) {
	query := `
		SELECT id, staff_id, date, start_time, end_time, task_type_id
		FROM task_assignments WHERE owner_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.TaskAssignment, 0)
	for rows.Next() {
		a := &domain.TaskAssignment{OwnerID: ownerID}
		dst := []any{&a.ID, &a.StaffID, &a.Date, &a.StartTime, &a.EndTime, &a.TaskTypeID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *Postgres) ListAssignmentsByDate(ownerID int64, date string) ([]*domain.TaskAssignment, error) {
	query := `
		SELECT id, staff_id, start_time, end_time, task_type_id
		FROM task_assignments WHERE owner_id = $1 AND date = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ownerID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*domain.TaskAssignment, 0)
	for rows.Next() {
		a := &domain.TaskAssignment{OwnerID: ownerID, Date: date}
		dst := []any{&a.ID, &a.StaffID, &a.StartTime, &a.EndTime, &a.TaskTypeID}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (r *Postgres) InsertAssignment(assignment *domain.TaskAssignment) error {
	query := `
		INSERT INTO task_assignments (id, owner_id, staff_id, date, start_time, end_time, task_type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{assignment.ID, assignment.OwnerID, assignment.StaffID, assignment.Date, assignment.StartTime, assignment.EndTime, assignment.TaskTypeID}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return mapUniqueViolation(err)
	}

	return nil
}

func (r *Postgres) BulkInsertAssignments(assignments []*domain.TaskAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO task_assignments (id, owner_id, staff_id, date, start_time, end_time, task_type_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, a := range assignments {
		args := []any{a.ID, a.OwnerID, a.StaffID, a.Date, a.StartTime, a.EndTime, a.TaskTypeID}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return mapUniqueViolation(err)
		}
	}

	return tx.Commit()
}

func (r *Postgres) DeleteAssignment(ownerID int64, id string) error {
	query := `
		DELETE FROM task_assignments WHERE owner_id = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, ownerID, id); err != nil {
		return err
	}

	return nil
}

func (r *Postgres) DeleteAssignmentsByDate(ownerID int64, date string) (int64, error) {
	query := `
		DELETE FROM task_assignments WHERE owner_id = $1 AND date = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	result, err := r.dbpool.ExecContext(ctx, query, ownerID, date)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
