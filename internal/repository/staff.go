package repository

import (
	"context"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

func (r *Postgres) ListStaff(ownerID int64) ([]*domain.Staff, error) {
	query := `
		SELECT id, name, created_at, version
		FROM staff WHERE owner_id = $1
		ORDER BY created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staff := make([]*domain.Staff, 0)
	for rows.Next() {
		s := &domain.Staff{OwnerID: ownerID}
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.Version); err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *Postgres) GetStaffByID(ownerID int64, id string) (*domain.Staff, error) {
	query := `
		SELECT name, created_at, version
		FROM staff WHERE owner_id = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	s := &domain.Staff{
		ID:      id,
		OwnerID: ownerID,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, ownerID, id).Scan(&s.Name, &s.CreatedAt, &s.Version); err != nil {
		return nil, err
	}

	return s, nil
}

func (r *Postgres) InsertStaff(staff *domain.Staff) error {
	query := `
		INSERT INTO staff (id, owner_id, name)
		VALUES ($1, $2, $3)
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{staff.ID, staff.OwnerID, staff.Name}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&staff.CreatedAt, &staff.Version); err != nil {
		return mapUniqueViolation(err)
	}

	return nil
}

func (r *Postgres) UpdateStaff(staff *domain.Staff) error {
	query := `
		UPDATE staff
		SET
			name = $1,
			version = version + 1
		WHERE owner_id = $2 AND id = $3 AND version = $4
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{staff.Name, staff.OwnerID, staff.ID, staff.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&staff.CreatedAt, &staff.Version); err != nil {
		return err
	}

	return nil
}

func (r *Postgres) DeleteStaff(ownerID int64, id string) error {
	// 历史班次和业务分配会保留，悬空引用是允许的
	query := `
		DELETE FROM staff WHERE owner_id = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, ownerID, id); err != nil {
		return err
	}

	return nil
}
