package repository

import (
	"context"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

func (r *Postgres) ListTaskTypes(ownerID int64) ([]*domain.TaskType, error) {
	query := `
		SELECT id, name, color, text_color, duration, created_at, version
		FROM task_types WHERE owner_id = $1
		ORDER BY created_at
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	taskTypes := make([]*domain.TaskType, 0)
	for rows.Next() {
		t := &domain.TaskType{OwnerID: ownerID}
		dst := []any{&t.ID, &t.Name, &t.Color, &t.TextColor, &t.Duration, &t.CreatedAt, &t.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		taskTypes = append(taskTypes, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return taskTypes, nil
}

func (r *Postgres) GetTaskTypeByID(ownerID int64, id string) (*domain.TaskType, error) {
	query := `
		SELECT name, color, text_color, duration, created_at, version
		FROM task_types WHERE owner_id = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	t := &domain.TaskType{
		ID:      id,
		OwnerID: ownerID,
	}

	dst := []any{&t.Name, &t.Color, &t.TextColor, &t.Duration, &t.CreatedAt, &t.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, ownerID, id).Scan(dst...); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *Postgres) InsertTaskType(taskType *domain.TaskType) error {
	query := `
		INSERT INTO task_types (id, owner_id, name, color, text_color, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{taskType.ID, taskType.OwnerID, taskType.Name, taskType.Color, taskType.TextColor, taskType.Duration}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&taskType.CreatedAt, &taskType.Version); err != nil {
		return mapUniqueViolation(err)
	}

	return nil
}

func (r *Postgres) UpdateTaskType(taskType *domain.TaskType) error {
	query := `
		UPDATE task_types
		SET
			name = $1,
			color = $2,
			text_color = $3,
			duration = $4,
			version = version + 1
		WHERE owner_id = $5 AND id = $6 AND version = $7
		RETURNING created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{taskType.Name, taskType.Color, taskType.TextColor, taskType.Duration, taskType.OwnerID, taskType.ID, taskType.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&taskType.CreatedAt, &taskType.Version); err != nil {
		return err
	}

	return nil
}

func (r *Postgres) DeleteTaskType(ownerID int64, id string) error {
	// 引用了该业务类型的历史分配记录会保留
	query := `
		DELETE FROM task_types WHERE owner_id = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, ownerID, id); err != nil {
		return err
	}

	return nil
}
