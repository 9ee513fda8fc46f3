package repository

import (
	"context"
	"time"

	"github.com/careshift-dev/roster-manager/backend/internal/domain"
)

func (r *Postgres) ListRequests(ownerID int64) ([]*domain.ShiftRequest, error) {
	query := `
		SELECT id, staff_id, date, type
		FROM shift_requests WHERE owner_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.ShiftRequest, 0)
	for rows.Next() {
		req := &domain.ShiftRequest{OwnerID: ownerID}
		if err := rows.Scan(&req.ID, &req.StaffID, &req.Date, &req.Type); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (r *Postgres) InsertRequest(request *domain.ShiftRequest) error {
	// (owner_id, staff_id, date) 上有唯一索引，
	// 同一职员同一天的重复申请会被拒绝，保证班次解析结果是确定的
	query := `
		INSERT INTO shift_requests (id, owner_id, staff_id, date, type)
		VALUES ($1, $2, $3, $4, $5)
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	args := []any{request.ID, request.OwnerID, request.StaffID, request.Date, request.Type}
	if _, err := r.dbpool.ExecContext(ctx, query, args...); err != nil {
		return mapUniqueViolation(err)
	}

	return nil
}

func (r *Postgres) DeleteRequest(ownerID int64, id string) error {
	query := `
		DELETE FROM shift_requests WHERE owner_id = $1 AND id = $2
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if _, err := r.dbpool.ExecContext(ctx, query, ownerID, id); err != nil {
		return err
	}

	return nil
}
