package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/careshift-dev/roster-manager/backend/internal/config"
	"github.com/jackc/pgx/v5/pgconn"
)

type Postgres struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewPostgres(cfg *config.Config, dbpool *sql.DB) *Postgres {
	return &Postgres{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

// mapUniqueViolation 把 postgres 的唯一约束冲突统一转换成 ErrDuplicate，
// 这样调用方不需要感知具体的后端
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
