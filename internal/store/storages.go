package store

import (
	"context"
	"strings"

	"github.com/alternajob/user-service/internal/config"
	"github.com/alternajob/user-service/internal/logger"
)

// Storages bundles every repository the application uses.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages connects to the database selected by the DSN scheme and wires
// the repositories. "postgres://" (or "postgresql://") selects PostgreSQL;
// anything else is treated as an SQLite file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if strings.HasPrefix(cfg.DB.DSN, "postgres://") || strings.HasPrefix(cfg.DB.DSN, "postgresql://") {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
	}, nil
}
