package application

import (
	"context"
	"embed"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

// MigrationRegistry collects per-module embedded goose migrations and
// applies them in registration order against a shared database.
type MigrationRegistry struct {
	schemas []Schema
}

func (m *MigrationRegistry) RegisterSchema(fsys *embed.FS, dir string) {
	m.schemas = append(m.schemas, Schema{FS: fsys, Dir: dir})
}

func (m *MigrationRegistry) Run(ctx context.Context, pool *pgxpool.Pool, logger *logrus.Logger) error {
	if len(m.schemas) == 0 {
		return nil
	}
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil && logger != nil {
			logger.WithError(err).Warn("failed to close migration connection")
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	for _, schema := range m.schemas {
		goose.SetBaseFS(schema.FS)
		if err := goose.UpContext(ctx, db, schema.Dir); err != nil {
			return err
		}
	}
	goose.SetBaseFS(nil)
	return nil
}
