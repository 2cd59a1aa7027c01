package postgres

import (
	"context"

	"github.com/pressly/goose/v3"

	"github.com/briandean03/interview-form/internal/store/postgres/migrations"
)

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, c *Client) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, c.SQL(), ".")
}
