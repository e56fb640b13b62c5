package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts a demo advertising account so the API can be exercised
// locally without provisioning real credentials.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `INSERT INTO accounts (id, name, access_token)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		1, "demo account", "demo-access-token")
	return err
}
