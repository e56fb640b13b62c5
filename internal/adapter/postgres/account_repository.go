package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AccountRepository implements port.TokenSource against the accounts table.
// Tokens are stored opaque; issuance and refresh happen outside this
// service. Account id 0 selects the fallback token from configuration.
type AccountRepository struct {
	pool          *pgxpool.Pool
	fallbackToken string
}

// NewAccountRepository returns a new repository instance. fallbackToken may
// be empty, in which case requests without an account id fail.
func NewAccountRepository(pool *pgxpool.Pool, fallbackToken string) *AccountRepository {
	return &AccountRepository{pool: pool, fallbackToken: fallbackToken}
}

// Token returns the access token of the advertising account.
func (r *AccountRepository) Token(ctx context.Context, accountID int64) (string, error) {
	if accountID == 0 {
		if r.fallbackToken == "" {
			return "", errors.New("no account id given and no default access token configured")
		}
		return r.fallbackToken, nil
	}

	var token string
	err := r.pool.QueryRow(ctx, `SELECT access_token FROM accounts WHERE id = $1`, accountID).Scan(&token)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("account %d not found", accountID)
	}
	if err != nil {
		return "", err
	}
	return token, nil
}
