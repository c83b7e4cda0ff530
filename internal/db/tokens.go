package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgx/v4"
)

func (db *DB) TokensFor(ctx context.Context, employeeCode string) ([]string, error) {
	const fn = "DB:TokensFor"
	var tokens []string
	err := pgxscan.Select(ctx, db.pool, &tokens, `
			SELECT token
			FROM push_tokens
			WHERE employee_code = $1
			ORDER BY created_at ASC
		`, employeeCode)
	if err != nil {
		if err == pgx.ErrNoRows {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return tokens, nil
}
