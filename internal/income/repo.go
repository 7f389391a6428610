package income

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ErrNotFound signals a well-formed id with no matching record.
var ErrNotFound = errors.New("income not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Income, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id::text, user_id, amount, source
		FROM income
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Income, 0)
	for rows.Next() {
		var inc Income
		if err := rows.Scan(&inc.ID, &inc.UserID, &inc.Amount, &inc.Source); err != nil {
			return nil, err
		}
		out = append(out, inc)
	}
	return out, rows.Err()
}

func (r *Repository) Insert(ctx context.Context, inc *Income) (string, error) {
	var id string
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO income (user_id, amount, source)
		VALUES ($1, $2, $3)
		RETURNING id::text
	`, inc.UserID, inc.Amount, inc.Source).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) UpdateByID(ctx context.Context, id string, amount decimal.Decimal, source string) (*Income, error) {
	var inc Income
	err := r.Pool.QueryRow(ctx, `
		UPDATE income
		SET amount = $2, source = $3
		WHERE id = $1::uuid
		RETURNING id::text, user_id, amount, source
	`, id, amount, source).Scan(&inc.ID, &inc.UserID, &inc.Amount, &inc.Source)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inc, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id string) (int64, error) {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM income WHERE id = $1::uuid`, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
