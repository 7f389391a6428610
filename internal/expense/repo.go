package expense

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals a well-formed id with no matching record.
var ErrNotFound = errors.New("expense not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]Expense, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id::text, user_id, amount, category, description, date_incurred, created_at
		FROM expenses
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Expense, 0)
	for rows.Next() {
		var e Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.Description, &e.DateIncurred, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Insert stores the expense, lets the store stamp created_at, and re-reads
// the row so the returned value reflects exactly what was persisted.
func (r *Repository) Insert(ctx context.Context, exp *Expense) (*Expense, error) {
	var id string
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO expenses (user_id, amount, category, description, date_incurred)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id::text
	`, exp.UserID, exp.Amount, exp.Category, exp.Description, exp.DateIncurred).Scan(&id)
	if err != nil {
		return nil, err
	}
	return r.getByID(ctx, id)
}

func (r *Repository) getByID(ctx context.Context, id string) (*Expense, error) {
	var e Expense
	err := r.Pool.QueryRow(ctx, `
		SELECT id::text, user_id, amount, category, description, date_incurred, created_at
		FROM expenses
		WHERE id = $1::uuid
	`, id).Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.Description, &e.DateIncurred, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) UpdateByID(ctx context.Context, id string, f Fields) (*Expense, error) {
	var e Expense
	err := r.Pool.QueryRow(ctx, `
		UPDATE expenses
		SET amount = $2, category = $3, description = $4, date_incurred = $5
		WHERE id = $1::uuid
		RETURNING id::text, user_id, amount, category, description, date_incurred, created_at
	`, id, f.Amount, f.Category, f.Description, f.DateIncurred).
		Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.Description, &e.DateIncurred, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id string) (int64, error) {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1::uuid`, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
