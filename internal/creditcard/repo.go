package creditcard

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals a well-formed id with no matching record.
var ErrNotFound = errors.New("credit card not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]CreditCard, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id::text, user_id, card_number, cardholder_name, expiration_date, cvv, credit_limit, current_balance
		FROM credit_cards
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CreditCard, 0)
	for rows.Next() {
		var cc CreditCard
		if err := rows.Scan(&cc.ID, &cc.UserID, &cc.CardNumber, &cc.CardholderName,
			&cc.ExpirationDate, &cc.CVV, &cc.CreditLimit, &cc.CurrentBalance); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}

func (r *Repository) Insert(ctx context.Context, cc *CreditCard) (string, error) {
	var id string
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO credit_cards (user_id, card_number, cardholder_name, expiration_date, cvv, credit_limit, current_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id::text
	`, cc.UserID, cc.CardNumber, cc.CardholderName, cc.ExpirationDate, cc.CVV, cc.CreditLimit, cc.CurrentBalance).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *Repository) UpdateByID(ctx context.Context, id string, f Fields) (*CreditCard, error) {
	var cc CreditCard
	err := r.Pool.QueryRow(ctx, `
		UPDATE credit_cards
		SET card_number = $2, cardholder_name = $3, expiration_date = $4, cvv = $5, credit_limit = $6, current_balance = $7
		WHERE id = $1::uuid
		RETURNING id::text, user_id, card_number, cardholder_name, expiration_date, cvv, credit_limit, current_balance
	`, id, f.CardNumber, f.CardholderName, f.ExpirationDate, f.CVV, f.CreditLimit, f.CurrentBalance).
		Scan(&cc.ID, &cc.UserID, &cc.CardNumber, &cc.CardholderName,
			&cc.ExpirationDate, &cc.CVV, &cc.CreditLimit, &cc.CurrentBalance)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cc, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id string) (int64, error) {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM credit_cards WHERE id = $1::uuid`, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
