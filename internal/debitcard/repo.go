package debitcard

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound signals a well-formed id with no matching record.
var ErrNotFound = errors.New("debit card not found")

type Repository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{Pool: pool}
}

func (r *Repository) ListByUser(ctx context.Context, userID string) ([]DebitCard, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id::text, user_id, card_number, cardholder_name, expiration_date, account_balance, bank_name
		FROM debit_cards
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]DebitCard, 0)
	for rows.Next() {
		var dc DebitCard
		if err := rows.Scan(&dc.ID, &dc.UserID, &dc.CardNumber, &dc.CardholderName,
			&dc.ExpirationDate, &dc.AccountBalance, &dc.BankName); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

func (r *Repository) Insert(ctx context.Context, dc *DebitCard) (string, error) {
	var id string
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO debit_cards (user_id, card_number, cardholder_name, expiration_date, account_balance, bank_name)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id::text
	`, dc.UserID, dc.CardNumber, dc.CardholderName, dc.ExpirationDate, dc.AccountBalance, dc.BankName).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

// UpdateByID replaces the updatable field set; bank_name is left untouched.
func (r *Repository) UpdateByID(ctx context.Context, id string, f Fields) (*DebitCard, error) {
	var dc DebitCard
	err := r.Pool.QueryRow(ctx, `
		UPDATE debit_cards
		SET card_number = $2, cardholder_name = $3, expiration_date = $4, account_balance = $5
		WHERE id = $1::uuid
		RETURNING id::text, user_id, card_number, cardholder_name, expiration_date, account_balance, bank_name
	`, id, f.CardNumber, f.CardholderName, f.ExpirationDate, f.AccountBalance).
		Scan(&dc.ID, &dc.UserID, &dc.CardNumber, &dc.CardholderName,
			&dc.ExpirationDate, &dc.AccountBalance, &dc.BankName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dc, nil
}

func (r *Repository) DeleteByID(ctx context.Context, id string) (int64, error) {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM debit_cards WHERE id = $1::uuid`, id)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
