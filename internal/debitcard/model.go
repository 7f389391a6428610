package debitcard

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebitCard is the stored shape. CardNumber is always the masked form.
type DebitCard struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	CardNumber     string          `json:"cardNumber"`
	CardholderName string          `json:"cardholderName"`
	ExpirationDate time.Time       `json:"expirationDate"`
	AccountBalance decimal.Decimal `json:"accountBalance"`
	BankName       string          `json:"bankName"`
}

type CreateDebitCardRequest struct {
	UserID         *string          `json:"userId"`
	CardNumber     *string          `json:"cardNumber"`
	CardholderName *string          `json:"cardholderName"`
	ExpirationDate *string          `json:"expirationDate"`
	AccountBalance *decimal.Decimal `json:"accountBalance"`
	BankName       *string          `json:"bankName"`
}

// The update path re-checks presence only; card number format is not
// re-validated, but the value is still masked before storage. bankName is
// not part of the update field set.
type UpdateDebitCardRequest struct {
	CardNumber     *string          `json:"cardNumber"`
	CardholderName *string          `json:"cardholderName"`
	ExpirationDate *string          `json:"expirationDate"`
	AccountBalance *decimal.Decimal `json:"accountBalance"`
}

// Fields is the validated field set applied by UpdateByID.
type Fields struct {
	CardNumber     string
	CardholderName string
	ExpirationDate time.Time
	AccountBalance decimal.Decimal
}

type CreateDebitCardResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdateDebitCardResponse struct {
	Message   string     `json:"message"`
	DebitCard *DebitCard `json:"debitCard"`
}
