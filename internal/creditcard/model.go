package creditcard

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditCard is the stored shape. CardNumber is always the masked form; the
// full number never reaches the store.
type CreditCard struct {
	ID             string          `json:"id"`
	UserID         string          `json:"userId"`
	CardNumber     string          `json:"cardNumber"`
	CardholderName string          `json:"cardholderName"`
	ExpirationDate time.Time       `json:"expirationDate"`
	CVV            string          `json:"cvv"`
	CreditLimit    decimal.Decimal `json:"creditLimit"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
}

type CreateCreditCardRequest struct {
	UserID         *string          `json:"userId"`
	CardNumber     *string          `json:"cardNumber"`
	CardholderName *string          `json:"cardholderName"`
	ExpirationDate *string          `json:"expirationDate"`
	CVV            *string          `json:"cvv"`
	CreditLimit    *decimal.Decimal `json:"creditLimit"`
	CurrentBalance *decimal.Decimal `json:"currentBalance"`
}

type UpdateCreditCardRequest struct {
	CardNumber     *string          `json:"cardNumber"`
	CardholderName *string          `json:"cardholderName"`
	ExpirationDate *string          `json:"expirationDate"`
	CVV            *string          `json:"cvv"`
	CreditLimit    *decimal.Decimal `json:"creditLimit"`
	CurrentBalance *decimal.Decimal `json:"currentBalance"`
}

// Fields is the validated field set applied by UpdateByID. CardNumber is
// already masked by the handler.
type Fields struct {
	CardNumber     string
	CardholderName string
	ExpirationDate time.Time
	CVV            string
	CreditLimit    decimal.Decimal
	CurrentBalance decimal.Decimal
}

type CreateCreditCardResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdateCreditCardResponse struct {
	Message    string      `json:"message"`
	CreditCard *CreditCard `json:"creditCard"`
}
