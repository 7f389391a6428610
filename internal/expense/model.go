package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is one expense record. CreatedAt is stamped by the store on insert.
type Expense struct {
	ID           string          `json:"id"`
	UserID       string          `json:"userId"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	DateIncurred time.Time       `json:"dateIncurred"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// Dates travel as strings so the handler can report a parse failure as a
// validation error instead of a decode failure.
type CreateExpenseRequest struct {
	UserID       *string          `json:"userId"`
	Amount       *decimal.Decimal `json:"amount"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	DateIncurred *string          `json:"dateIncurred"`
}

type UpdateExpenseRequest struct {
	Amount       *decimal.Decimal `json:"amount"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	DateIncurred *string          `json:"dateIncurred"`
}

// Fields is the validated field set applied by UpdateByID.
type Fields struct {
	Amount       decimal.Decimal
	Category     string
	Description  string
	DateIncurred time.Time
}

type CreateExpenseResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdateExpenseResponse struct {
	Message string   `json:"message"`
	Expense *Expense `json:"expense"`
}
