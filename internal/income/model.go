package income

import "github.com/shopspring/decimal"

// Income is one income record. Records belong to whatever userId the caller
// supplied; no further ownership check happens at this layer.
type Income struct {
	ID     string          `json:"id"`
	UserID string          `json:"userId"`
	Amount decimal.Decimal `json:"amount"`
	Source string          `json:"source"`
}

// Pointer fields keep "missing" distinguishable from a zero value.
type CreateIncomeRequest struct {
	UserID *string          `json:"userId"`
	Amount *decimal.Decimal `json:"amount"`
	Source *string          `json:"source"`
}

type UpdateIncomeRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Source *string          `json:"source"`
}

type CreateIncomeResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type UpdateIncomeResponse struct {
	Message string  `json:"message"`
	Income  *Income `json:"income"`
}
