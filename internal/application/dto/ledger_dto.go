package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest entrada manual del libro contable.
type CreateLedgerEntryRequest struct {
	Type            string          `json:"type"` // INCOME | EXPENSE
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	TransactionDate string          `json:"transaction_date"` // YYYY-MM-DD, opcional
}

// LedgerEntryResponse entrada del libro en respuestas.
type LedgerEntryResponse struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description,omitempty"`
	ReferenceType   string          `json:"reference_type,omitempty"`
	ReferenceID     string          `json:"reference_id,omitempty"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LedgerSummaryResponse totales derivados.
type LedgerSummaryResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Balance decimal.Decimal `json:"balance"`
}

// LedgerReportResponse reporte mensual.
type LedgerReportResponse struct {
	Period  string                `json:"period"` // YYYY-MM
	Income  decimal.Decimal       `json:"income"`
	Expense decimal.Decimal       `json:"expense"`
	Profit  decimal.Decimal       `json:"profit"`
	Entries []*LedgerEntryResponse `json:"entries"`
}
