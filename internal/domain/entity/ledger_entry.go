package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro contable.
const (
	LedgerIncome  = "INCOME"
	LedgerExpense = "EXPENSE"
)

// Tipos de referencia para entradas generadas por los flujos.
const (
	RefSalesOrder    = "sales_order"
	RefPurchaseOrder = "purchase_order"
	RefPayroll       = "payroll"
)

// LedgerEntry es un registro append-only: nunca se actualiza ni se borra
// después del insert. Amount siempre > 0; el signo lo da Type.
type LedgerEntry struct {
	ID              string
	Type            string // INCOME | EXPENSE
	Category        string
	Amount          decimal.Decimal
	Description     string
	ReferenceType   string // sales_order, purchase_order, payroll; vacío en entradas manuales
	ReferenceID     string
	UserID          string
	TransactionDate time.Time
	CreatedAt       time.Time
}

// LedgerSummary totales derivados del libro completo.
type LedgerSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal // Income - Expense
}
