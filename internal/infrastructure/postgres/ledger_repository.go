package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository (usable con pool o tx).
// El libro es append-only: aquí no hay UPDATE ni DELETE.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

const ledgerColumns = `id, type, category, amount, description, reference_type, reference_id, user_id, transaction_date, created_at`

// Append inserta una entrada en el libro.
func (r *LedgerRepo) Append(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO ledger_entries (` + ledgerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.Type, entry.Category, entry.Amount, entry.Description,
		entry.ReferenceType, entry.ReferenceID, entry.UserID, entry.TransactionDate, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append ledger entry: %w", err)
	}
	return nil
}

// List devuelve las entradas según el filtro, más reciente primero.
func (r *LedgerRepo) List(filter repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	query := `SELECT ` + ledgerColumns + ` FROM ledger_entries WHERE 1=1`
	var args []any
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(` AND type = $%d`, len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	query += ` ORDER BY transaction_date DESC, created_at DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}
	return r.list(query, args...)
}

// ListByPeriod devuelve las entradas de un mes.
func (r *LedgerRepo) ListByPeriod(year, month int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerColumns + `
		FROM ledger_entries
		WHERE EXTRACT(YEAR FROM transaction_date) = $1
		  AND EXTRACT(MONTH FROM transaction_date) = $2
		ORDER BY transaction_date, created_at`
	return r.list(query, year, month)
}

func (r *LedgerRepo) list(query string, args ...any) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		var e entity.LedgerEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Category, &e.Amount, &e.Description,
			&e.ReferenceType, &e.ReferenceID, &e.UserID, &e.TransactionDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Summary recalcula los totales desde el libro completo en cada llamada.
func (r *LedgerRepo) Summary() (*entity.LedgerSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'INCOME'), 0),
			COALESCE(SUM(amount) FILTER (WHERE type = 'EXPENSE'), 0)
		FROM ledger_entries`
	var income, expense decimal.Decimal
	err := r.q.QueryRow(context.Background(), query).Scan(&income, &expense)
	if err != nil {
		return nil, fmt.Errorf("ledger summary: %w", err)
	}
	return &entity.LedgerSummary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}, nil
}
