package repository

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// LedgerFilter filtros de listado del libro contable.
type LedgerFilter struct {
	Type     string
	Category string
	Limit    int
}

// LedgerRepository define el puerto de persistencia del libro contable.
// Es append-only: no existe Update ni Delete.
type LedgerRepository interface {
	Append(entry *entity.LedgerEntry) error
	List(filter LedgerFilter) ([]*entity.LedgerEntry, error)
	ListByPeriod(year, month int) ([]*entity.LedgerEntry, error)
	// Summary recalcula los totales desde el libro completo en cada llamada.
	Summary() (*entity.LedgerSummary, error)
}
