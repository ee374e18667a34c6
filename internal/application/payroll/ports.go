package payroll

import (
	"context"

	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Pagar una nómina cambia el registro y el
// libro contable juntos o no cambia nada.
type TxRunner interface {
	RunPayroll(ctx context.Context, fn func(
		payrollRepo repository.PayrollRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
