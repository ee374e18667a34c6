package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/erp-pyme/internal/application/orders"
	"github.com/tu-usuario/erp-pyme/internal/application/payroll"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// Ensure TxRunner implements orders.TxRunner and payroll.TxRunner.
var _ orders.TxRunner = (*TxRunner)(nil)
var _ payroll.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunOrders inicia una transacción, ejecuta fn con los repos del motor de
// órdenes atados a la tx y hace Commit o Rollback.
func (r *TxRunner) RunOrders(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	salesRepo repository.SalesOrderRepository,
	purchaseRepo repository.PurchaseOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	productRepo := NewProductRepository(tx)
	salesRepo := NewSalesOrderRepository(tx)
	purchaseRepo := NewPurchaseOrderRepository(tx)
	invoiceRepo := NewInvoiceRepository(tx)
	ledgerRepo := NewLedgerRepository(tx)

	if err := fn(productRepo, salesRepo, purchaseRepo, invoiceRepo, ledgerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPayroll inicia una transacción con los repos de nómina y libro contable.
func (r *TxRunner) RunPayroll(ctx context.Context, fn func(
	payrollRepo repository.PayrollRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	payrollRepo := NewPayrollRepository(tx)
	ledgerRepo := NewLedgerRepository(tx)

	if err := fn(payrollRepo, ledgerRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
