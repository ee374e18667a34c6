package orders

import (
	"context"

	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor de órdenes:
// stock, estado de la orden, factura y asiento contable cambian juntos o no cambian.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		salesRepo repository.SalesOrderRepository,
		purchaseRepo repository.PurchaseOrderRepository,
		invoiceRepo repository.InvoiceRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}
