package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// SalesUseCase maneja el ciclo de vida de órdenes de venta:
// pending -> confirmed (descuenta stock, emite factura y asiento INCOME)
// o pending -> cancelled. Confirmar es transaccional con bloqueo de fila.
type SalesUseCase struct {
	txRunner     TxRunner
	salesRepo    repository.SalesOrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	invoiceRepo  repository.InvoiceRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(
	txRunner TxRunner,
	salesRepo repository.SalesOrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) *SalesUseCase {
	return &SalesUseCase{
		txRunner:     txRunner,
		salesRepo:    salesRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Create valida cliente, productos y stock disponible, calcula los totales en
// el servidor y persiste cabecera y líneas en una sola transacción.
// El chequeo de stock aquí es informativo; el chequeo definitivo ocurre en Confirm.
func (uc *SalesUseCase) Create(ctx context.Context, userID string, in dto.CreateSalesOrderRequest) (*dto.SalesOrderResponse, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Tax.IsNegative() || in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	subtotal := decimal.Zero
	items := make([]*entity.SalesItem, 0, len(in.Items))
	for i := range in.Items {
		line := &in.Items[i]
		if line.ProductID == "" || line.Quantity <= 0 || line.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.Status != entity.ProductActive {
			return nil, domain.ErrNotFound
		}
		if product.Stock < line.Quantity {
			return nil, domain.ErrInsufficientStock
		}
		unitPrice := line.UnitPrice
		if unitPrice.IsZero() {
			unitPrice = product.Price
		}
		lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		items = append(items, &entity.SalesItem{
			ID:        uuid.New().String(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: unitPrice,
			Total:     lineTotal,
			CreatedAt: now,
		})
	}

	// El asiento contable exige monto > 0: una orden de total cero o negativo
	// no se puede facturar, se rechaza antes de persistir nada
	total := subtotal.Add(in.Tax).Sub(in.Discount)
	if !total.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.SalesOrder{
		ID:          uuid.New().String(),
		OrderNumber: fmt.Sprintf("SO-%d", now.UnixMilli()),
		CustomerID:  in.CustomerID,
		UserID:      userID,
		Subtotal:    subtotal,
		Tax:         in.Tax,
		Discount:    in.Discount,
		Total:       total,
		Status:      entity.OrderPending,
		Notes:       in.Notes,
		OrderDate:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, it := range items {
		it.OrderID = order.ID
	}

	// Cabecera y líneas se insertan juntas o no se inserta nada
	err = uc.txRunner.RunOrders(ctx, func(
		_ repository.ProductRepository,
		salesRepo repository.SalesOrderRepository,
		_ repository.PurchaseOrderRepository,
		_ repository.InvoiceRepository,
		_ repository.LedgerRepository,
	) error {
		if err := salesRepo.Create(order); err != nil {
			return err
		}
		for _, it := range items {
			if err := salesRepo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSalesOrderResponse(order, items), nil
}

// Confirm ejecuta la transición pending -> confirmed dentro de una transacción:
// bloquea la cabecera y cada producto (SELECT FOR UPDATE), revalida el stock,
// lo descuenta, emite la factura y registra el asiento INCOME en el libro.
func (uc *SalesUseCase) Confirm(ctx context.Context, userID, orderID string) (*dto.SalesOrderResponse, error) {
	var order *entity.SalesOrder
	var items []*entity.SalesItem

	err := uc.txRunner.RunOrders(ctx, func(
		productRepo repository.ProductRepository,
		salesRepo repository.SalesOrderRepository,
		_ repository.PurchaseOrderRepository,
		invoiceRepo repository.InvoiceRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		var err error
		order, err = salesRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderPending {
			return domain.ErrOrderNotPending
		}
		items, err = salesRepo.ListItems(orderID)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, it := range items {
			// Bloquea la fila del producto y revalida contra el stock actual,
			// no contra el que había al crear la orden
			product, err := productRepo.GetForUpdate(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.Stock < it.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := productRepo.UpdateStock(it.ProductID, product.Stock-it.Quantity); err != nil {
				return err
			}
		}

		if err := salesRepo.UpdateStatus(orderID, entity.OrderConfirmed); err != nil {
			return err
		}
		order.Status = entity.OrderConfirmed
		order.UpdatedAt = now

		inv := &entity.Invoice{
			ID:            uuid.New().String(),
			InvoiceNumber: fmt.Sprintf("INV-%d", now.UnixMilli()),
			OrderID:       order.ID,
			CustomerID:    order.CustomerID,
			Amount:        order.Subtotal,
			Tax:           order.Tax,
			Total:         order.Total,
			Status:        entity.InvoiceUnpaid,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}

		entry := &entity.LedgerEntry{
			ID:              uuid.New().String(),
			Type:            entity.LedgerIncome,
			Category:        "Sales",
			Amount:          order.Total,
			Description:     fmt.Sprintf("Venta %s", order.OrderNumber),
			ReferenceType:   entity.RefSalesOrder,
			ReferenceID:     order.ID,
			UserID:          userID,
			TransactionDate: now,
			CreatedAt:       now,
		}
		return ledgerRepo.Append(entry)
	})
	if err != nil {
		return nil, err
	}
	return toSalesOrderResponse(order, items), nil
}

// Cancel ejecuta pending -> cancelled. Una orden confirmada no se cancela.
func (uc *SalesUseCase) Cancel(ctx context.Context, orderID string) (*dto.SalesOrderResponse, error) {
	var order *entity.SalesOrder

	err := uc.txRunner.RunOrders(ctx, func(
		_ repository.ProductRepository,
		salesRepo repository.SalesOrderRepository,
		_ repository.PurchaseOrderRepository,
		_ repository.InvoiceRepository,
		_ repository.LedgerRepository,
	) error {
		var err error
		order, err = salesRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderPending {
			return domain.ErrOrderNotPending
		}
		if err := salesRepo.UpdateStatus(orderID, entity.OrderCancelled); err != nil {
			return err
		}
		order.Status = entity.OrderCancelled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toSalesOrderResponse(order, nil), nil
}

// Get devuelve la orden con sus líneas.
func (uc *SalesUseCase) Get(ctx context.Context, orderID string) (*dto.SalesOrderResponse, error) {
	order, err := uc.salesRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.salesRepo.ListItems(orderID)
	if err != nil {
		return nil, err
	}
	resp := toSalesOrderResponse(order, items)
	if customer, cErr := uc.customerRepo.GetByID(order.CustomerID); cErr == nil && customer != nil {
		resp.CustomerName = customer.Name
	}
	return resp, nil
}

// List devuelve las órdenes que cumplen el filtro, sin líneas.
func (uc *SalesUseCase) List(ctx context.Context, filter repository.SalesOrderFilter) ([]*dto.SalesOrderResponse, error) {
	orders, err := uc.salesRepo.List(filter)
	if err != nil {
		return nil, err
	}
	// Cache de nombres: varias órdenes suelen compartir cliente.
	names := make(map[string]string)
	out := make([]*dto.SalesOrderResponse, 0, len(orders))
	for _, o := range orders {
		resp := toSalesOrderResponse(o, nil)
		name, ok := names[o.CustomerID]
		if !ok {
			if customer, cErr := uc.customerRepo.GetByID(o.CustomerID); cErr == nil && customer != nil {
				name = customer.Name
			}
			names[o.CustomerID] = name
		}
		resp.CustomerName = name
		out = append(out, resp)
	}
	return out, nil
}

// ListInvoices devuelve todas las facturas emitidas.
func (uc *SalesUseCase) ListInvoices(ctx context.Context) ([]*dto.InvoiceResponse, error) {
	invoices, err := uc.invoiceRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv))
	}
	return out, nil
}

// GetInvoice devuelve una factura por ID.
func (uc *SalesUseCase) GetInvoice(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	resp := toInvoiceResponse(inv)
	if customer, cErr := uc.customerRepo.GetByID(inv.CustomerID); cErr == nil && customer != nil {
		resp.CustomerName = customer.Name
	}
	return resp, nil
}

func toSalesOrderResponse(order *entity.SalesOrder, items []*entity.SalesItem) *dto.SalesOrderResponse {
	resp := &dto.SalesOrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		Subtotal:    order.Subtotal,
		Tax:         order.Tax,
		Discount:    order.Discount,
		Total:       order.Total,
		Status:      order.Status,
		Notes:       order.Notes,
		OrderDate:   order.OrderDate,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}
	return resp
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		OrderID:       inv.OrderID,
		CustomerID:    inv.CustomerID,
		Amount:        inv.Amount,
		Tax:           inv.Tax,
		Total:         inv.Total,
		Status:        inv.Status,
		CreatedAt:     inv.CreatedAt,
	}
}
