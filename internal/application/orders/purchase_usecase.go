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

// PurchaseUseCase maneja el ciclo de vida de órdenes de compra:
// pending -> received (incrementa stock y registra asiento EXPENSE)
// o pending -> cancelled.
type PurchaseUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseOrderRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseOrderRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

// Create valida proveedor y productos, calcula los totales en el servidor y
// persiste cabecera y líneas en una sola transacción. No toca el stock:
// eso ocurre en Receive.
func (uc *PurchaseUseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Tax.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	subtotal := decimal.Zero
	items := make([]*entity.PurchaseItem, 0, len(in.Items))
	for i := range in.Items {
		line := &in.Items[i]
		if line.ProductID == "" || line.Quantity <= 0 || line.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		unitCost := line.UnitPrice
		if unitCost.IsZero() {
			unitCost = product.Cost
		}
		lineTotal := unitCost.Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		items = append(items, &entity.PurchaseItem{
			ID:        uuid.New().String(),
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitCost:  unitCost,
			Total:     lineTotal,
			CreatedAt: now,
		})
	}

	// El asiento EXPENSE de Receive exige monto > 0
	total := subtotal.Add(in.Tax)
	if !total.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	order := &entity.PurchaseOrder{
		ID:          uuid.New().String(),
		OrderNumber: fmt.Sprintf("PO-%d", now.UnixMilli()),
		SupplierID:  in.SupplierID,
		UserID:      userID,
		Subtotal:    subtotal,
		Tax:         in.Tax,
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

	err = uc.txRunner.RunOrders(ctx, func(
		_ repository.ProductRepository,
		_ repository.SalesOrderRepository,
		purchaseRepo repository.PurchaseOrderRepository,
		_ repository.InvoiceRepository,
		_ repository.LedgerRepository,
	) error {
		if err := purchaseRepo.Create(order); err != nil {
			return err
		}
		for _, it := range items {
			if err := purchaseRepo.CreateItem(it); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order, items), nil
}

// Receive ejecuta pending -> received dentro de una transacción: bloquea la
// cabecera y cada producto, suma las cantidades al stock, estampa received_date
// y registra el asiento EXPENSE en el libro.
func (uc *PurchaseUseCase) Receive(ctx context.Context, userID, orderID string) (*dto.PurchaseOrderResponse, error) {
	var order *entity.PurchaseOrder
	var items []*entity.PurchaseItem

	err := uc.txRunner.RunOrders(ctx, func(
		productRepo repository.ProductRepository,
		_ repository.SalesOrderRepository,
		purchaseRepo repository.PurchaseOrderRepository,
		_ repository.InvoiceRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		var err error
		order, err = purchaseRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status == entity.OrderReceived {
			return domain.ErrAlreadyReceived
		}
		if order.Status != entity.OrderPending {
			return domain.ErrOrderNotPending
		}
		items, err = purchaseRepo.ListItems(orderID)
		if err != nil {
			return err
		}

		now := time.Now()
		for _, it := range items {
			product, err := productRepo.GetForUpdate(it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := productRepo.UpdateStock(it.ProductID, product.Stock+it.Quantity); err != nil {
				return err
			}
		}

		if err := purchaseRepo.UpdateStatus(orderID, entity.OrderReceived); err != nil {
			return err
		}
		if err := purchaseRepo.SetReceived(orderID, now); err != nil {
			return err
		}
		order.Status = entity.OrderReceived
		order.ReceivedDate = &now
		order.UpdatedAt = now

		entry := &entity.LedgerEntry{
			ID:              uuid.New().String(),
			Type:            entity.LedgerExpense,
			Category:        "Purchases",
			Amount:          order.Total,
			Description:     fmt.Sprintf("Compra %s", order.OrderNumber),
			ReferenceType:   entity.RefPurchaseOrder,
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
	return toPurchaseOrderResponse(order, items), nil
}

// Cancel ejecuta pending -> cancelled. Una orden recibida no se cancela.
func (uc *PurchaseUseCase) Cancel(ctx context.Context, orderID string) (*dto.PurchaseOrderResponse, error) {
	var order *entity.PurchaseOrder

	err := uc.txRunner.RunOrders(ctx, func(
		_ repository.ProductRepository,
		_ repository.SalesOrderRepository,
		purchaseRepo repository.PurchaseOrderRepository,
		_ repository.InvoiceRepository,
		_ repository.LedgerRepository,
	) error {
		var err error
		order, err = purchaseRepo.GetForUpdate(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.Status != entity.OrderPending {
			return domain.ErrOrderNotPending
		}
		if err := purchaseRepo.UpdateStatus(orderID, entity.OrderCancelled); err != nil {
			return err
		}
		order.Status = entity.OrderCancelled
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseOrderResponse(order, nil), nil
}

// Get devuelve la orden con sus líneas.
func (uc *PurchaseUseCase) Get(ctx context.Context, orderID string) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.purchaseRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.purchaseRepo.ListItems(orderID)
	if err != nil {
		return nil, err
	}
	resp := toPurchaseOrderResponse(order, items)
	if supplier, sErr := uc.supplierRepo.GetByID(order.SupplierID); sErr == nil && supplier != nil {
		resp.SupplierName = supplier.Name
	}
	return resp, nil
}

// List devuelve las órdenes que cumplen el filtro, sin líneas.
func (uc *PurchaseUseCase) List(ctx context.Context, filter repository.PurchaseOrderFilter) ([]*dto.PurchaseOrderResponse, error) {
	orders, err := uc.purchaseRepo.List(filter)
	if err != nil {
		return nil, err
	}
	// Cache de nombres: varias órdenes suelen compartir proveedor.
	names := make(map[string]string)
	out := make([]*dto.PurchaseOrderResponse, 0, len(orders))
	for _, o := range orders {
		resp := toPurchaseOrderResponse(o, nil)
		name, ok := names[o.SupplierID]
		if !ok {
			if supplier, sErr := uc.supplierRepo.GetByID(o.SupplierID); sErr == nil && supplier != nil {
				name = supplier.Name
			}
			names[o.SupplierID] = name
		}
		resp.SupplierName = name
		out = append(out, resp)
	}
	return out, nil
}

func toPurchaseOrderResponse(order *entity.PurchaseOrder, items []*entity.PurchaseItem) *dto.PurchaseOrderResponse {
	resp := &dto.PurchaseOrderResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		SupplierID:   order.SupplierID,
		Subtotal:     order.Subtotal,
		Tax:          order.Tax,
		Total:        order.Total,
		Status:       order.Status,
		Notes:        order.Notes,
		OrderDate:    order.OrderDate,
		ReceivedDate: order.ReceivedDate,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitCost,
			Total:     it.Total,
		})
	}
	return resp
}
