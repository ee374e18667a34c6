package repository

import (
	"time"

	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
)

// PurchaseOrderFilter filtros de listado de órdenes de compra.
type PurchaseOrderFilter struct {
	Status     string
	SupplierID string
}

// PurchaseOrderRepository define el puerto de persistencia para órdenes de compra.
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	CreateItem(item *entity.PurchaseItem) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	GetForUpdate(id string) (*entity.PurchaseOrder, error)
	ListItems(orderID string) ([]*entity.PurchaseItem, error)
	List(filter PurchaseOrderFilter) ([]*entity.PurchaseOrder, error)
	UpdateStatus(id, status string) error
	SetReceived(id string, receivedDate time.Time) error
}
