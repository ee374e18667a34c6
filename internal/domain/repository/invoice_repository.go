package repository

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para facturas.
type InvoiceRepository interface {
	Create(inv *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	GetByOrderID(orderID string) (*entity.Invoice, error)
	List() ([]*entity.Invoice, error)
}
