package repository

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(status string) ([]*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Deactivate(id string) error
}
