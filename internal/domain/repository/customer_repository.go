package repository

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// CustomerRepository define el puerto de persistencia para Customer.
// Deactivate es borrado suave: nunca se elimina la fila.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(status string) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Deactivate(id string) error
}
