package repository

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(emp *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	GetByCode(code string) (*entity.Employee, error)
	GetByUserID(userID string) (*entity.Employee, error)
	List(status string) ([]*entity.Employee, error)
	Update(emp *entity.Employee) error
	Terminate(id string) error
}
