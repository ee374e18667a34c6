package repository

import (
	"time"

	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
)

// PayrollRepository define el puerto de persistencia para nómina.
type PayrollRepository interface {
	Create(rec *entity.PayrollRecord) error
	GetByID(id string) (*entity.PayrollRecord, error)
	GetByEmployeePeriod(employeeID string, month, year int) (*entity.PayrollRecord, error)
	List(month, year int) ([]*entity.PayrollRecord, error)
	ListByEmployee(employeeID string) ([]*entity.PayrollRecord, error)
	MarkPaid(id string, paidDate time.Time) error
}
