package repository

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// AuditFilter filtros de consulta del canal de auditoría.
type AuditFilter struct {
	UserID     string
	EntityType string
	Action     string
	StartDate  string // YYYY-MM-DD
	EndDate    string
	Limit      int
}

// AuditRepository define el puerto de persistencia del canal de auditoría.
type AuditRepository interface {
	Create(log *entity.AuditLog) error
	List(filter AuditFilter) ([]*entity.AuditLog, error)
}
