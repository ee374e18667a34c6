package audit

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// Recorder inserta registros en el canal de auditoría después de cada
// mutación exitosa. Un fallo al registrar nunca se propaga al caller:
// se loguea y la operación de negocio sigue siendo exitosa.
type Recorder struct {
	auditRepo repository.AuditRepository
}

// NewRecorder construye el recorder.
func NewRecorder(auditRepo repository.AuditRepository) *Recorder {
	return &Recorder{auditRepo: auditRepo}
}

// Record inserta el registro de auditoría. payload es el JSON ya serializado
// de los valores enviados (sin contraseñas).
func (r *Recorder) Record(userID, action, entityType, entityID, payload, ip string) {
	entry := &entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Payload:    payload,
		IPAddress:  ip,
		CreatedAt:  time.Now(),
	}
	if err := r.auditRepo.Create(entry); err != nil {
		log.Error().Err(err).
			Str("action", action).
			Str("entity_type", entityType).
			Str("entity_id", entityID).
			Msg("no se pudo registrar la auditoría")
	}
}

// List consulta el canal de auditoría.
func (r *Recorder) List(filter repository.AuditFilter) ([]*entity.AuditLog, error) {
	return r.auditRepo.List(filter)
}
