package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// AuditHandler expone la consulta del canal de auditoría (solo Admin vía RBAC).
type AuditHandler struct {
	recorder *audit.Recorder
}

// NewAuditHandler construye el handler.
func NewAuditHandler(recorder *audit.Recorder) *AuditHandler {
	return &AuditHandler{recorder: recorder}
}

// List consulta registros (?user_id=&entity_type=&action=&start_date=&end_date=&limit=).
// GET /api/audit
func (h *AuditHandler) List(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit"))
	filter := repository.AuditFilter{
		UserID:     c.Query("user_id"),
		EntityType: c.Query("entity_type"),
		Action:     c.Query("action"),
		StartDate:  c.Query("start_date"),
		EndDate:    c.Query("end_date"),
		Limit:      limit,
	}
	logs, err := h.recorder.List(filter)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, &dto.AuditLogResponse{
			ID:         l.ID,
			UserID:     l.UserID,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Payload:    l.Payload,
			IPAddress:  l.IPAddress,
			CreatedAt:  l.CreatedAt,
		})
	}
	return c.JSON(out)
}
