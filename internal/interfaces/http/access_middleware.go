package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/domain/rbac"
)

// LocalSelfOnly marca que el rol solo puede ver registros propios; los
// handlers de asistencia y nómina lo usan para forzar el filtro por empleado.
const LocalSelfOnly = "self_only"

// RequireAccess devuelve un middleware Fiber que verifica en la matriz RBAC si
// el rol del token puede ejecutar la acción sobre el módulo. Debe usarse
// DESPUÉS de AuthMiddleware (necesita LocalRole).
func RequireAccess(module, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "rol no encontrado en el token",
			})
		}
		if !rbac.Allowed(role, module, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "el rol '" + role + "' no tiene acceso a " + module + ":" + action,
			})
		}
		c.Locals(LocalSelfOnly, rbac.SelfOnly(role))
		return c.Next()
	}
}

// IsSelfOnly indica si la petición quedó marcada como acceso solo-propio.
func IsSelfOnly(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocalSelfOnly).(bool)
	return v
}
