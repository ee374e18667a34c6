package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
)

// UserHandler maneja la administración de usuarios (solo Admin vía RBAC).
type UserHandler struct {
	uc       *usecase.UserUseCase
	recorder *audit.Recorder
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, recorder *audit.Recorder) *UserHandler {
	return &UserHandler{uc: uc, recorder: recorder}
}

// Create crea un usuario con rol.
// POST /api/users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	user, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "create", "user", user.ID, "", c.IP())
	return c.Status(fiber.StatusCreated).JSON(user)
}

// List lista todos los usuarios.
// GET /api/users
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// GetByID obtiene un usuario.
// GET /api/users/:id
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// Update actualiza nombre, email, rol, estado o password.
// PUT /api/users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	user, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "update", "user", user.ID, "", c.IP())
	return c.JSON(user)
}

// Deactivate desactiva un usuario (soft delete).
// DELETE /api/users/:id
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Deactivate(id); err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "deactivate", "user", id, "", c.IP())
	return c.JSON(dto.MessageResponse{Message: "usuario desactivado"})
}
