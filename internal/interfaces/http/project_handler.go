package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
)

// ProjectHandler maneja proyectos y sus tareas.
type ProjectHandler struct {
	uc       *usecase.ProjectUseCase
	recorder *audit.Recorder
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase, recorder *audit.Recorder) *ProjectHandler {
	return &ProjectHandler{uc: uc, recorder: recorder}
}

// Create crea un proyecto en estado planning y progreso cero.
// POST /api/projects
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	project, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "create", "project", project.ID, "", c.IP())
	return c.Status(fiber.StatusCreated).JSON(project)
}

// List lista proyectos (?status=active).
// GET /api/projects
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// GetByID obtiene un proyecto.
// GET /api/projects/:id
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	project, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(project)
}

// Update actualiza un proyecto. El progreso es derivado de las tareas y se
// ignora si viene en el cuerpo.
// PUT /api/projects/:id
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	project, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "update", "project", project.ID, "", c.IP())
	return c.JSON(project)
}

// CreateTask crea una tarea dentro del proyecto y recalcula el progreso.
// POST /api/projects/:id/tasks
func (h *ProjectHandler) CreateTask(c *fiber.Ctx) error {
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	task, err := h.uc.CreateTask(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "create", "task", task.ID, "", c.IP())
	return c.Status(fiber.StatusCreated).JSON(task)
}

// ListTasks lista las tareas de un proyecto.
// GET /api/projects/:id/tasks
func (h *ProjectHandler) ListTasks(c *fiber.Ctx) error {
	list, err := h.uc.ListTasks(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// UpdateTask actualiza una tarea del proyecto y recalcula el progreso si
// cambió el estado.
// PUT /api/projects/:id/tasks/:taskId
func (h *ProjectHandler) UpdateTask(c *fiber.Ctx) error {
	var in dto.UpdateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	task, err := h.uc.UpdateTask(c.Params("id"), c.Params("taskId"), in)
	if err != nil {
		return respondError(c, err)
	}
	h.recorder.Record(GetUserID(c), "update", "task", task.ID, "", c.IP())
	return c.JSON(task)
}
