package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest alta de proyecto. Progress no se acepta: es derivado.
type CreateProjectRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Client      string          `json:"client"`
	ManagerID   string          `json:"manager_id"`
	StartDate   string          `json:"start_date"` // YYYY-MM-DD
	EndDate     string          `json:"end_date"`
	Budget      decimal.Decimal `json:"budget"`
	Status      string          `json:"status"`
}

// UpdateProjectRequest modificación de proyecto.
type UpdateProjectRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Client      string           `json:"client"`
	ManagerID   string           `json:"manager_id"`
	StartDate   string           `json:"start_date"`
	EndDate     string           `json:"end_date"`
	Budget      *decimal.Decimal `json:"budget"`
	Status      string           `json:"status"`
}

// ProjectResponse proyecto en respuestas.
type ProjectResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Client      string          `json:"client,omitempty"`
	ManagerID   string          `json:"manager_id,omitempty"`
	StartDate   string          `json:"start_date,omitempty"`
	EndDate     string          `json:"end_date,omitempty"`
	Budget      decimal.Decimal `json:"budget"`
	Status      string          `json:"status"`
	Progress    int             `json:"progress"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateTaskRequest alta de tarea bajo un proyecto.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
}

// UpdateTaskRequest modificación de tarea; cambiar Status a completed
// estampa CompletedAt y recalcula el avance del proyecto.
type UpdateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AssignedTo  string `json:"assigned_to"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
}

// TaskResponse tarea en respuestas.
type TaskResponse struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	DueDate     string     `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
