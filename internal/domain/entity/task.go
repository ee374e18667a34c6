package entity

import "time"

// Estados de Task.
const (
	TaskTodo       = "todo"
	TaskInProgress = "in-progress"
	TaskReview     = "review"
	TaskCompleted  = "completed"
)

// Task tarea de un proyecto.
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	AssignedTo  string // employee ID
	Priority    string // low, medium, high
	Status      string
	DueDate     *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
