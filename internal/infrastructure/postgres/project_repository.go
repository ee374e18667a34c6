package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)
var _ repository.TaskRepository = (*TaskRepo)(nil)

// ProjectRepo implementación de ProjectRepository (usable con pool o tx).
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, name, description, client, manager_id, start_date, end_date, budget, status, progress, created_at, updated_at`

// Create persiste un proyecto.
func (r *ProjectRepo) Create(p *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Client, nullable(p.ManagerID), p.StartDate, p.EndDate,
		p.Budget, p.Status, p.Progress, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(id string) (*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	var p entity.Project
	var managerID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Client, &managerID, &p.StartDate, &p.EndDate,
		&p.Budget, &p.Status, &p.Progress, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	if managerID != nil {
		p.ManagerID = *managerID
	}
	return &p, nil
}

// List devuelve los proyectos, opcionalmente filtrados por status.
func (r *ProjectRepo) List(status string) ([]*entity.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()
	var list []*entity.Project
	for rows.Next() {
		var p entity.Project
		var managerID *string
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Client, &managerID, &p.StartDate, &p.EndDate,
			&p.Budget, &p.Status, &p.Progress, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		if managerID != nil {
			p.ManagerID = *managerID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un proyecto. Progress no se toca aquí: va por UpdateProgress.
func (r *ProjectRepo) Update(p *entity.Project) error {
	query := `
		UPDATE projects
		SET name = $2, description = $3, client = $4, manager_id = $5, start_date = $6,
		    end_date = $7, budget = $8, status = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.Description, p.Client, nullable(p.ManagerID), p.StartDate, p.EndDate,
		p.Budget, p.Status, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// UpdateProgress fija el avance derivado del proyecto.
func (r *ProjectRepo) UpdateProgress(id string, progress int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE projects SET progress = $2, updated_at = now() WHERE id = $1`, id, progress)
	if err != nil {
		return fmt.Errorf("update project progress: %w", err)
	}
	return nil
}

// TaskRepo implementación de TaskRepository (usable con pool o tx).
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, project_id, title, description, assigned_to, priority, status, due_date, completed_at, created_at, updated_at`

// Create persiste una tarea.
func (r *TaskRepo) Create(t *entity.Task) error {
	query := `
		INSERT INTO tasks (` + taskColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.ProjectID, t.Title, t.Description, nullable(t.AssignedTo), t.Priority,
		t.Status, t.DueDate, t.CompletedAt, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// GetByID obtiene una tarea por ID.
func (r *TaskRepo) GetByID(id string) (*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	var t entity.Task
	var assignedTo *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProjectID, &t.Title, &t.Description, &assignedTo, &t.Priority,
		&t.Status, &t.DueDate, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	if assignedTo != nil {
		t.AssignedTo = *assignedTo
	}
	return &t, nil
}

// ListByProject devuelve las tareas de un proyecto.
func (r *TaskRepo) ListByProject(projectID string) ([]*entity.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE project_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Task
	for rows.Next() {
		var t entity.Task
		var assignedTo *string
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &assignedTo, &t.Priority,
			&t.Status, &t.DueDate, &t.CompletedAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if assignedTo != nil {
			t.AssignedTo = *assignedTo
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Update actualiza una tarea.
func (r *TaskRepo) Update(t *entity.Task) error {
	query := `
		UPDATE tasks
		SET title = $2, description = $3, assigned_to = $4, priority = $5, status = $6,
		    due_date = $7, completed_at = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.Title, t.Description, nullable(t.AssignedTo), t.Priority, t.Status,
		t.DueDate, t.CompletedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// CountByProject devuelve el total de tareas y cuántas están completadas.
func (r *TaskRepo) CountByProject(projectID string) (total, completed int, err error) {
	query := `
		SELECT count(*), count(*) FILTER (WHERE status = 'completed')
		FROM tasks WHERE project_id = $1`
	err = r.q.QueryRow(context.Background(), query, projectID).Scan(&total, &completed)
	if err != nil {
		return 0, 0, fmt.Errorf("count tasks: %w", err)
	}
	return total, completed, nil
}
