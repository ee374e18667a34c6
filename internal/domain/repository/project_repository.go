package repository

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para proyectos.
type ProjectRepository interface {
	Create(p *entity.Project) error
	GetByID(id string) (*entity.Project, error)
	List(status string) ([]*entity.Project, error)
	Update(p *entity.Project) error
	UpdateProgress(id string, progress int) error
}

// TaskRepository define el puerto de persistencia para tareas.
type TaskRepository interface {
	Create(t *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	ListByProject(projectID string) ([]*entity.Task, error)
	Update(t *entity.Task) error
	// CountByProject devuelve el total de tareas y cuántas están completadas.
	CountByProject(projectID string) (total, completed int, err error)
}
