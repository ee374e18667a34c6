package usecase

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

var validProjectStatus = map[string]bool{
	"planning": true, "active": true, "completed": true, "on-hold": true,
}

var validTaskStatus = map[string]bool{
	entity.TaskTodo:       true,
	entity.TaskInProgress: true,
	entity.TaskReview:     true,
	entity.TaskCompleted:  true,
}

// ProjectUseCase proyectos y tareas. Progress es derivado: se recalcula en
// cada alta o cambio de tarea, nunca lo fija un usuario.
type ProjectUseCase struct {
	repo     repository.ProjectRepository
	taskRepo repository.TaskRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, taskRepo repository.TaskRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, taskRepo: taskRepo}
}

// Create crea un proyecto con avance cero.
func (uc *ProjectUseCase) Create(in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = "planning"
	}
	if !validProjectStatus[status] {
		return nil, domain.ErrInvalidInput
	}
	startDate, err := parseOptionalDate(in.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(in.EndDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	project := &entity.Project{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Client:      in.Client,
		ManagerID:   in.ManagerID,
		StartDate:   startDate,
		EndDate:     endDate,
		Budget:      in.Budget,
		Status:      status,
		Progress:    0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID obtiene un proyecto por ID.
func (uc *ProjectUseCase) GetByID(id string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// List devuelve los proyectos, opcionalmente por status.
func (uc *ProjectUseCase) List(status string) ([]*dto.ProjectResponse, error) {
	projects, err := uc.repo.List(status)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, toProjectResponse(p))
	}
	return out, nil
}

// Update modifica un proyecto. Progress se ignora siempre: es derivado.
func (uc *ProjectUseCase) Update(id string, in dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		project.Name = in.Name
	}
	if in.Description != "" {
		project.Description = in.Description
	}
	if in.Client != "" {
		project.Client = in.Client
	}
	if in.ManagerID != "" {
		project.ManagerID = in.ManagerID
	}
	if in.StartDate != "" {
		parsed, err := parseOptionalDate(in.StartDate)
		if err != nil {
			return nil, err
		}
		project.StartDate = parsed
	}
	if in.EndDate != "" {
		parsed, err := parseOptionalDate(in.EndDate)
		if err != nil {
			return nil, err
		}
		project.EndDate = parsed
	}
	if in.Budget != nil {
		project.Budget = *in.Budget
	}
	if in.Status != "" {
		if !validProjectStatus[in.Status] {
			return nil, domain.ErrInvalidInput
		}
		project.Status = in.Status
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// CreateTask crea una tarea bajo un proyecto y recalcula el avance.
func (uc *ProjectUseCase) CreateTask(projectID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	priority := in.Priority
	if priority == "" {
		priority = "medium"
	}
	dueDate, err := parseOptionalDate(in.DueDate)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	task := &entity.Task{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Title:       in.Title,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
		Priority:    priority,
		Status:      entity.TaskTodo,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.taskRepo.Create(task); err != nil {
		return nil, err
	}
	if err := uc.recalcProgress(projectID); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// UpdateTask modifica una tarea. Pasar a completed estampa CompletedAt;
// salir de completed lo limpia. En ambos casos se recalcula el avance.
func (uc *ProjectUseCase) UpdateTask(projectID, taskID string, in dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := uc.taskRepo.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil || task.ProjectID != projectID {
		return nil, domain.ErrNotFound
	}
	if in.Title != "" {
		task.Title = in.Title
	}
	if in.Description != "" {
		task.Description = in.Description
	}
	if in.AssignedTo != "" {
		task.AssignedTo = in.AssignedTo
	}
	if in.Priority != "" {
		task.Priority = in.Priority
	}
	if in.DueDate != "" {
		parsed, err := parseOptionalDate(in.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = parsed
	}
	statusChanged := false
	if in.Status != "" && in.Status != task.Status {
		if !validTaskStatus[in.Status] {
			return nil, domain.ErrInvalidInput
		}
		now := time.Now()
		if in.Status == entity.TaskCompleted {
			task.CompletedAt = &now
		} else if task.Status == entity.TaskCompleted {
			task.CompletedAt = nil
		}
		task.Status = in.Status
		statusChanged = true
	}
	task.UpdatedAt = time.Now()
	if err := uc.taskRepo.Update(task); err != nil {
		return nil, err
	}
	if statusChanged {
		if err := uc.recalcProgress(projectID); err != nil {
			return nil, err
		}
	}
	return toTaskResponse(task), nil
}

// ListTasks devuelve las tareas de un proyecto.
func (uc *ProjectUseCase) ListTasks(projectID string) ([]*dto.TaskResponse, error) {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	tasks, err := uc.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// recalcProgress fija progress = round(100 × completadas / totales), 0 sin tareas.
func (uc *ProjectUseCase) recalcProgress(projectID string) error {
	total, completed, err := uc.taskRepo.CountByProject(projectID)
	if err != nil {
		return err
	}
	progress := 0
	if total > 0 {
		progress = int(math.Round(100 * float64(completed) / float64(total)))
	}
	return uc.repo.UpdateProgress(projectID, progress)
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &parsed, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	resp := &dto.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Client:      p.Client,
		ManagerID:   p.ManagerID,
		Budget:      p.Budget,
		Status:      p.Status,
		Progress:    p.Progress,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.StartDate != nil {
		resp.StartDate = p.StartDate.Format("2006-01-02")
	}
	if p.EndDate != nil {
		resp.EndDate = p.EndDate.Format("2006-01-02")
	}
	return resp
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	resp := &dto.TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		Priority:    t.Priority,
		Status:      t.Status,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format("2006-01-02")
	}
	return resp
}
