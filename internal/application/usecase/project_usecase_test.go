package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
)

type fakeProjectRepo struct {
	projects map[string]*entity.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entity.Project)}
}

func (r *fakeProjectRepo) Create(p *entity.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) GetByID(id string) (*entity.Project, error) {
	return r.projects[id], nil
}

func (r *fakeProjectRepo) List(status string) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.projects {
		if status != "" && p.Status != status {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(p *entity.Project) error {
	r.projects[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) UpdateProgress(id string, progress int) error {
	if p, ok := r.projects[id]; ok {
		p.Progress = progress
	}
	return nil
}

type fakeTaskRepo struct {
	tasks map[string]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[string]*entity.Task)}
}

func (r *fakeTaskRepo) Create(t *entity.Task) error {
	r.tasks[t.ID] = t
	return nil
}

func (r *fakeTaskRepo) GetByID(id string) (*entity.Task, error) {
	return r.tasks[id], nil
}

func (r *fakeTaskRepo) ListByProject(projectID string) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(t *entity.Task) error {
	r.tasks[t.ID] = t
	return nil
}

func (r *fakeTaskRepo) CountByProject(projectID string) (total, completed int, err error) {
	for _, t := range r.tasks {
		if t.ProjectID != projectID {
			continue
		}
		total++
		if t.Status == entity.TaskCompleted {
			completed++
		}
	}
	return total, completed, nil
}

func newProjectEnv(t *testing.T) (*usecase.ProjectUseCase, *fakeProjectRepo, string) {
	t.Helper()
	repo := newFakeProjectRepo()
	taskRepo := newFakeTaskRepo()
	uc := usecase.NewProjectUseCase(repo, taskRepo)
	resp, err := uc.Create(dto.CreateProjectRequest{Name: "Migración ERP"})
	require.NoError(t, err)
	return uc, repo, resp.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Progress derivado
// ──────────────────────────────────────────────────────────────────────────────

// Sin tareas el avance es cero, no un error de división.
func TestProject_SinTareasProgresoCero(t *testing.T) {
	uc, _, projectID := newProjectEnv(t)

	resp, err := uc.GetByID(projectID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Progress)
}

// Con 4 tareas y 1 completada el avance es 25.
func TestProject_ProgresoRedondeado(t *testing.T) {
	uc, repo, projectID := newProjectEnv(t)

	var first string
	for i := 0; i < 4; i++ {
		task, err := uc.CreateTask(projectID, dto.CreateTaskRequest{Title: "Tarea"})
		require.NoError(t, err)
		if i == 0 {
			first = task.ID
		}
	}

	_, err := uc.UpdateTask(projectID, first, dto.UpdateTaskRequest{Status: entity.TaskCompleted})
	require.NoError(t, err)

	p, _ := repo.GetByID(projectID)
	assert.Equal(t, 25, p.Progress, "1 de 4 completadas = 25")
}

// Con 3 tareas y 1 completada: round(100/3) = 33.
func TestProject_ProgresoNoEntero(t *testing.T) {
	uc, repo, projectID := newProjectEnv(t)

	var first string
	for i := 0; i < 3; i++ {
		task, err := uc.CreateTask(projectID, dto.CreateTaskRequest{Title: "Tarea"})
		require.NoError(t, err)
		if i == 0 {
			first = task.ID
		}
	}
	_, err := uc.UpdateTask(projectID, first, dto.UpdateTaskRequest{Status: entity.TaskCompleted})
	require.NoError(t, err)

	p, _ := repo.GetByID(projectID)
	assert.Equal(t, 33, p.Progress)
}

// Completar y reabrir: CompletedAt se estampa y se limpia, y el avance baja.
func TestProject_ReabrirTarea(t *testing.T) {
	uc, repo, projectID := newProjectEnv(t)

	task, err := uc.CreateTask(projectID, dto.CreateTaskRequest{Title: "Única"})
	require.NoError(t, err)

	done, err := uc.UpdateTask(projectID, task.ID, dto.UpdateTaskRequest{Status: entity.TaskCompleted})
	require.NoError(t, err)
	assert.NotNil(t, done.CompletedAt, "completar estampa completed_at")
	p, _ := repo.GetByID(projectID)
	assert.Equal(t, 100, p.Progress)

	reopened, err := uc.UpdateTask(projectID, task.ID, dto.UpdateTaskRequest{Status: entity.TaskInProgress})
	require.NoError(t, err)
	assert.Nil(t, reopened.CompletedAt, "reabrir limpia completed_at")
	p, _ = repo.GetByID(projectID)
	assert.Equal(t, 0, p.Progress)
}

// Crear una tarea nueva en un proyecto al 100% baja el avance.
func TestProject_NuevaTareaBajaProgreso(t *testing.T) {
	uc, repo, projectID := newProjectEnv(t)

	task, err := uc.CreateTask(projectID, dto.CreateTaskRequest{Title: "Primera"})
	require.NoError(t, err)
	_, err = uc.UpdateTask(projectID, task.ID, dto.UpdateTaskRequest{Status: entity.TaskCompleted})
	require.NoError(t, err)

	_, err = uc.CreateTask(projectID, dto.CreateTaskRequest{Title: "Segunda"})
	require.NoError(t, err)

	p, _ := repo.GetByID(projectID)
	assert.Equal(t, 50, p.Progress, "1 de 2 completadas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestProject_TareaDeOtroProyecto(t *testing.T) {
	uc, _, projectID := newProjectEnv(t)
	otro, err := uc.Create(dto.CreateProjectRequest{Name: "Otro"})
	require.NoError(t, err)

	task, err := uc.CreateTask(projectID, dto.CreateTaskRequest{Title: "Tarea"})
	require.NoError(t, err)

	_, err = uc.UpdateTask(otro.ID, task.ID, dto.UpdateTaskRequest{Status: entity.TaskCompleted})
	assert.ErrorIs(t, err, domain.ErrNotFound, "la tarea no pertenece a ese proyecto")
}

func TestProject_EstadoInvalido(t *testing.T) {
	uc, _, projectID := newProjectEnv(t)

	_, err := uc.Update(projectID, dto.UpdateProjectRequest{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	task, err := uc.CreateTask(projectID, dto.CreateTaskRequest{Title: "Tarea"})
	require.NoError(t, err)
	_, err = uc.UpdateTask(projectID, task.ID, dto.UpdateTaskRequest{Status: "done"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProject_ProyectoInexistente(t *testing.T) {
	uc, _, _ := newProjectEnv(t)

	_, err := uc.CreateTask("no-existe", dto.CreateTaskRequest{Title: "Tarea"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
