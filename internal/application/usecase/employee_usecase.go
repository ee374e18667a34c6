package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create crea un empleado. EmployeeCode único; salario mayor a cero.
func (uc *EmployeeUseCase) Create(in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.EmployeeCode == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.Salary.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByCode(in.EmployeeCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	var hireDate *time.Time
	if in.HireDate != "" {
		parsed, err := time.Parse("2006-01-02", in.HireDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		hireDate = &parsed
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:           uuid.New().String(),
		UserID:       in.UserID,
		EmployeeCode: in.EmployeeCode,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Department:   in.Department,
		Designation:  in.Designation,
		Salary:       in.Salary,
		HireDate:     hireDate,
		Status:       entity.EmployeeActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(emp), nil
}

// GetByUserID obtiene el empleado ligado a un usuario (acceso selfOnly).
func (uc *EmployeeUseCase) GetByUserID(userID string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(emp), nil
}

// List devuelve los empleados, opcionalmente por status.
func (uc *EmployeeUseCase) List(status string) ([]*dto.EmployeeResponse, error) {
	employees, err := uc.repo.List(status)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toEmployeeResponse(e))
	}
	return out, nil
}

// Update modifica un empleado. EmployeeCode es inmutable.
func (uc *EmployeeUseCase) Update(id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		emp.Name = in.Name
	}
	if in.Email != "" {
		emp.Email = in.Email
	}
	if in.Phone != "" {
		emp.Phone = in.Phone
	}
	if in.Department != "" {
		emp.Department = in.Department
	}
	if in.Designation != "" {
		emp.Designation = in.Designation
	}
	if in.Salary != nil {
		if !in.Salary.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		emp.Salary = *in.Salary
	}
	if in.HireDate != "" {
		parsed, err := time.Parse("2006-01-02", in.HireDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		emp.HireDate = &parsed
	}
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(emp); err != nil {
		return nil, err
	}
	return toEmployeeResponse(emp), nil
}

// Terminate marca al empleado como terminado (borrado suave): su histórico
// de asistencia y nómina se conserva.
func (uc *EmployeeUseCase) Terminate(id string) error {
	emp, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if emp == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Terminate(id)
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	resp := &dto.EmployeeResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		EmployeeCode: e.EmployeeCode,
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		Department:   e.Department,
		Designation:  e.Designation,
		Salary:       e.Salary,
		Status:       e.Status,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if e.HireDate != nil {
		resp.HireDate = e.HireDate.Format("2006-01-02")
	}
	return resp
}
