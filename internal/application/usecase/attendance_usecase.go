package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// AttendanceUseCase registro y consulta de asistencia. Registrar dos veces
// la misma pareja (empleado, fecha) reemplaza el registro anterior.
type AttendanceUseCase struct {
	repo         repository.AttendanceRepository
	employeeRepo repository.EmployeeRepository
}

// NewAttendanceUseCase construye el caso de uso.
func NewAttendanceUseCase(repo repository.AttendanceRepository, employeeRepo repository.EmployeeRepository) *AttendanceUseCase {
	return &AttendanceUseCase{repo: repo, employeeRepo: employeeRepo}
}

var validAttendanceStatus = map[string]bool{
	entity.AttendancePresent: true,
	entity.AttendanceAbsent:  true,
	entity.AttendanceLate:    true,
	entity.AttendanceHalfDay: true,
	entity.AttendanceLeave:   true,
}

// Record registra (o reemplaza) la asistencia de un empleado en una fecha.
func (uc *AttendanceUseCase) Record(in dto.AttendanceRequest) (*dto.AttendanceResponse, error) {
	if in.EmployeeID == "" || !validAttendanceStatus[in.Status] {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.employeeRepo.GetByID(in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	rec := &entity.AttendanceRecord{
		ID:         uuid.New().String(),
		EmployeeID: in.EmployeeID,
		Date:       in.Date,
		CheckIn:    in.CheckIn,
		CheckOut:   in.CheckOut,
		Status:     in.Status,
		Notes:      in.Notes,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Upsert(rec); err != nil {
		return nil, err
	}
	return uc.toResponse(rec), nil
}

// RecordBulk registra la asistencia de varios empleados para una fecha.
// Valida todo el lote antes de insertar; un empleado inválido rechaza el lote.
func (uc *AttendanceUseCase) RecordBulk(in dto.BulkAttendanceRequest) ([]*dto.AttendanceResponse, error) {
	if len(in.Records) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, domain.ErrInvalidInput
	}
	for _, r := range in.Records {
		if r.EmployeeID == "" || !validAttendanceStatus[r.Status] {
			return nil, domain.ErrInvalidInput
		}
		emp, err := uc.employeeRepo.GetByID(r.EmployeeID)
		if err != nil {
			return nil, err
		}
		if emp == nil {
			return nil, domain.ErrNotFound
		}
	}

	now := time.Now()
	out := make([]*dto.AttendanceResponse, 0, len(in.Records))
	for _, r := range in.Records {
		rec := &entity.AttendanceRecord{
			ID:         uuid.New().String(),
			EmployeeID: r.EmployeeID,
			Date:       in.Date,
			CheckIn:    r.CheckIn,
			CheckOut:   r.CheckOut,
			Status:     r.Status,
			Notes:      r.Notes,
			CreatedAt:  now,
		}
		if err := uc.repo.Upsert(rec); err != nil {
			return nil, err
		}
		out = append(out, uc.toResponse(rec))
	}
	return out, nil
}

// List devuelve los registros que cumplen el filtro. Los roles con acceso
// restringido a lo propio llegan aquí con el filtro ya fijado a su empleado.
func (uc *AttendanceUseCase) List(filter repository.AttendanceFilter) ([]*dto.AttendanceResponse, error) {
	records, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, uc.toResponse(rec))
	}
	return out, nil
}

func (uc *AttendanceUseCase) toResponse(rec *entity.AttendanceRecord) *dto.AttendanceResponse {
	resp := &dto.AttendanceResponse{
		ID:         rec.ID,
		EmployeeID: rec.EmployeeID,
		Date:       rec.Date,
		CheckIn:    rec.CheckIn,
		CheckOut:   rec.CheckOut,
		Status:     rec.Status,
		Notes:      rec.Notes,
	}
	if emp, err := uc.employeeRepo.GetByID(rec.EmployeeID); err == nil && emp != nil {
		resp.EmployeeName = emp.Name
		resp.Department = emp.Department
	}
	return resp
}
