package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// UseCase maneja el libro contable: entradas manuales, consulta, resumen y
// reporte mensual. El libro es append-only; las entradas generadas por los
// flujos (ventas, compras, nómina) las insertan sus propios casos de uso.
type UseCase struct {
	ledgerRepo repository.LedgerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(ledgerRepo repository.LedgerRepository) *UseCase {
	return &UseCase{ledgerRepo: ledgerRepo}
}

// Append inserta una entrada manual. Amount siempre > 0; el signo lo da Type.
func (uc *UseCase) Append(ctx context.Context, userID string, in dto.CreateLedgerEntryRequest) (*dto.LedgerEntryResponse, error) {
	if in.Type != entity.LedgerIncome && in.Type != entity.LedgerExpense {
		return nil, domain.ErrInvalidInput
	}
	if in.Category == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	txDate := now
	if in.TransactionDate != "" {
		parsed, err := time.Parse("2006-01-02", in.TransactionDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		txDate = parsed
	}

	entry := &entity.LedgerEntry{
		ID:              uuid.New().String(),
		Type:            in.Type,
		Category:        in.Category,
		Amount:          in.Amount,
		Description:     in.Description,
		UserID:          userID,
		TransactionDate: txDate,
		CreatedAt:       now,
	}
	if err := uc.ledgerRepo.Append(entry); err != nil {
		return nil, err
	}
	return toEntryResponse(entry), nil
}

// List devuelve las entradas que cumplen el filtro.
func (uc *UseCase) List(ctx context.Context, filter repository.LedgerFilter) ([]*dto.LedgerEntryResponse, error) {
	entries, err := uc.ledgerRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return toEntryResponses(entries), nil
}

// Summary recalcula income, expense y balance desde el libro completo.
// Nunca se cachea: el libro es la única fuente de verdad.
func (uc *UseCase) Summary(ctx context.Context) (*dto.LedgerSummaryResponse, error) {
	s, err := uc.ledgerRepo.Summary()
	if err != nil {
		return nil, err
	}
	return &dto.LedgerSummaryResponse{
		Income:  s.Income,
		Expense: s.Expense,
		Balance: s.Balance,
	}, nil
}

// MonthlyReport agrega las entradas de un mes: ingresos, egresos y utilidad.
func (uc *UseCase) MonthlyReport(ctx context.Context, year, month int) (*dto.LedgerReportResponse, error) {
	if month < 1 || month > 12 || year < 2000 {
		return nil, domain.ErrInvalidInput
	}
	entries, err := uc.ledgerRepo.ListByPeriod(year, month)
	if err != nil {
		return nil, err
	}

	report := &dto.LedgerReportResponse{
		Period:  fmt.Sprintf("%04d-%02d", year, month),
		Entries: toEntryResponses(entries),
	}
	for _, e := range entries {
		if e.Type == entity.LedgerIncome {
			report.Income = report.Income.Add(e.Amount)
		} else {
			report.Expense = report.Expense.Add(e.Amount)
		}
	}
	report.Profit = report.Income.Sub(report.Expense)
	return report, nil
}

func toEntryResponse(e *entity.LedgerEntry) *dto.LedgerEntryResponse {
	return &dto.LedgerEntryResponse{
		ID:              e.ID,
		Type:            e.Type,
		Category:        e.Category,
		Amount:          e.Amount,
		Description:     e.Description,
		ReferenceType:   e.ReferenceType,
		ReferenceID:     e.ReferenceID,
		TransactionDate: e.TransactionDate,
		CreatedAt:       e.CreatedAt,
	}
}

func toEntryResponses(entries []*entity.LedgerEntry) []*dto.LedgerEntryResponse {
	out := make([]*dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryResponse(e))
	}
	return out
}
