package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project proyecto con avance derivado de sus tareas.
// Progress (0-100) nunca lo fija un usuario: se recalcula al crear o
// actualizar tareas como round(100 × completadas / totales), 0 sin tareas.
type Project struct {
	ID          string
	Name        string
	Description string
	Client      string
	ManagerID   string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      decimal.Decimal
	Status      string // planning, active, completed, on-hold
	Progress    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
