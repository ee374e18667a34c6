package entity

import "time"

// Roles válidos para User. El conjunto es cerrado: agregar un rol es un cambio
// de datos en rbac.Matrix, no de código en los handlers.
const (
	RoleAdmin            = "Admin"
	RoleSalesOfficer     = "Sales Officer"
	RoleInventoryOfficer = "Inventory Officer"
	RoleHROfficer        = "HR Officer"
	RoleFinanceOfficer   = "Finance Officer"
	RoleProjectManager   = "Project Manager"
	RoleEmployee         = "Employee"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
