// Package rbac define la matriz de permisos por rol. La matriz es un literal
// de datos: agregar un rol o cambiar sus módulos no toca código de los callers.
package rbac

import "github.com/tu-usuario/erp-pyme/internal/domain/entity"

// Acciones válidas sobre un módulo.
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Wildcard en modules/actions: acceso total (solo Admin).
const wildcard = "*"

// Permission módulos y acciones accesibles para un rol. SelfOnly restringe
// el acceso a registros propios (asistencia/nómina del propio empleado);
// lo hacen cumplir los casos de uso, no este evaluador.
type Permission struct {
	Modules  []string
	Actions  []string
	SelfOnly bool
}

// Matrix matriz de permisos por rol. Admin corta con wildcard.
var Matrix = map[string]Permission{
	entity.RoleAdmin: {
		Modules: []string{wildcard},
		Actions: []string{wildcard},
	},
	entity.RoleSalesOfficer: {
		Modules: []string{"customers", "sales", "products"},
		Actions: []string{ActionRead, ActionCreate, ActionUpdate},
	},
	entity.RoleInventoryOfficer: {
		Modules: []string{"products", "suppliers", "purchases"},
		Actions: []string{ActionRead, ActionCreate, ActionUpdate},
	},
	entity.RoleHROfficer: {
		Modules: []string{"employees", "attendance", "payroll"},
		Actions: []string{ActionRead, ActionCreate, ActionUpdate},
	},
	entity.RoleFinanceOfficer: {
		Modules: []string{"ledger", "invoices", "payroll"},
		Actions: []string{ActionRead, ActionCreate, ActionUpdate},
	},
	entity.RoleProjectManager: {
		Modules: []string{"projects", "tasks", "employees"},
		Actions: []string{ActionRead, ActionCreate, ActionUpdate, ActionDelete},
	},
	entity.RoleEmployee: {
		Modules:  []string{"tasks", "attendance", "payroll"},
		Actions:  []string{ActionRead},
		SelfOnly: true,
	},
}

// allModules listado completo para AccessibleModules de Admin.
var allModules = []string{
	"users", "employees", "attendance", "payroll", "products", "customers",
	"sales", "invoices", "suppliers", "purchases", "ledger", "projects", "tasks", "audit",
}

// Allowed decide si un rol puede ejecutar una acción sobre un módulo.
// Un rol desconocido nunca tiene acceso.
func Allowed(role, module, action string) bool {
	perm, ok := Matrix[role]
	if !ok {
		return false
	}
	if contains(perm.Modules, wildcard) && contains(perm.Actions, wildcard) {
		return true
	}
	if !contains(perm.Modules, module) && !contains(perm.Modules, wildcard) {
		return false
	}
	if !contains(perm.Actions, action) && !contains(perm.Actions, wildcard) {
		return false
	}
	return true
}

// SelfOnly indica si el rol solo puede ver registros propios.
func SelfOnly(role string) bool {
	return Matrix[role].SelfOnly
}

// AccessibleModules devuelve los módulos visibles para un rol (para el menú del SPA).
func AccessibleModules(role string) []string {
	perm, ok := Matrix[role]
	if !ok {
		return nil
	}
	if contains(perm.Modules, wildcard) {
		out := make([]string, len(allModules))
		copy(out, allModules)
		return out
	}
	out := make([]string, len(perm.Modules))
	copy(out, perm.Modules)
	return out
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
