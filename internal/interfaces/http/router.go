package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/auth"
	"github.com/tu-usuario/erp-pyme/internal/application/ledger"
	"github.com/tu-usuario/erp-pyme/internal/application/orders"
	"github.com/tu-usuario/erp-pyme/internal/application/payroll"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
	"github.com/tu-usuario/erp-pyme/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	AttendanceUC *usecase.AttendanceUseCase
	PayrollUC    *payroll.UseCase
	ProductUC    *usecase.ProductUseCase
	CustomerUC   *usecase.CustomerUseCase
	SupplierUC   *usecase.SupplierUseCase
	SalesUC      *orders.SalesUseCase
	PurchaseUC   *orders.PurchaseUseCase
	InvoicePDF   *orders.PDFUseCase
	LedgerUC     *ledger.UseCase
	ProjectUC    *usecase.ProjectUseCase
	Recorder     *audit.Recorder
	JWTSecret    string
}

// Router registra las rutas de la API. Cada grupo protegido pasa por
// AuthMiddleware y cada ruta por RequireAccess con su módulo y acción RBAC.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, perfil protegido)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (solo Admin llega por la matriz RBAC)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.Recorder)
	users.Post("/", RequireAccess("users", rbac.ActionCreate), userHandler.Create)
	users.Get("/", RequireAccess("users", rbac.ActionRead), userHandler.List)
	users.Get("/:id", RequireAccess("users", rbac.ActionRead), userHandler.GetByID)
	users.Put("/:id", RequireAccess("users", rbac.ActionUpdate), userHandler.Update)
	users.Delete("/:id", RequireAccess("users", rbac.ActionDelete), userHandler.Deactivate)

	// Employees
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Recorder)
	employees.Post("/", RequireAccess("employees", rbac.ActionCreate), employeeHandler.Create)
	employees.Get("/", RequireAccess("employees", rbac.ActionRead), employeeHandler.List)
	employees.Get("/:id", RequireAccess("employees", rbac.ActionRead), employeeHandler.GetByID)
	employees.Put("/:id", RequireAccess("employees", rbac.ActionUpdate), employeeHandler.Update)
	employees.Delete("/:id", RequireAccess("employees", rbac.ActionDelete), employeeHandler.Terminate)

	// Attendance
	attendance := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC, deps.EmployeeUC, deps.Recorder)
	attendance.Post("/", RequireAccess("attendance", rbac.ActionCreate), attendanceHandler.Record)
	attendance.Post("/bulk", RequireAccess("attendance", rbac.ActionCreate), attendanceHandler.RecordBulk)
	attendance.Get("/", RequireAccess("attendance", rbac.ActionRead), attendanceHandler.List)

	// Payroll
	payrollGroup := protected.Group("/payroll")
	payrollHandler := NewPayrollHandler(deps.PayrollUC, deps.EmployeeUC, deps.Recorder)
	payrollGroup.Post("/generate", RequireAccess("payroll", rbac.ActionCreate), payrollHandler.Generate)
	payrollGroup.Get("/", RequireAccess("payroll", rbac.ActionRead), payrollHandler.List)
	payrollGroup.Get("/:id", RequireAccess("payroll", rbac.ActionRead), payrollHandler.GetByID)
	payrollGroup.Post("/:id/pay", RequireAccess("payroll", rbac.ActionUpdate), payrollHandler.MarkPaid)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Recorder)
	products.Post("/", RequireAccess("products", rbac.ActionCreate), productHandler.Create)
	products.Get("/", RequireAccess("products", rbac.ActionRead), productHandler.List)
	products.Get("/:id", RequireAccess("products", rbac.ActionRead), productHandler.GetByID)
	products.Put("/:id", RequireAccess("products", rbac.ActionUpdate), productHandler.Update)
	products.Post("/:id/adjust-stock", RequireAccess("products", rbac.ActionUpdate), productHandler.AdjustStock)
	products.Delete("/:id", RequireAccess("products", rbac.ActionDelete), productHandler.Deactivate)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Recorder)
	customers.Post("/", RequireAccess("customers", rbac.ActionCreate), customerHandler.Create)
	customers.Get("/", RequireAccess("customers", rbac.ActionRead), customerHandler.List)
	customers.Get("/:id", RequireAccess("customers", rbac.ActionRead), customerHandler.GetByID)
	customers.Put("/:id", RequireAccess("customers", rbac.ActionUpdate), customerHandler.Update)
	customers.Delete("/:id", RequireAccess("customers", rbac.ActionDelete), customerHandler.Deactivate)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC, deps.Recorder)
	suppliers.Post("/", RequireAccess("suppliers", rbac.ActionCreate), supplierHandler.Create)
	suppliers.Get("/", RequireAccess("suppliers", rbac.ActionRead), supplierHandler.List)
	suppliers.Get("/:id", RequireAccess("suppliers", rbac.ActionRead), supplierHandler.GetByID)
	suppliers.Put("/:id", RequireAccess("suppliers", rbac.ActionUpdate), supplierHandler.Update)
	suppliers.Delete("/:id", RequireAccess("suppliers", rbac.ActionDelete), supplierHandler.Deactivate)

	// Sales orders + invoices
	salesHandler := NewSalesHandler(deps.SalesUC, deps.InvoicePDF, deps.Recorder)
	sales := protected.Group("/sales")
	sales.Post("/", RequireAccess("sales", rbac.ActionCreate), salesHandler.Create)
	sales.Get("/", RequireAccess("sales", rbac.ActionRead), salesHandler.List)
	sales.Get("/:id", RequireAccess("sales", rbac.ActionRead), salesHandler.GetByID)
	sales.Post("/:id/confirm", RequireAccess("sales", rbac.ActionUpdate), salesHandler.Confirm)
	sales.Post("/:id/cancel", RequireAccess("sales", rbac.ActionUpdate), salesHandler.Cancel)

	invoices := protected.Group("/invoices")
	invoices.Get("/", RequireAccess("invoices", rbac.ActionRead), salesHandler.ListInvoices)
	invoices.Get("/:id", RequireAccess("invoices", rbac.ActionRead), salesHandler.GetInvoice)
	invoices.Get("/:id/pdf", RequireAccess("invoices", rbac.ActionRead), salesHandler.DownloadInvoicePDF)

	// Purchase orders
	purchases := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC, deps.Recorder)
	purchases.Post("/", RequireAccess("purchases", rbac.ActionCreate), purchaseHandler.Create)
	purchases.Get("/", RequireAccess("purchases", rbac.ActionRead), purchaseHandler.List)
	purchases.Get("/:id", RequireAccess("purchases", rbac.ActionRead), purchaseHandler.GetByID)
	purchases.Post("/:id/receive", RequireAccess("purchases", rbac.ActionUpdate), purchaseHandler.Receive)
	purchases.Post("/:id/cancel", RequireAccess("purchases", rbac.ActionUpdate), purchaseHandler.Cancel)

	// Ledger
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.LedgerUC, deps.Recorder)
	ledgerGroup.Post("/", RequireAccess("ledger", rbac.ActionCreate), ledgerHandler.Append)
	ledgerGroup.Get("/", RequireAccess("ledger", rbac.ActionRead), ledgerHandler.List)
	ledgerGroup.Get("/summary", RequireAccess("ledger", rbac.ActionRead), ledgerHandler.Summary)
	ledgerGroup.Get("/report", RequireAccess("ledger", rbac.ActionRead), ledgerHandler.MonthlyReport)

	// Projects + tasks (las tareas viven bajo su proyecto)
	projects := protected.Group("/projects")
	projectHandler := NewProjectHandler(deps.ProjectUC, deps.Recorder)
	projects.Post("/", RequireAccess("projects", rbac.ActionCreate), projectHandler.Create)
	projects.Get("/", RequireAccess("projects", rbac.ActionRead), projectHandler.List)
	projects.Get("/:id", RequireAccess("projects", rbac.ActionRead), projectHandler.GetByID)
	projects.Put("/:id", RequireAccess("projects", rbac.ActionUpdate), projectHandler.Update)
	projects.Post("/:id/tasks", RequireAccess("tasks", rbac.ActionCreate), projectHandler.CreateTask)
	projects.Get("/:id/tasks", RequireAccess("tasks", rbac.ActionRead), projectHandler.ListTasks)
	projects.Put("/:id/tasks/:taskId", RequireAccess("tasks", rbac.ActionUpdate), projectHandler.UpdateTask)

	// Audit (solo Admin llega por la matriz RBAC)
	auditGroup := protected.Group("/audit")
	auditHandler := NewAuditHandler(deps.Recorder)
	auditGroup.Get("/", RequireAccess("audit", rbac.ActionRead), auditHandler.List)
}
