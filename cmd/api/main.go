package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appaudit "github.com/tu-usuario/erp-pyme/internal/application/audit"
	"github.com/tu-usuario/erp-pyme/internal/application/auth"
	appledger "github.com/tu-usuario/erp-pyme/internal/application/ledger"
	"github.com/tu-usuario/erp-pyme/internal/application/orders"
	apppayroll "github.com/tu-usuario/erp-pyme/internal/application/payroll"
	"github.com/tu-usuario/erp-pyme/internal/application/usecase"
	infrapdf "github.com/tu-usuario/erp-pyme/internal/infrastructure/pdf"
	"github.com/tu-usuario/erp-pyme/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/erp-pyme/internal/interfaces/http"
	"github.com/tu-usuario/erp-pyme/pkg/config"
	"github.com/tu-usuario/erp-pyme/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	payrollRepo := postgres.NewPayrollRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	salesRepo := postgres.NewSalesOrderRepository(pool)
	purchaseRepo := postgres.NewPurchaseOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := appaudit.NewRecorder(auditRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	attendanceUC := usecase.NewAttendanceUseCase(attendanceRepo, employeeRepo)
	payrollUC := apppayroll.NewUseCase(txRunner, payrollRepo, employeeRepo, attendanceRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	salesUC := orders.NewSalesUseCase(txRunner, salesRepo, productRepo, customerRepo, invoiceRepo)
	purchaseUC := orders.NewPurchaseUseCase(txRunner, purchaseRepo, productRepo, supplierRepo)
	ledgerUC := appledger.NewUseCase(ledgerRepo)
	projectUC := usecase.NewProjectUseCase(projectRepo, taskRepo)

	// PDF de facturas: los datos del emisor salen de la configuración.
	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator()
	invoicePDFUC := orders.NewPDFUseCase(
		invoiceRepo, salesRepo, customerRepo, productRepo,
		orders.CompanyInfo{
			Name:    cfg.Company.Name,
			TaxID:   cfg.Company.TaxID,
			Address: cfg.Company.Address,
			Phone:   cfg.Company.Phone,
			Email:   cfg.Company.Email,
		},
		pdfGenerator,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ERP PyME API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		EmployeeUC:   employeeUC,
		AttendanceUC: attendanceUC,
		PayrollUC:    payrollUC,
		ProductUC:    productUC,
		CustomerUC:   customerUC,
		SupplierUC:   supplierUC,
		SalesUC:      salesUC,
		PurchaseUC:   purchaseUC,
		InvoicePDF:   invoicePDFUC,
		LedgerUC:     ledgerUC,
		ProjectUC:    projectUC,
		Recorder:     recorder,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
