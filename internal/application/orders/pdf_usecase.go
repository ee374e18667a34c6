package orders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// CompanyInfo datos del emisor que se imprimen en el documento.
type CompanyInfo struct {
	Name    string
	TaxID   string
	Address string
	Phone   string
	Email   string
}

// InvoiceLineForPDF línea de la factura enriquecida con el nombre del producto.
type InvoiceLineForPDF struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// InvoicePDFGenerator abstrae la generación del documento; la implementación
// concreta vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company CompanyInfo, customer *entity.Customer, lines []InvoiceLineForPDF) ([]byte, error)
}

// PDFUseCase genera la representación en PDF de una factura de venta.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	salesRepo    repository.SalesOrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	company      CompanyInfo
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	salesRepo repository.SalesOrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	company CompanyInfo,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		salesRepo:    salesRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		company:      company,
		generator:    generator,
	}
}

// DownloadInvoicePDF carga la factura con sus líneas y genera el PDF.
// Retorna (bytes, filename, nil) o domain.ErrNotFound si la factura no existe.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) ([]byte, string, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}

	items, err := uc.salesRepo.ListItems(inv.OrderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}

	lines := make([]InvoiceLineForPDF, 0, len(items))
	for _, it := range items {
		name := "Producto " + it.ProductID // fallback si el producto ya no existe
		if product, pErr := uc.productRepo.GetByID(it.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, InvoiceLineForPDF{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}

	pdfBytes, err := uc.generator.GenerateInvoicePDF(ctx, inv, uc.company, customer, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename := fmt.Sprintf("factura_%s.pdf", inv.InvoiceNumber)
	return pdfBytes, filename, nil
}
