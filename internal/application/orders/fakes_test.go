package orders_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el motor de órdenes. Los Get* devuelven (nil, nil)
// cuando no existe la fila, igual que los repositorios reales.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) List(filter repository.ProductFilter) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	if p, ok := r.products[id]; ok {
		p.Stock = stock
	}
	return nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	if p, ok := r.products[id]; ok {
		p.Status = entity.ProductInactive
	}
	return nil
}

type fakeSalesRepo struct {
	orders map[string]*entity.SalesOrder
	items  []*entity.SalesItem
}

func newFakeSalesRepo() *fakeSalesRepo {
	return &fakeSalesRepo{orders: make(map[string]*entity.SalesOrder)}
}

func (r *fakeSalesRepo) Create(o *entity.SalesOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakeSalesRepo) CreateItem(it *entity.SalesItem) error {
	r.items = append(r.items, it)
	return nil
}

func (r *fakeSalesRepo) GetByID(id string) (*entity.SalesOrder, error) {
	return r.orders[id], nil
}

func (r *fakeSalesRepo) GetForUpdate(id string) (*entity.SalesOrder, error) {
	return r.orders[id], nil
}

func (r *fakeSalesRepo) ListItems(orderID string) ([]*entity.SalesItem, error) {
	var out []*entity.SalesItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeSalesRepo) List(filter repository.SalesOrderFilter) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, o := range r.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeSalesRepo) UpdateStatus(id, status string) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

type fakePurchaseRepo struct {
	orders map[string]*entity.PurchaseOrder
	items  []*entity.PurchaseItem
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{orders: make(map[string]*entity.PurchaseOrder)}
}

func (r *fakePurchaseRepo) Create(o *entity.PurchaseOrder) error {
	r.orders[o.ID] = o
	return nil
}

func (r *fakePurchaseRepo) CreateItem(it *entity.PurchaseItem) error {
	r.items = append(r.items, it)
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	return r.orders[id], nil
}

func (r *fakePurchaseRepo) GetForUpdate(id string) (*entity.PurchaseOrder, error) {
	return r.orders[id], nil
}

func (r *fakePurchaseRepo) ListItems(orderID string) ([]*entity.PurchaseItem, error) {
	var out []*entity.PurchaseItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) List(filter repository.PurchaseOrderFilter) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		if filter.SupplierID != "" && o.SupplierID != filter.SupplierID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (r *fakePurchaseRepo) UpdateStatus(id, status string) error {
	if o, ok := r.orders[id]; ok {
		o.Status = status
	}
	return nil
}

func (r *fakePurchaseRepo) SetReceived(id string, receivedDate time.Time) error {
	if o, ok := r.orders[id]; ok {
		d := receivedDate
		o.ReceivedDate = &d
	}
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.invoices[inv.ID] = inv
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) GetByOrderID(orderID string) (*entity.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.OrderID == orderID {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInvoiceRepo) List() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.invoices))
	for _, inv := range r.invoices {
		out = append(out, inv)
	}
	return out, nil
}

type fakeLedgerRepo struct {
	entries []*entity.LedgerEntry
}

func newFakeLedgerRepo() *fakeLedgerRepo { return &fakeLedgerRepo{} }

func (r *fakeLedgerRepo) Append(e *entity.LedgerEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeLedgerRepo) List(filter repository.LedgerFilter) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeLedgerRepo) ListByPeriod(year, month int) ([]*entity.LedgerEntry, error) {
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if e.TransactionDate.Year() == year && int(e.TransactionDate.Month()) == month {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeLedgerRepo) Summary() (*entity.LedgerSummary, error) {
	s := &entity.LedgerSummary{Income: decimal.Zero, Expense: decimal.Zero}
	for _, e := range r.entries {
		if e.Type == entity.LedgerIncome {
			s.Income = s.Income.Add(e.Amount)
		} else {
			s.Expense = s.Expense.Add(e.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s, nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) List(status string) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Deactivate(id string) error { return nil }

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{suppliers: make(map[string]*entity.Supplier)}
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.suppliers[id], nil
}

func (r *fakeSupplierRepo) List(status string) ([]*entity.Supplier, error) {
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSupplierRepo) Update(s *entity.Supplier) error {
	r.suppliers[s.ID] = s
	return nil
}

func (r *fakeSupplierRepo) Deactivate(id string) error { return nil }

// fakeTxRunner pasa los fakes directamente al callback; no hay transacción real,
// así que los tests verifican la lógica, no el rollback.
type fakeTxRunner struct {
	products  *fakeProductRepo
	sales     *fakeSalesRepo
	purchases *fakePurchaseRepo
	invoices  *fakeInvoiceRepo
	ledger    *fakeLedgerRepo
}

func (r *fakeTxRunner) RunOrders(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	salesRepo repository.SalesOrderRepository,
	purchaseRepo repository.PurchaseOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	return fn(r.products, r.sales, r.purchases, r.invoices, r.ledger)
}
