package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/erp-pyme/internal/application/dto"
	"github.com/tu-usuario/erp-pyme/internal/application/orders"
	"github.com/tu-usuario/erp-pyme/internal/domain"
	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Entorno de test: fakes en memoria precargados con un cliente y dos productos.
// ──────────────────────────────────────────────────────────────────────────────

type salesEnv struct {
	uc       *orders.SalesUseCase
	products *fakeProductRepo
	sales    *fakeSalesRepo
	invoices *fakeInvoiceRepo
	ledger   *fakeLedgerRepo
}

const (
	testUserID     = "user-1"
	testCustomerID = "cust-1"
	testProductA   = "prod-a"
	testProductB   = "prod-b"
)

func newSalesEnv(t *testing.T) *salesEnv {
	t.Helper()
	products := newFakeProductRepo()
	sales := newFakeSalesRepo()
	purchases := newFakePurchaseRepo()
	invoices := newFakeInvoiceRepo()
	ledger := newFakeLedgerRepo()
	customers := newFakeCustomerRepo()

	require.NoError(t, customers.Create(&entity.Customer{
		ID: testCustomerID, Name: "Cliente Uno", Status: "active",
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: testProductA, SKU: "SKU-A", Name: "Producto A",
		Price: decimal.NewFromInt(100), Stock: 10, Status: entity.ProductActive,
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: testProductB, SKU: "SKU-B", Name: "Producto B",
		Price: decimal.NewFromInt(50), Stock: 3, Status: entity.ProductActive,
	}))

	runner := &fakeTxRunner{
		products: products, sales: sales, purchases: purchases,
		invoices: invoices, ledger: ledger,
	}
	uc := orders.NewSalesUseCase(runner, sales, products, customers, invoices)
	return &salesEnv{uc: uc, products: products, sales: sales, invoices: invoices, ledger: ledger}
}

func createOrder(t *testing.T, env *salesEnv, items ...dto.OrderItemRequest) *dto.SalesOrderResponse {
	t.Helper()
	resp, err := env.uc.Create(context.Background(), testUserID, dto.CreateSalesOrderRequest{
		CustomerID: testCustomerID,
		Items:      items,
	})
	require.NoError(t, err, "la creación de la orden no debe fallar")
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Los totales se calculan en el servidor: subtotal = Σ(qty × unit_price).
func TestSalesCreate_CalculaTotales(t *testing.T) {
	env := newSalesEnv(t)

	resp, err := env.uc.Create(context.Background(), testUserID, dto.CreateSalesOrderRequest{
		CustomerID: testCustomerID,
		Items: []dto.OrderItemRequest{
			{ProductID: testProductA, Quantity: 2, UnitPrice: decimal.NewFromInt(100)},
			{ProductID: testProductB, Quantity: 1, UnitPrice: decimal.NewFromInt(50)},
		},
		Tax:      decimal.NewFromInt(25),
		Discount: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal = 2×100 + 1×50")
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(265)), "total = subtotal + tax - discount")
	assert.Equal(t, entity.OrderPending, resp.Status, "la orden nace pendiente")
	assert.Regexp(t, `^SO-\d+$`, resp.OrderNumber)
	assert.Len(t, resp.Items, 2)
}

// Precio cero en la línea toma el precio de lista del producto.
func TestSalesCreate_PrecioPorDefecto(t *testing.T) {
	env := newSalesEnv(t)

	resp := createOrder(t, env, dto.OrderItemRequest{ProductID: testProductA, Quantity: 3})

	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(300)),
		"sin precio explícito se usa el precio de lista (100)")
}

// Crear no descuenta stock; solo valida disponibilidad.
func TestSalesCreate_NoTocaStock(t *testing.T) {
	env := newSalesEnv(t)

	createOrder(t, env, dto.OrderItemRequest{ProductID: testProductA, Quantity: 4})

	p, _ := env.products.GetByID(testProductA)
	assert.Equal(t, 10, p.Stock, "el stock solo cambia al confirmar")
}

// Stock insuficiente rechaza la orden sin persistir nada: ni cabecera ni líneas.
func TestSalesCreate_StockInsuficiente(t *testing.T) {
	env := newSalesEnv(t)

	_, err := env.uc.Create(context.Background(), testUserID, dto.CreateSalesOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{{ProductID: testProductB, Quantity: 4}},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, env.sales.orders, "no debe quedar cabecera persistida")
	assert.Empty(t, env.sales.items, "no deben quedar líneas persistidas")
}

// Una orden cuyo total queda en cero (descuento == subtotal) no se puede
// facturar: el libro exige montos positivos, así que Create la rechaza.
func TestSalesCreate_TotalCeroRechazado(t *testing.T) {
	env := newSalesEnv(t)

	_, err := env.uc.Create(context.Background(), testUserID, dto.CreateSalesOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{{ProductID: testProductA, Quantity: 1}},
		Discount:   decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, env.sales.orders)
	assert.Empty(t, env.sales.items)
}

func TestSalesCreate_ClienteInexistente(t *testing.T) {
	env := newSalesEnv(t)

	_, err := env.uc.Create(context.Background(), testUserID, dto.CreateSalesOrderRequest{
		CustomerID: "no-existe",
		Items:      []dto.OrderItemRequest{{ProductID: testProductA, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSalesCreate_SinLineas(t *testing.T) {
	env := newSalesEnv(t)

	_, err := env.uc.Create(context.Background(), testUserID, dto.CreateSalesOrderRequest{
		CustomerID: testCustomerID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSalesCreate_CantidadInvalida(t *testing.T) {
	env := newSalesEnv(t)

	_, err := env.uc.Create(context.Background(), testUserID, dto.CreateSalesOrderRequest{
		CustomerID: testCustomerID,
		Items:      []dto.OrderItemRequest{{ProductID: testProductA, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Confirm: descuento de stock + factura + asiento INCOME, todo o nada.
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesConfirm_DescuentaStockYFactura(t *testing.T) {
	env := newSalesEnv(t)
	order := createOrder(t, env,
		dto.OrderItemRequest{ProductID: testProductA, Quantity: 4},
		dto.OrderItemRequest{ProductID: testProductB, Quantity: 2},
	)

	resp, err := env.uc.Confirm(context.Background(), testUserID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, resp.Status)

	pa, _ := env.products.GetByID(testProductA)
	pb, _ := env.products.GetByID(testProductB)
	assert.Equal(t, 6, pa.Stock, "10 - 4")
	assert.Equal(t, 1, pb.Stock, "3 - 2")

	// Exactamente una factura, con los montos de la orden
	inv, err := env.invoices.GetByOrderID(order.ID)
	require.NoError(t, err)
	require.NotNil(t, inv, "confirmar debe emitir la factura")
	assert.Regexp(t, `^INV-\d+$`, inv.InvoiceNumber)
	assert.Equal(t, entity.InvoiceUnpaid, inv.Status)
	assert.True(t, inv.Total.Equal(resp.Total), "la factura refleja el total de la orden")

	// Exactamente un asiento INCOME con referencia a la orden
	require.Len(t, env.ledger.entries, 1)
	entry := env.ledger.entries[0]
	assert.Equal(t, entity.LedgerIncome, entry.Type)
	assert.Equal(t, "Sales", entry.Category)
	assert.Equal(t, entity.RefSalesOrder, entry.ReferenceType)
	assert.Equal(t, order.ID, entry.ReferenceID)
	assert.True(t, entry.Amount.Equal(resp.Total))
}

// Confirmar dos veces no duplica efectos: la segunda llamada falla y el libro
// queda con un solo asiento.
func TestSalesConfirm_NoEsReejecutable(t *testing.T) {
	env := newSalesEnv(t)
	order := createOrder(t, env, dto.OrderItemRequest{ProductID: testProductA, Quantity: 1})

	_, err := env.uc.Confirm(context.Background(), testUserID, order.ID)
	require.NoError(t, err)

	_, err = env.uc.Confirm(context.Background(), testUserID, order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotPending)

	p, _ := env.products.GetByID(testProductA)
	assert.Equal(t, 9, p.Stock, "el stock se descuenta una sola vez")
	assert.Len(t, env.ledger.entries, 1, "un solo asiento INCOME")
}

// El stock se revalida al confirmar, no al crear: si otra venta lo agotó en
// el medio, la confirmación falla y la orden sigue pendiente.
func TestSalesConfirm_RevalidaStock(t *testing.T) {
	env := newSalesEnv(t)
	order := createOrder(t, env, dto.OrderItemRequest{ProductID: testProductB, Quantity: 3})

	// Otra venta consume el stock entre crear y confirmar
	require.NoError(t, env.products.UpdateStock(testProductB, 1))

	_, err := env.uc.Confirm(context.Background(), testUserID, order.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	got, _ := env.sales.GetByID(order.ID)
	assert.Equal(t, entity.OrderPending, got.Status, "la orden queda pendiente para reintentar")
	assert.Empty(t, env.ledger.entries, "sin asiento si la confirmación falla")
}

func TestSalesConfirm_OrdenInexistente(t *testing.T) {
	env := newSalesEnv(t)

	_, err := env.uc.Confirm(context.Background(), testUserID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesCancel_SoloPendiente(t *testing.T) {
	env := newSalesEnv(t)
	order := createOrder(t, env, dto.OrderItemRequest{ProductID: testProductA, Quantity: 1})

	resp, err := env.uc.Cancel(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, resp.Status)

	// Cancelled es terminal
	_, err = env.uc.Confirm(context.Background(), testUserID, order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
}

func TestSalesCancel_ConfirmadaNoSeCancela(t *testing.T) {
	env := newSalesEnv(t)
	order := createOrder(t, env, dto.OrderItemRequest{ProductID: testProductA, Quantity: 1})

	_, err := env.uc.Confirm(context.Background(), testUserID, order.ID)
	require.NoError(t, err)

	_, err = env.uc.Cancel(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
}
