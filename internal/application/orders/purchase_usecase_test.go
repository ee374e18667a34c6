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

const testSupplierID = "supp-1"

type purchaseEnv struct {
	uc        *orders.PurchaseUseCase
	products  *fakeProductRepo
	purchases *fakePurchaseRepo
	ledger    *fakeLedgerRepo
}

func newPurchaseEnv(t *testing.T) *purchaseEnv {
	t.Helper()
	products := newFakeProductRepo()
	sales := newFakeSalesRepo()
	purchases := newFakePurchaseRepo()
	invoices := newFakeInvoiceRepo()
	ledger := newFakeLedgerRepo()
	suppliers := newFakeSupplierRepo()

	require.NoError(t, suppliers.Create(&entity.Supplier{
		ID: testSupplierID, Name: "Proveedor Uno", Status: "active",
	}))
	require.NoError(t, products.Create(&entity.Product{
		ID: testProductA, SKU: "SKU-A", Name: "Producto A",
		Cost: decimal.NewFromInt(60), Stock: 5, Status: entity.ProductActive,
	}))

	runner := &fakeTxRunner{
		products: products, sales: sales, purchases: purchases,
		invoices: invoices, ledger: ledger,
	}
	uc := orders.NewPurchaseUseCase(runner, purchases, products, suppliers)
	return &purchaseEnv{uc: uc, products: products, purchases: purchases, ledger: ledger}
}

func createPurchase(t *testing.T, env *purchaseEnv, items ...dto.OrderItemRequest) *dto.PurchaseOrderResponse {
	t.Helper()
	resp, err := env.uc.Create(context.Background(), testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: testSupplierID,
		Items:      items,
	})
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseCreate_CalculaTotales(t *testing.T) {
	env := newPurchaseEnv(t)

	resp, err := env.uc.Create(context.Background(), testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: testSupplierID,
		Items: []dto.OrderItemRequest{
			{ProductID: testProductA, Quantity: 10, UnitPrice: decimal.NewFromInt(55)},
		},
		Tax: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(550)))
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(600)), "total = subtotal + tax")
	assert.Equal(t, entity.OrderPending, resp.Status)
	assert.Regexp(t, `^PO-\d+$`, resp.OrderNumber)
}

// Costo cero en la línea toma el costo de lista del producto.
func TestPurchaseCreate_CostoPorDefecto(t *testing.T) {
	env := newPurchaseEnv(t)

	resp := createPurchase(t, env, dto.OrderItemRequest{ProductID: testProductA, Quantity: 2})

	assert.True(t, resp.Subtotal.Equal(decimal.NewFromInt(120)),
		"sin costo explícito se usa el costo de lista (60)")
}

// Un producto con costo cero y sin costo explícito da total cero: el asiento
// EXPENSE de Receive exige montos positivos, así que Create rechaza la orden.
func TestPurchaseCreate_TotalCeroRechazado(t *testing.T) {
	env := newPurchaseEnv(t)
	require.NoError(t, env.products.Create(&entity.Product{
		ID: "prod-gratis", SKU: "SKU-G", Name: "Muestra",
		Cost: decimal.Zero, Stock: 0, Status: entity.ProductActive,
	}))

	_, err := env.uc.Create(context.Background(), testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: testSupplierID,
		Items:      []dto.OrderItemRequest{{ProductID: "prod-gratis", Quantity: 3}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, env.purchases.orders)
	assert.Empty(t, env.purchases.items)
}

func TestPurchaseCreate_ProveedorInexistente(t *testing.T) {
	env := newPurchaseEnv(t)

	_, err := env.uc.Create(context.Background(), testUserID, dto.CreatePurchaseOrderRequest{
		SupplierID: "no-existe",
		Items:      []dto.OrderItemRequest{{ProductID: testProductA, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Receive: incremento de stock + received_date + asiento EXPENSE.
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseReceive_IncrementaStock(t *testing.T) {
	env := newPurchaseEnv(t)
	order := createPurchase(t, env, dto.OrderItemRequest{ProductID: testProductA, Quantity: 7})

	resp, err := env.uc.Receive(context.Background(), testUserID, order.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.OrderReceived, resp.Status)
	require.NotNil(t, resp.ReceivedDate, "recibir estampa received_date")

	p, _ := env.products.GetByID(testProductA)
	assert.Equal(t, 12, p.Stock, "5 + 7")

	require.Len(t, env.ledger.entries, 1)
	entry := env.ledger.entries[0]
	assert.Equal(t, entity.LedgerExpense, entry.Type)
	assert.Equal(t, "Purchases", entry.Category)
	assert.Equal(t, entity.RefPurchaseOrder, entry.ReferenceType)
	assert.Equal(t, order.ID, entry.ReferenceID)
	assert.True(t, entry.Amount.Equal(resp.Total))
}

// Recibir dos veces no duplica stock ni asientos.
func TestPurchaseReceive_NoEsReejecutable(t *testing.T) {
	env := newPurchaseEnv(t)
	order := createPurchase(t, env, dto.OrderItemRequest{ProductID: testProductA, Quantity: 7})

	_, err := env.uc.Receive(context.Background(), testUserID, order.ID)
	require.NoError(t, err)

	_, err = env.uc.Receive(context.Background(), testUserID, order.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyReceived)

	p, _ := env.products.GetByID(testProductA)
	assert.Equal(t, 12, p.Stock, "el stock se suma una sola vez")
	assert.Len(t, env.ledger.entries, 1, "un solo asiento EXPENSE")
}

func TestPurchaseReceive_OrdenInexistente(t *testing.T) {
	env := newPurchaseEnv(t)

	_, err := env.uc.Receive(context.Background(), testUserID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel
// ──────────────────────────────────────────────────────────────────────────────

func TestPurchaseCancel_SoloPendiente(t *testing.T) {
	env := newPurchaseEnv(t)
	order := createPurchase(t, env, dto.OrderItemRequest{ProductID: testProductA, Quantity: 1})

	resp, err := env.uc.Cancel(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderCancelled, resp.Status)

	p, _ := env.products.GetByID(testProductA)
	assert.Equal(t, 5, p.Stock, "cancelar nunca toca el stock")
}

func TestPurchaseCancel_RecibidaNoSeCancela(t *testing.T) {
	env := newPurchaseEnv(t)
	order := createPurchase(t, env, dto.OrderItemRequest{ProductID: testProductA, Quantity: 1})

	_, err := env.uc.Receive(context.Background(), testUserID, order.ID)
	require.NoError(t, err)

	_, err = env.uc.Cancel(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderNotPending)
}
