package http

import (
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/erp-pyme/internal/domain"
)

func respondWith(t *testing.T, err error) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	req := httptest.NewRequest(nethttp.MethodGet, "/x", nil)
	resp, tErr := app.Test(req)
	require.NoError(t, tErr)
	defer resp.Body.Close()
	body, tErr := io.ReadAll(resp.Body)
	require.NoError(t, tErr)
	return resp.StatusCode, string(body)
}

// Un error de almacenamiento desconocido responde 500 genérico: el texto del
// driver (SQL, SQLSTATE) no debe llegar al cliente.
func TestRespondError_ErrorInternoNoFiltraDetalle(t *testing.T) {
	cause := fmt.Errorf("insert product: %w",
		fmt.Errorf(`ERROR: relation "products" does not exist (SQLSTATE 42P01)`))

	status, body := respondWith(t, cause)

	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Contains(t, body, `"INTERNAL"`)
	assert.Contains(t, body, "error interno")
	assert.NotContains(t, body, "SQLSTATE", "el detalle del driver no debe filtrarse")
	assert.NotContains(t, body, "products", "el texto SQL no debe filtrarse")
}

// Los errores de dominio conservan su mapeo y su mensaje estable.
func TestRespondError_ErroresDeDominio(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{fmt.Errorf("confirmar orden: %w", domain.ErrInsufficientStock), fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{fmt.Errorf("pagar nómina: %w", domain.ErrAlreadyPaid), fiber.StatusConflict, "ALREADY_PAID"},
	}
	for _, tc := range cases {
		status, body := respondWith(t, tc.err)
		assert.Equal(t, tc.status, status, "error %v", tc.err)
		assert.Contains(t, body, tc.code)
	}
}
