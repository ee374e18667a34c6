package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/erp-pyme/internal/domain/entity"
	"github.com/tu-usuario/erp-pyme/internal/domain/rbac"
	apphttp "github.com/tu-usuario/erp-pyme/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/erp-pyme/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "erp-pyme-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequireAccess para autorizar módulo:acción contra la matriz RBAC
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(module, action string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireAccess(module, action),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":        true,
				"role":      apphttp.GetRole(c),
				"self_only": apphttp.IsSelfOnly(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireAccess
// ──────────────────────────────────────────────────────────────────────────────

// El Admin pasa por cualquier módulo y acción (wildcard en la matriz).
func TestRequireAccess_AdminAccedeATodo(t *testing.T) {
	app := buildTestApp("ledger", rbac.ActionDelete)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"Admin debe poder acceder a cualquier módulo")
}

// Un rol con el módulo y la acción en su matriz pasa.
func TestRequireAccess_SalesOfficerAccedeASales(t *testing.T) {
	app := buildTestApp("sales", rbac.ActionCreate)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleSalesOfficer))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"Sales Officer debe poder crear órdenes de venta")
}

// Módulo fuera de la matriz del rol → HTTP 403.
func TestRequireAccess_SalesOfficerBloqueadoEnLedger(t *testing.T) {
	app := buildTestApp("ledger", rbac.ActionRead)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleSalesOfficer))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"Sales Officer no debe poder leer el libro contable")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Acción fuera de la matriz del rol (módulo permitido) → HTTP 403.
func TestRequireAccess_HROfficerNoPuedeBorrarEmpleados(t *testing.T) {
	app := buildTestApp("employees", rbac.ActionDelete)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleHROfficer))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"HR Officer puede leer y escribir empleados pero no borrarlos")
}

// El rol Employee queda marcado como self-only para que los handlers filtren.
func TestRequireAccess_EmployeeEsSelfOnly(t *testing.T) {
	app := buildTestApp("attendance", rbac.ActionRead)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleEmployee))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["self_only"],
		"Employee debe quedar marcado como self-only")
}

// Employee solo tiene lectura: crear asistencia → HTTP 403.
func TestRequireAccess_EmployeeNoPuedeEscribir(t *testing.T) {
	app := buildTestApp("attendance", rbac.ActionCreate)
	resp := doRequest(t, app, tokenForRole(t, entity.RoleEmployee))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Rol desconocido en el token → HTTP 403.
func TestRequireAccess_RolDesconocidoBloqueado(t *testing.T) {
	app := buildTestApp("products", rbac.ActionRead)
	resp := doRequest(t, app, tokenForRole(t, "Superuser"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un rol fuera de la matriz nunca tiene acceso")
}

// Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireAccess_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp("products", rbac.ActionRead)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequireAccess_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp("products", rbac.ActionRead)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"role":    apphttp.GetRole(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenForRole(t, entity.RoleAdmin))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}
