package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/tu-usuario/erp-pyme/pkg/jwt"
)

const (
	secret = "unit-test-secret"
	userID = "00000000-0000-0000-0000-000000000001"
	issuer = "erp-pyme-test"
)

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "Finance Officer", issuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	gotUserID, gotRole, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)

	assert.Equal(t, userID, gotUserID)
	assert.Equal(t, "Finance Officer", gotRole)
}

func TestParse_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, userID, "Admin", issuer, 60)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestParse_TokenExpirado_RetornaError(t *testing.T) {
	// Expiración -1 minuto: el token nace vencido.
	tok, err := pkgjwt.Generate(secret, userID, "Admin", issuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestGenerate_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", userID, "Admin", issuer, 60)
	assert.Error(t, err)
}

func TestParse_TokenMalformado_RetornaError(t *testing.T) {
	_, _, err := pkgjwt.Parse(secret, "no.es.un.jwt")
	assert.Error(t, err)
}
