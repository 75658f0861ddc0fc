package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/kiosk-sales/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse_ConTiendas(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "u-1", []string{"BLUESQUARE"}, "kiosk-sales-test", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, []string{"BLUESQUARE"}, claims.Stores)
	assert.Equal(t, "kiosk-sales-test", claims.Issuer)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "u-1", nil, "kiosk-sales-test", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "u-1", nil, "kiosk-sales-test", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", "u-1", nil, "x", 60)
	assert.Error(t, err)
}
