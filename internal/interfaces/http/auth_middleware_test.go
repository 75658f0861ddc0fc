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

	apphttp "github.com/jhoicas/kiosk-sales/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/kiosk-sales/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "kiosk-sales-test"
	testExpMin    = 60
)

// tokenFor genera un Bearer token con las tiendas indicadas (nil = todas).
func tokenFor(t *testing.T, stores ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, stores, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// buildMeApp expone GET /me detrás de AuthMiddleware y devuelve los locals.
func buildMeApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(secret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"stores":  apphttp.GetStores(c),
		})
	})
	return app
}

func doGet(t *testing.T, app *fiber.App, target, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	resp := doGet(t, buildMeApp(testJWTSecret), "/me", tokenFor(t, "BLUESQUARE"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID string   `json:"user_id"`
		Stores []string `json:"stores"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, []string{"BLUESQUARE"}, body.Stores)
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	resp := doGet(t, buildMeApp(testJWTSecret), "/me", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_FormatoInvalido_Retorna401(t *testing.T) {
	resp := doGet(t, buildMeApp(testJWTSecret), "/me", "Token abc")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	resp := doGet(t, buildMeApp(testJWTSecret), "/me", "Bearer token.invalido.aqui")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, nil, testIssuer, -1)
	require.NoError(t, err)

	resp := doGet(t, buildMeApp(testJWTSecret), "/me", "Bearer "+tok)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SinSecretEsPublica(t *testing.T) {
	resp := doGet(t, buildMeApp(""), "/me", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "sin JWT_SECRET no se exige token")
}
