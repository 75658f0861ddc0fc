package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kiosk-sales/internal/application/dto"
	"github.com/jhoicas/kiosk-sales/pkg/jwt"
)

// Locals keys para UserID y las tiendas autorizadas en Fiber.
const (
	LocalUserID = "user_id"
	LocalStores = "stores"
)

// AuthMiddleware valida el Bearer Token JWT y deja UserID y Stores en c.Locals.
// Con secret vacío la API es pública y el middleware solo llama a c.Next().
func AuthMiddleware(jwtSecret string) fiber.Handler {
	if jwtSecret == "" {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalStores, claims.Stores)
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// GetStores devuelve las tiendas autorizadas por el token; nil = todas.
func GetStores(c *fiber.Ctx) []string {
	s, _ := c.Locals(LocalStores).([]string)
	return s
}
