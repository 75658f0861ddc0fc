package http

import (
	"fmt"
	"slices"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kiosk-sales/internal/domain"
)

// resolveStore aplica el alcance del token a la tienda pedida.
//
// Comportamiento:
//   - Token sin tiendas (o API pública) → se devuelve requested tal cual.
//   - requested vacío y el token autoriza una sola tienda → esa tienda.
//   - requested vacío y varias tiendas → ErrForbidden (hay que elegir una).
//   - requested fuera del alcance → ErrForbidden.
func resolveStore(c *fiber.Ctx, requested string) (string, error) {
	allowed := GetStores(c)
	if len(allowed) == 0 {
		return requested, nil
	}
	if requested == "" {
		if len(allowed) == 1 {
			return allowed[0], nil
		}
		return "", fmt.Errorf("%w: store_name requerido", domain.ErrForbidden)
	}
	if !slices.Contains(allowed, requested) {
		return "", fmt.Errorf("%w: %s", domain.ErrForbidden, requested)
	}
	return requested, nil
}

// resolveStores igual que resolveStore para listas; vacío con token acotado
// devuelve todas las tiendas autorizadas.
func resolveStores(c *fiber.Ctx, requested []string) ([]string, error) {
	allowed := GetStores(c)
	if len(allowed) == 0 {
		return requested, nil
	}
	if len(requested) == 0 {
		return slices.Clone(allowed), nil
	}
	for _, s := range requested {
		if !slices.Contains(allowed, s) {
			return nil, fmt.Errorf("%w: %s", domain.ErrForbidden, s)
		}
	}
	return requested, nil
}
