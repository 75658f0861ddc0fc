package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/kiosk-sales/internal/application/dto"
	"github.com/jhoicas/kiosk-sales/internal/domain"
)

// writeError traduce errores de dominio a status HTTP + dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUpstream):
		log.Warn().Err(err).Str("path", c.Path()).Msg("fuente de ventas no disponible")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPSTREAM_UNAVAILABLE", Message: domain.ErrUpstream.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

// isDomainError indica si err envuelve alguno de los errores de dominio.
func isDomainError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrForbidden) ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrUpstream)
}
