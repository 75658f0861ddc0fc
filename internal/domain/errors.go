package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("tienda fuera del alcance del token")
	ErrUpstream     = errors.New("fuente de ventas no disponible")
)
