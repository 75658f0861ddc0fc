package dto

// Límites de paginación de los listados.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto y recorta Limit a MaxPageLimit.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Window devuelve los índices [from, to) de la página dentro de total elementos.
func (p PageRequest) Window(total int) (from, to int) {
	from = min(p.Offset, total)
	to = min(from+p.Limit, total)
	return from, to
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"` // elementos antes de paginar
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
