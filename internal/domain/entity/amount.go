package entity

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount importe exacto recibido de la fuente de ventas.
//
// El valor cero es un importe válido igual a 0. Un Amount inválido proviene de
// un campo no numérico (ej. "abc") y contamina cualquier suma en la que
// participe, en lugar de convertirse silenciosamente en NaN o en cero.
type Amount struct {
	value   decimal.Decimal
	invalid bool
}

// InvalidAmount es el centinela para entradas no numéricas.
var InvalidAmount = Amount{invalid: true}

// NewAmount envuelve un decimal como importe válido.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{value: d}
}

// AmountFromInt construye un importe entero.
func AmountFromInt(n int64) Amount {
	return Amount{value: decimal.NewFromInt(n)}
}

// ParseAmount convierte texto numérico en Amount.
// Cadena vacía (o solo espacios) equivale a 0; cualquier texto no numérico
// produce InvalidAmount.
func ParseAmount(s string) Amount {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return InvalidAmount
	}
	return Amount{value: d}
}

// Valid indica si el importe es numérico.
func (a Amount) Valid() bool { return !a.invalid }

// Decimal devuelve el valor exacto (cero si el importe es inválido).
func (a Amount) Decimal() decimal.Decimal {
	if a.invalid {
		return decimal.Zero
	}
	return a.value
}

// Add suma dos importes; si alguno es inválido el resultado es inválido.
func (a Amount) Add(b Amount) Amount {
	if a.invalid || b.invalid {
		return InvalidAmount
	}
	return Amount{value: a.value.Add(b.value)}
}

// IsPositive es true solo para importes válidos estrictamente mayores que cero.
func (a Amount) IsPositive() bool {
	return !a.invalid && a.value.IsPositive()
}

// Equal compara valor y validez.
func (a Amount) Equal(b Amount) bool {
	if a.invalid || b.invalid {
		return a.invalid == b.invalid
	}
	return a.value.Equal(b.value)
}

func (a Amount) String() string {
	if a.invalid {
		return "NaN"
	}
	return a.value.String()
}

// MarshalJSON: importe válido como decimal, inválido como null.
func (a Amount) MarshalJSON() ([]byte, error) {
	if a.invalid {
		return []byte("null"), nil
	}
	return a.value.MarshalJSON()
}

// UnmarshalJSON acepta números JSON, cadenas numéricas y null (= 0).
// Cualquier otro valor (bool, objeto, texto no numérico) queda inválido.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = Amount{}
	case len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"':
		*a = ParseAmount(string(data[1 : len(data)-1]))
	case len(data) > 0 && (data[0] == '-' || (data[0] >= '0' && data[0] <= '9')):
		*a = ParseAmount(string(data))
	default:
		*a = InvalidAmount
	}
	return nil
}
