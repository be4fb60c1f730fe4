package order

import (
	"strings"
	"unicode/utf8"

	"github.com/acamargo/almacen-api/internal/domain"
)

// Límites de negocio de los documentos de entrada/salida.
const (
	MinQuantity          = 1
	MaxQuantity          = 999999
	MaxCounterpartyChars = 100
	MaxRemarkChars       = 500
)

// ValidateDetails valida los campos de negocio comunes de un documento.
// Es la única autoridad de validación: create y update pasan por aquí,
// de modo que ambas rutas apliquen exactamente las mismas reglas.
func ValidateDetails(quantity int, counterparty, remark string) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return domain.ErrValidation
	}
	if strings.TrimSpace(counterparty) == "" {
		return domain.ErrValidation
	}
	if utf8.RuneCountInString(counterparty) > MaxCounterpartyChars {
		return domain.ErrValidation
	}
	if utf8.RuneCountInString(remark) > MaxRemarkChars {
		return domain.ErrValidation
	}
	return nil
}
