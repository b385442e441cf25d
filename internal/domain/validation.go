package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Reglas de campo evaluadas antes de persistir. Reproducen los contratos del
// catálogo: NIT numérico con un guion opcional, teléfono con dígitos, espacios
// y '+', precios no negativos y cantidad de inventario no negativa.

// ValidateNIT verifica que el NIT contenga solo dígitos y a lo sumo un guion
// (ejemplo: 900123456-7).
func ValidateNIT(nit string) error {
	if nit == "" {
		return NewValidationError("nit", "el NIT es requerido")
	}
	if strings.Count(nit, "-") > 1 {
		return NewValidationError("nit", "el NIT debe contener solo números y un guion")
	}
	stripped := strings.ReplaceAll(nit, "-", "")
	if stripped == "" || !isDigits(stripped) {
		return NewValidationError("nit", "el NIT debe contener solo números y un guion")
	}
	return nil
}

// ValidatePhone verifica que el teléfono contenga solo dígitos, espacios y '+'.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil // el teléfono es opcional
	}
	stripped := strings.ReplaceAll(strings.ReplaceAll(phone, "+", ""), " ", "")
	if stripped == "" || !isDigits(stripped) {
		return NewValidationError("phone", "el teléfono debe contener solo números, espacios y '+'")
	}
	return nil
}

// ValidatePrices verifica que los tres precios sean no negativos.
// Devuelve un único error agregado, no uno por campo.
func ValidatePrices(usd, eur, cop decimal.Decimal) error {
	if usd.IsNegative() || eur.IsNegative() || cop.IsNegative() {
		return NewValidationError("prices", "los precios no pueden ser negativos")
	}
	return nil
}

// ValidateQuantity verifica que la cantidad de inventario sea no negativa.
func ValidateQuantity(quantity int) error {
	if quantity < 0 {
		return NewValidationError("quantity", "la cantidad no puede ser negativa")
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
