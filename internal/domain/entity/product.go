package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo, con precio por moneda.
// No hay conversión de divisas: los tres precios se almacenan tal cual.
type Product struct {
	ID              string
	Code            string // código único
	Name            string
	Characteristics string // texto libre
	PriceUSD        decimal.Decimal
	PriceEUR        decimal.Decimal
	PriceCOP        decimal.Decimal
	CompanyID       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
