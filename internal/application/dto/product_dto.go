package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// CompanyID lo aporta el cliente y se verifica contra la propiedad del principal.
type CreateProductRequest struct {
	Code            string          `json:"code" validate:"required,min=1,max=50"`
	Name            string          `json:"name" validate:"required,min=1,max=100"`
	Characteristics string          `json:"characteristics"`
	PriceUSD        decimal.Decimal `json:"price_usd"`
	PriceEUR        decimal.Decimal `json:"price_eur"`
	PriceCOP        decimal.Decimal `json:"price_cop"`
	CompanyID       string          `json:"company_id" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Code            *string          `json:"code"`
	Name            *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Characteristics *string          `json:"characteristics"`
	PriceUSD        *decimal.Decimal `json:"price_usd"`
	PriceEUR        *decimal.Decimal `json:"price_eur"`
	PriceCOP        *decimal.Decimal `json:"price_cop"`
	CompanyID       *string          `json:"company_id"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string          `json:"id"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Characteristics string          `json:"characteristics"`
	PriceUSD        decimal.Decimal `json:"price_usd"`
	PriceEUR        decimal.Decimal `json:"price_eur"`
	PriceCOP        decimal.Decimal `json:"price_cop"`
	CompanyID       string          `json:"company_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductInventoryEntry existencias de un producto en una empresa.
type ProductInventoryEntry struct {
	Company  string `json:"company"` // nombre de la empresa
	Quantity int    `json:"quantity"`
}

// ProductInventoryResponse producto con sus existencias por empresa.
type ProductInventoryResponse struct {
	Product   ProductResponse         `json:"product"`
	Inventory []ProductInventoryEntry `json:"inventory"`
}

// RecommendationResponse texto de recomendación relayado del servicio de IA.
type RecommendationResponse struct {
	Recommendation string `json:"recommendation"`
}
