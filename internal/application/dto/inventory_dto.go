package dto

import "time"

// CreateInventoryRequest entrada para crear un registro de inventario.
type CreateInventoryRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	CompanyID string `json:"company_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateInventoryRequest entrada para actualizar un registro de inventario.
type UpdateInventoryRequest struct {
	ProductID *string `json:"product_id"`
	CompanyID *string `json:"company_id"`
	Quantity  *int    `json:"quantity"`
}

// InventoryResponse salida de un registro de inventario.
type InventoryResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	CompanyID string    `json:"company_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GeneratePDFRequest entrada del reporte de inventario.
// Email vacío: el PDF se devuelve en la respuesta HTTP.
type GeneratePDFRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
}

// GeneratePDFResponse resultado cuando el reporte se entrega por correo o se
// guarda en disco (modo debug).
type GeneratePDFResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	DevMode  bool   `json:"dev_mode,omitempty"`
	PDFPath  string `json:"pdf_path,omitempty"`
}
