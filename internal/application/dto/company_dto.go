package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
// El dueño no se recibe del cliente: se toma del principal autenticado.
type CreateCompanyRequest struct {
	NIT     string `json:"nit" validate:"required,min=1,max=20"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	NIT     *string `json:"nit"`
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	NIT       string    `json:"nit"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
