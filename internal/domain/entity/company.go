package entity

import "time"

// Company representa una empresa registrada en el catálogo.
// UserID es el dueño; se asigna desde el principal autenticado al crear,
// nunca lo aporta el cliente.
type Company struct {
	ID        string
	NIT       string // NIT colombiano, único (solo dígitos y un guion opcional)
	Name      string
	Address   string
	Phone     string // dígitos, espacios y '+'
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
