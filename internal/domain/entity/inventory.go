package entity

import "time"

// Inventory empareja un producto con una empresa y la cantidad en existencia.
// Invariante: el producto debe pertenecer a la misma empresa del registro.
// El par (ProductID, CompanyID) es único a nivel de base de datos.
type Inventory struct {
	ID        string
	ProductID string
	CompanyID string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
