package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// InventoryRepository define el puerto de persistencia para Inventory (DIP).
// La unicidad del par (product, company) la garantiza la base de datos.
type InventoryRepository interface {
	Create(inv *entity.Inventory) error
	GetByID(id string) (*entity.Inventory, error)
	GetByProductAndCompany(productID, companyID string) (*entity.Inventory, error)
	Update(inv *entity.Inventory) error
	List() ([]*entity.Inventory, error)
	ListByProduct(productID string) ([]*entity.Inventory, error)
	Delete(id string) error
}
