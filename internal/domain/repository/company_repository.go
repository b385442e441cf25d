package repository

import "github.com/tu-usuario/catalogo-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByNIT(nit string) (*entity.Company, error)
	Update(company *entity.Company) error
	List() ([]*entity.Company, error)
	// ListByUser devuelve las empresas de un dueño; alimenta la relación
	// derivada de propiedad del principal.
	ListByUser(userID string) ([]*entity.Company, error)
	Delete(id string) error
}
