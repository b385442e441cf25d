package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/access"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos, con alcance por rol/propiedad.
type ProductUseCase struct {
	repo          repository.ProductRepository
	companyRepo   repository.CompanyRepository
	inventoryRepo repository.InventoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
	inventoryRepo repository.InventoryRepository,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, companyRepo: companyRepo, inventoryRepo: inventoryRepo}
}

// Create crea un producto. La empresa la aporta el cliente y debe estar dentro
// del permiso de escritura del principal. Valida precios no negativos.
// Devuelve domain.ErrDuplicate si el código ya existe.
func (uc *ProductUseCase) Create(p access.Principal, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	company, err := uc.companyRepo.GetByID(in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NewValidationError("company_id", "la empresa no existe")
	}
	if !access.CanWriteProduct(p, company.ID) {
		return nil, domain.ErrForbidden
	}
	if err := domain.ValidatePrices(in.PriceUSD, in.PriceEUR, in.PriceCOP); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:              uuid.New().String(),
		Code:            in.Code,
		Name:            in.Name,
		Characteristics: in.Characteristics,
		PriceUSD:        in.PriceUSD,
		PriceEUR:        in.PriceEUR,
		PriceCOP:        in.PriceCOP,
		CompanyID:       in.CompanyID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto visible para el principal.
func (uc *ProductUseCase) GetByID(p access.Principal, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !access.CanSeeProduct(p, product) {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista los productos visibles para el principal.
func (uc *ProductUseCase) List(p access.Principal) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	scoped := access.Products(p, list)
	items := make([]dto.ProductResponse, 0, len(scoped))
	for _, prod := range scoped {
		items = append(items, *toProductResponse(prod))
	}
	return items, nil
}

// Update actualiza un producto. Exige permiso de escritura sobre la empresa
// actual y, si el cliente reasigna la empresa, también sobre la nueva.
func (uc *ProductUseCase) Update(p access.Principal, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanWriteProduct(p, product.CompanyID) {
		return nil, domain.ErrForbidden
	}
	if in.CompanyID != nil && *in.CompanyID != product.CompanyID {
		company, err := uc.companyRepo.GetByID(*in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.NewValidationError("company_id", "la empresa no existe")
		}
		if !access.CanWriteProduct(p, company.ID) {
			return nil, domain.ErrForbidden
		}
		product.CompanyID = *in.CompanyID
	}
	if in.Code != nil && *in.Code != product.Code {
		existing, _ := uc.repo.GetByCode(*in.Code)
		if existing != nil && existing.ID != product.ID {
			return nil, domain.ErrDuplicate
		}
		product.Code = *in.Code
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Characteristics != nil {
		product.Characteristics = *in.Characteristics
	}
	if in.PriceUSD != nil {
		product.PriceUSD = *in.PriceUSD
	}
	if in.PriceEUR != nil {
		product.PriceEUR = *in.PriceEUR
	}
	if in.PriceCOP != nil {
		product.PriceCOP = *in.PriceCOP
	}
	if err := domain.ValidatePrices(product.PriceUSD, product.PriceEUR, product.PriceCOP); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto. La base de datos cascadea el inventario.
func (uc *ProductUseCase) Delete(p access.Principal, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !access.CanWriteProduct(p, product.CompanyID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// GetInventory devuelve un producto visible con sus existencias por empresa.
func (uc *ProductUseCase) GetInventory(p access.Principal, id string) (*dto.ProductInventoryResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !access.CanSeeProduct(p, product) {
		return nil, domain.ErrNotFound
	}
	inventories, err := uc.inventoryRepo.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	entries := make([]dto.ProductInventoryEntry, 0, len(inventories))
	for _, inv := range inventories {
		name := inv.CompanyID
		if company, cErr := uc.companyRepo.GetByID(inv.CompanyID); cErr == nil && company != nil {
			name = company.Name
		}
		entries = append(entries, dto.ProductInventoryEntry{
			Company:  name,
			Quantity: inv.Quantity,
		})
	}
	return &dto.ProductInventoryResponse{
		Product:   *toProductResponse(product),
		Inventory: entries,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Code:            p.Code,
		Name:            p.Name,
		Characteristics: p.Characteristics,
		PriceUSD:        p.PriceUSD,
		PriceEUR:        p.PriceEUR,
		PriceCOP:        p.PriceCOP,
		CompanyID:       p.CompanyID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
