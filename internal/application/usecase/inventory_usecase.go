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

// DefaultLowStockThreshold umbral por defecto de la consulta de bajo stock.
const DefaultLowStockThreshold = 10

// InventoryUseCase casos de uso CRUD para inventario, incluida la regla
// cruzada producto/empresa y la consulta de bajo stock.
type InventoryUseCase struct {
	repo        repository.InventoryRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(
	repo repository.InventoryRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) *InventoryUseCase {
	return &InventoryUseCase{repo: repo, productRepo: productRepo, companyRepo: companyRepo}
}

// Create crea un registro de inventario. Valida cantidad no negativa y la
// regla cruzada: el producto debe pertenecer a la empresa referenciada.
// El par (product, company) duplicado devuelve domain.ErrDuplicate.
func (uc *InventoryUseCase) Create(p access.Principal, in dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	if err := domain.ValidateQuantity(in.Quantity); err != nil {
		return nil, err
	}
	product, company, err := uc.resolvePair(in.ProductID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !access.CanWriteInventory(p, company.ID) {
		return nil, domain.ErrForbidden
	}
	// Regla cruzada: se evalúa con ambas claves foráneas ya resueltas.
	if product.CompanyID != company.ID {
		return nil, domain.NewValidationError("product", "el producto debe pertenecer a la empresa seleccionada")
	}
	existing, _ := uc.repo.GetByProductAndCompany(in.ProductID, in.CompanyID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	inv := &entity.Inventory{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		CompanyID: in.CompanyID,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// GetByID obtiene un registro visible para el principal.
func (uc *InventoryUseCase) GetByID(p access.Principal, id string) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil || !access.CanSeeInventory(p, inv) {
		return nil, domain.ErrNotFound
	}
	return toInventoryResponse(inv), nil
}

// List lista los registros visibles para el principal.
func (uc *InventoryUseCase) List(p access.Principal) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toInventoryResponses(access.Inventories(p, list)), nil
}

// Update actualiza un registro. Re-valida cantidad y la regla cruzada con los
// valores resultantes; un cambio de empresa exige permiso sobre la nueva.
func (uc *InventoryUseCase) Update(p access.Principal, id string, in dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanWriteInventory(p, inv.CompanyID) {
		return nil, domain.ErrForbidden
	}
	productID := inv.ProductID
	companyID := inv.CompanyID
	if in.ProductID != nil {
		productID = *in.ProductID
	}
	if in.CompanyID != nil {
		companyID = *in.CompanyID
	}
	if in.Quantity != nil {
		if err := domain.ValidateQuantity(*in.Quantity); err != nil {
			return nil, err
		}
		inv.Quantity = *in.Quantity
	}
	if productID != inv.ProductID || companyID != inv.CompanyID {
		product, company, err := uc.resolvePair(productID, companyID)
		if err != nil {
			return nil, err
		}
		if !access.CanWriteInventory(p, company.ID) {
			return nil, domain.ErrForbidden
		}
		if product.CompanyID != company.ID {
			return nil, domain.NewValidationError("product", "el producto debe pertenecer a la empresa seleccionada")
		}
		existing, _ := uc.repo.GetByProductAndCompany(productID, companyID)
		if existing != nil && existing.ID != inv.ID {
			return nil, domain.ErrDuplicate
		}
		inv.ProductID = productID
		inv.CompanyID = companyID
	}
	inv.UpdatedAt = time.Now()
	if err := uc.repo.Update(inv); err != nil {
		return nil, err
	}
	return toInventoryResponse(inv), nil
}

// Delete elimina un registro de inventario.
func (uc *InventoryUseCase) Delete(p access.Principal, id string) error {
	inv, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if !access.CanWriteInventory(p, inv.CompanyID) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// LowStock devuelve los registros visibles con cantidad menor o igual al umbral.
// El parseo del umbral (y su 400 ante entrada no numérica) ocurre en el handler.
func (uc *InventoryUseCase) LowStock(p access.Principal, threshold int) ([]dto.InventoryResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	scoped := access.Inventories(p, list)
	low := make([]*entity.Inventory, 0, len(scoped))
	for _, inv := range scoped {
		if inv.Quantity <= threshold {
			low = append(low, inv)
		}
	}
	return toInventoryResponses(low), nil
}

// resolvePair carga producto y empresa; una clave foránea inexistente es un
// error de validación del campo correspondiente, no un 404.
func (uc *InventoryUseCase) resolvePair(productID, companyID string) (*entity.Product, *entity.Company, error) {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.NewValidationError("product_id", "el producto no existe")
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, domain.NewValidationError("company_id", "la empresa no existe")
	}
	return product, company, nil
}

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	return &dto.InventoryResponse{
		ID:        inv.ID,
		ProductID: inv.ProductID,
		CompanyID: inv.CompanyID,
		Quantity:  inv.Quantity,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

func toInventoryResponses(list []*entity.Inventory) []dto.InventoryResponse {
	items := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInventoryResponse(inv))
	}
	return items
}
