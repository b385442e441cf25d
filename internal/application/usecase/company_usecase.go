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

// CompanyUseCase casos de uso CRUD para empresas, con alcance por rol/propiedad.
type CompanyUseCase struct {
	repo        repository.CompanyRepository
	productRepo repository.ProductRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository, productRepo repository.ProductRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, productRepo: productRepo}
}

// Create crea una empresa. Valida NIT y teléfono, y asigna al principal como
// dueño (la propiedad nunca la aporta el cliente).
// Devuelve domain.ErrDuplicate si el NIT ya existe.
func (uc *CompanyUseCase) Create(p access.Principal, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := domain.ValidateNIT(in.NIT); err != nil {
		return nil, err
	}
	if err := domain.ValidatePhone(in.Phone); err != nil {
		return nil, err
	}
	existing, _ := uc.repo.GetByNIT(in.NIT)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		NIT:       in.NIT,
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		UserID:    p.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa visible para el principal.
// Fuera de alcance se responde como inexistente, igual que un queryset filtrado.
func (uc *CompanyUseCase) GetByID(p access.Principal, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil || !access.CanSeeCompany(p, company) {
		return nil, domain.ErrNotFound
	}
	return toCompanyResponse(company), nil
}

// List lista las empresas visibles: todas para admin, las propias para external.
func (uc *CompanyUseCase) List(p access.Principal) ([]dto.CompanyResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	scoped := access.Companies(p, list)
	items := make([]dto.CompanyResponse, 0, len(scoped))
	for _, c := range scoped {
		items = append(items, *toCompanyResponse(c))
	}
	return items, nil
}

// Update actualiza una empresa. Requiere permiso de escritura (admin o dueño)
// y re-valida los campos modificados.
func (uc *CompanyUseCase) Update(p access.Principal, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if !access.CanWriteCompany(p, company) {
		return nil, domain.ErrForbidden
	}
	if in.NIT != nil {
		if err := domain.ValidateNIT(*in.NIT); err != nil {
			return nil, err
		}
		if *in.NIT != company.NIT {
			existing, _ := uc.repo.GetByNIT(*in.NIT)
			if existing != nil && existing.ID != company.ID {
				return nil, domain.ErrDuplicate
			}
		}
		company.NIT = *in.NIT
	}
	if in.Phone != nil {
		if err := domain.ValidatePhone(*in.Phone); err != nil {
			return nil, err
		}
		company.Phone = *in.Phone
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina una empresa. La base de datos cascadea productos e inventario.
func (uc *CompanyUseCase) Delete(p access.Principal, id string) error {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}
	if !access.CanWriteCompany(p, company) {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(id)
}

// ListProducts devuelve los productos de una empresa visible para el principal.
func (uc *CompanyUseCase) ListProducts(p access.Principal, companyID string) ([]dto.ProductResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil || !access.CanSeeCompany(p, company) {
		return nil, domain.ErrNotFound
	}
	products, err := uc.productRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, prod := range products {
		items = append(items, *toProductResponse(prod))
	}
	return items, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		NIT:       c.NIT,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
