package usecase

import (
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/access"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// PrincipalService construye el principal de una petición a partir de los
// claims del token. La relación derivada de propiedad (empresas del usuario)
// se resuelve aquí una sola vez por petición, no ad hoc en cada handler.
type PrincipalService struct {
	companyRepo repository.CompanyRepository
}

// NewPrincipalService construye el servicio con el puerto de empresas.
func NewPrincipalService(companyRepo repository.CompanyRepository) *PrincipalService {
	return &PrincipalService{companyRepo: companyRepo}
}

// Resolve valida el rol y carga el cierre de propiedad del usuario.
// Admin no necesita la lista: su visibilidad es total.
func (s *PrincipalService) Resolve(userID, role string) (access.Principal, error) {
	r, err := access.ParseRole(role)
	if err != nil {
		return access.Principal{}, domain.ErrUnauthorized
	}
	p := access.Principal{UserID: userID, Role: r}
	if r == access.RoleAdmin {
		return p, nil
	}
	companies, err := s.companyRepo.ListByUser(userID)
	if err != nil {
		return access.Principal{}, err
	}
	p.CompanyIDs = make([]string, 0, len(companies))
	for _, c := range companies {
		p.CompanyIDs = append(p.CompanyIDs, c.ID)
	}
	return p, nil
}
