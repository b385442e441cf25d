// Package access implementa el alcance de visibilidad y los permisos de
// escritura por rol y propiedad. Las funciones de alcance son puras:
// reciben un principal y una colección y devuelven el subconjunto visible,
// de modo que se prueban aisladas del almacenamiento.
package access

import (
	"fmt"

	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

// Role es el único eje de autorización del sistema.
type Role string

// Roles válidos. El conjunto es cerrado: cualquier otro valor falla en ParseRole.
const (
	RoleAdmin    Role = "admin"
	RoleExternal Role = "external"
)

// ParseRole valida un rol serializado (claim JWT, columna de DB).
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleExternal:
		return Role(s), nil
	default:
		return "", fmt.Errorf("rol desconocido: %q", s)
	}
}

// Principal es el actor autenticado de una petición.
// CompanyIDs es la relación derivada de propiedad (empresas del usuario),
// resuelta una sola vez por petición; vacía para admin, que no la necesita.
type Principal struct {
	UserID     string
	Role       Role
	CompanyIDs []string
}

// IsAdmin informa si el principal tiene visibilidad total.
func (p Principal) IsAdmin() bool { return p.Role == RoleAdmin }

// OwnsCompany informa si la empresa está dentro del cierre de propiedad del principal.
func (p Principal) OwnsCompany(companyID string) bool {
	for _, id := range p.CompanyIDs {
		if id == companyID {
			return true
		}
	}
	return false
}

// Companies devuelve las empresas visibles: todas para admin, las propias para external.
func Companies(p Principal, list []*entity.Company) []*entity.Company {
	if p.IsAdmin() {
		return list
	}
	out := make([]*entity.Company, 0, len(list))
	for _, c := range list {
		if c.UserID == p.UserID {
			out = append(out, c)
		}
	}
	return out
}

// Products devuelve los productos visibles: todos para admin, los de empresas propias para external.
func Products(p Principal, list []*entity.Product) []*entity.Product {
	if p.IsAdmin() {
		return list
	}
	out := make([]*entity.Product, 0, len(list))
	for _, prod := range list {
		if p.OwnsCompany(prod.CompanyID) {
			out = append(out, prod)
		}
	}
	return out
}

// Inventories devuelve los registros de inventario visibles según la empresa del registro.
func Inventories(p Principal, list []*entity.Inventory) []*entity.Inventory {
	if p.IsAdmin() {
		return list
	}
	out := make([]*entity.Inventory, 0, len(list))
	for _, inv := range list {
		if p.OwnsCompany(inv.CompanyID) {
			out = append(out, inv)
		}
	}
	return out
}

// CanSeeCompany informa si la empresa es visible para el principal.
func CanSeeCompany(p Principal, c *entity.Company) bool {
	return p.IsAdmin() || c.UserID == p.UserID
}

// CanSeeProduct informa si el producto es visible para el principal.
func CanSeeProduct(p Principal, prod *entity.Product) bool {
	return p.IsAdmin() || p.OwnsCompany(prod.CompanyID)
}

// CanSeeInventory informa si el registro de inventario es visible para el principal.
func CanSeeInventory(p Principal, inv *entity.Inventory) bool {
	return p.IsAdmin() || p.OwnsCompany(inv.CompanyID)
}

// CanWriteCompany autoriza crear/actualizar/eliminar una empresa:
// admin, o el usuario dueño directo.
func CanWriteCompany(p Principal, c *entity.Company) bool {
	return p.IsAdmin() || c.UserID == p.UserID
}

// CanWriteProduct autoriza escribir un producto: admin, o dueño de la empresa
// del producto (propiedad transitiva Product -> Company -> User).
func CanWriteProduct(p Principal, companyID string) bool {
	return p.IsAdmin() || p.OwnsCompany(companyID)
}

// CanWriteInventory autoriza escribir un registro de inventario: admin, o dueño
// de la empresa referenciada por el registro.
func CanWriteInventory(p Principal, companyID string) bool {
	return p.IsAdmin() || p.OwnsCompany(companyID)
}
