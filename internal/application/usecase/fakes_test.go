package usecase_test

import (
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Devuelven (nil, nil) para
// registros inexistentes, igual que las implementaciones de postgres.

// ──────────────────────────────────────────────────────────────────────────────
// Company
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	items map[string]*entity.Company
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo(companies ...*entity.Company) *fakeCompanyRepo {
	r := &fakeCompanyRepo{items: make(map[string]*entity.Company)}
	for _, c := range companies {
		r.items[c.ID] = c
	}
	return r
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.items[id], nil
}

func (r *fakeCompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	for _, c := range r.items {
		if c.NIT == nit {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	r.items[c.ID] = c
	return nil
}

func (r *fakeCompanyRepo) List() ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCompanyRepo) ListByUser(userID string) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0)
	for _, c := range r.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCompanyRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Product
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	items map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{items: make(map[string]*entity.Product)}
	for _, p := range products {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.items[id], nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCompany(companyID string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.items {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventory
// ──────────────────────────────────────────────────────────────────────────────

type fakeInventoryRepo struct {
	items map[string]*entity.Inventory
}

var _ repository.InventoryRepository = (*fakeInventoryRepo)(nil)

func newFakeInventoryRepo(invs ...*entity.Inventory) *fakeInventoryRepo {
	r := &fakeInventoryRepo{items: make(map[string]*entity.Inventory)}
	for _, inv := range invs {
		r.items[inv.ID] = inv
	}
	return r
}

func (r *fakeInventoryRepo) Create(inv *entity.Inventory) error {
	r.items[inv.ID] = inv
	return nil
}

func (r *fakeInventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	return r.items[id], nil
}

func (r *fakeInventoryRepo) GetByProductAndCompany(productID, companyID string) (*entity.Inventory, error) {
	for _, inv := range r.items {
		if inv.ProductID == productID && inv.CompanyID == companyID {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *fakeInventoryRepo) Update(inv *entity.Inventory) error {
	r.items[inv.ID] = inv
	return nil
}

func (r *fakeInventoryRepo) List() ([]*entity.Inventory, error) {
	out := make([]*entity.Inventory, 0, len(r.items))
	for _, inv := range r.items {
		out = append(out, inv)
	}
	return out, nil
}

func (r *fakeInventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	out := make([]*entity.Inventory, 0)
	for _, inv := range r.items {
		if inv.ProductID == productID {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInventoryRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// User
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	items map[string]*entity.User
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{items: make(map[string]*entity.User)}
	for _, u := range users {
		r.items[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.items[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	return r.items[id], nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.items[u.ID] = u
	return nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}
