package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/catalogo-api/internal/application/auth"
	"github.com/tu-usuario/catalogo-api/internal/application/ports"
	"github.com/tu-usuario/catalogo-api/internal/application/report"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
	apphttp "github.com/tu-usuario/catalogo-api/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/catalogo-api/pkg/jwt"
)

// Fakes en memoria de los puertos de persistencia, para levantar la API
// completa sin base de datos.

type memUserRepo struct{ items map[string]*entity.User }

var _ repository.UserRepository = (*memUserRepo)(nil)

func (r *memUserRepo) Create(u *entity.User) error { r.items[u.ID] = u; return nil }
func (r *memUserRepo) GetByID(id string) (*entity.User, error) { return r.items[id], nil }
func (r *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.items {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *memUserRepo) Update(u *entity.User) error { r.items[u.ID] = u; return nil }
func (r *memUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(r.items))
	for _, u := range r.items {
		out = append(out, u)
	}
	return out, nil
}
func (r *memUserRepo) Delete(id string) error { delete(r.items, id); return nil }

type memCompanyRepo struct{ items map[string]*entity.Company }

var _ repository.CompanyRepository = (*memCompanyRepo)(nil)

func (r *memCompanyRepo) Create(c *entity.Company) error { r.items[c.ID] = c; return nil }
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.items[id], nil }
func (r *memCompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	for _, c := range r.items {
		if c.NIT == nit {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCompanyRepo) Update(c *entity.Company) error { r.items[c.ID] = c; return nil }
func (r *memCompanyRepo) List() ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	return out, nil
}
func (r *memCompanyRepo) ListByUser(userID string) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0)
	for _, c := range r.items {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (r *memCompanyRepo) Delete(id string) error { delete(r.items, id); return nil }

type memProductRepo struct{ items map[string]*entity.Product }

var _ repository.ProductRepository = (*memProductRepo)(nil)

func (r *memProductRepo) Create(p *entity.Product) error { r.items[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) { return r.items[id], nil }
func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.items[p.ID] = p; return nil }
func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}
func (r *memProductRepo) ListByCompany(companyID string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0)
	for _, p := range r.items {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.items, id); return nil }

type memInventoryRepo struct{ items map[string]*entity.Inventory }

var _ repository.InventoryRepository = (*memInventoryRepo)(nil)

func (r *memInventoryRepo) Create(inv *entity.Inventory) error { r.items[inv.ID] = inv; return nil }
func (r *memInventoryRepo) GetByID(id string) (*entity.Inventory, error) { return r.items[id], nil }
func (r *memInventoryRepo) GetByProductAndCompany(productID, companyID string) (*entity.Inventory, error) {
	for _, inv := range r.items {
		if inv.ProductID == productID && inv.CompanyID == companyID {
			return inv, nil
		}
	}
	return nil, nil
}
func (r *memInventoryRepo) Update(inv *entity.Inventory) error { r.items[inv.ID] = inv; return nil }
func (r *memInventoryRepo) List() ([]*entity.Inventory, error) {
	out := make([]*entity.Inventory, 0, len(r.items))
	for _, inv := range r.items {
		out = append(out, inv)
	}
	return out, nil
}
func (r *memInventoryRepo) ListByProduct(productID string) ([]*entity.Inventory, error) {
	out := make([]*entity.Inventory, 0)
	for _, inv := range r.items {
		if inv.ProductID == productID {
			out = append(out, inv)
		}
	}
	return out, nil
}
func (r *memInventoryRepo) Delete(id string) error { delete(r.items, id); return nil }

// fakeLLM implementa el puerto de completado con una respuesta fija o un error.
type fakeLLM struct {
	text string
	err  error
}

var _ ports.CompletionService = (*fakeLLM)(nil)

func (f *fakeLLM) RecommendProducts(context.Context, string) (string, error) {
	return f.text, f.err
}

// fakePDFGenerator y fakeReportMailer para el reporte de inventario.
type fakePDFGenerator struct{ pdf []byte }

func (g *fakePDFGenerator) GenerateInventoryPDF(context.Context, *report.Data) ([]byte, error) {
	return g.pdf, nil
}

type fakeReportMailer struct{ sentTo string }

func (m *fakeReportMailer) SendReport(_ context.Context, to, _ string, _ []byte) error {
	m.sentTo = to
	return nil
}

// buildAPIApp levanta la API completa sobre fakes en memoria. Datos sembrados:
// U1 (external, dueño de C1 con P1/I1), U2 (external, dueño de C2 con P2/I2)
// y un admin. La contraseña de todos es testPassword.
func buildAPIApp(t *testing.T, llm ports.CompletionService) *fiber.App {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()

	userRepo := &memUserRepo{items: map[string]*entity.User{
		"u1": {ID: "u1", Username: "maria", Email: "maria@example.com", PasswordHash: string(hash), Role: "external", IsActive: true, CreatedAt: now, UpdatedAt: now},
		"u2": {ID: "u2", Username: "carlos", Email: "carlos@example.com", PasswordHash: string(hash), Role: "external", IsActive: true, CreatedAt: now, UpdatedAt: now},
		"su": {ID: "su", Username: "root", Email: "root@example.com", PasswordHash: string(hash), Role: "admin", IsActive: true, CreatedAt: now, UpdatedAt: now},
	}}
	companyRepo := &memCompanyRepo{items: map[string]*entity.Company{
		"c1": {ID: "c1", NIT: "900111111-1", Name: "Empresa Uno", UserID: "u1", CreatedAt: now, UpdatedAt: now},
		"c2": {ID: "c2", NIT: "900222222-2", Name: "Empresa Dos", UserID: "u2", CreatedAt: now, UpdatedAt: now},
	}}
	productRepo := &memProductRepo{items: map[string]*entity.Product{
		"p1": {ID: "p1", Code: "SKU-1", Name: "Producto Uno", CompanyID: "c1", CreatedAt: now, UpdatedAt: now},
		"p2": {ID: "p2", Code: "SKU-2", Name: "Producto Dos", CompanyID: "c2", CreatedAt: now, UpdatedAt: now},
	}}
	inventoryRepo := &memInventoryRepo{items: map[string]*entity.Inventory{
		"i1": {ID: "i1", ProductID: "p1", CompanyID: "c1", Quantity: 5, CreatedAt: now, UpdatedAt: now},
		"i2": {ID: "i2", ProductID: "p2", CompanyID: "c2", Quantity: 50, CreatedAt: now, UpdatedAt: now},
	}}

	principals := usecase.NewPrincipalService(companyRepo)
	reportUC := report.NewUseCase(
		inventoryRepo, productRepo, companyRepo, userRepo,
		&fakePDFGenerator{pdf: []byte("%PDF-fake")}, &fakeReportMailer{},
		report.Config{},
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(userRepo, auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, RefreshMinutes: 1440, Issuer: testIssuer,
		}),
		UserUC:           usecase.NewUserUseCase(userRepo),
		CompanyUC:        usecase.NewCompanyUseCase(companyRepo, productRepo),
		ProductUC:        usecase.NewProductUseCase(productRepo, companyRepo, inventoryRepo),
		InventoryUC:      usecase.NewInventoryUseCase(inventoryRepo, productRepo, companyRepo),
		RecommendationUC: usecase.NewRecommendationUseCase(llm),
		ReportUC:         reportUC,
		Principals:       principals,
		JWTSecret:        testJWTSecret,
	})
	return app
}

// tokenFor genera el header Authorization para un usuario sembrado.
func tokenFor(t *testing.T, userID, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

const testPassword = "correcthorsebattery"
