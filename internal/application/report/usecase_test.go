package report_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-api/internal/application/report"
	"github.com/tu-usuario/catalogo-api/internal/domain/access"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
	"github.com/tu-usuario/catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de persistencia (solo los métodos que el reporte consulta hacen trabajo)
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvRepo struct{ list []*entity.Inventory }

var _ repository.InventoryRepository = (*fakeInvRepo)(nil)

func (r *fakeInvRepo) Create(*entity.Inventory) error                 { return nil }
func (r *fakeInvRepo) GetByID(string) (*entity.Inventory, error)      { return nil, nil }
func (r *fakeInvRepo) GetByProductAndCompany(string, string) (*entity.Inventory, error) {
	return nil, nil
}
func (r *fakeInvRepo) Update(*entity.Inventory) error                 { return nil }
func (r *fakeInvRepo) List() ([]*entity.Inventory, error)             { return r.list, nil }
func (r *fakeInvRepo) ListByProduct(string) ([]*entity.Inventory, error) { return nil, nil }
func (r *fakeInvRepo) Delete(string) error                            { return nil }

type fakeProductRepo struct{ items map[string]*entity.Product }

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func (r *fakeProductRepo) Create(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error)    { return r.items[id], nil }
func (r *fakeProductRepo) GetByCode(string) (*entity.Product, error)     { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                  { return nil }
func (r *fakeProductRepo) List() ([]*entity.Product, error)              { return nil, nil }
func (r *fakeProductRepo) ListByCompany(string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Delete(string) error                           { return nil }

type fakeCompanyRepo struct{ items map[string]*entity.Company }

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func (r *fakeCompanyRepo) Create(*entity.Company) error               { return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.items[id], nil }
func (r *fakeCompanyRepo) GetByNIT(string) (*entity.Company, error)   { return nil, nil }
func (r *fakeCompanyRepo) Update(*entity.Company) error               { return nil }
func (r *fakeCompanyRepo) List() ([]*entity.Company, error)           { return nil, nil }
func (r *fakeCompanyRepo) ListByUser(string) ([]*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) Delete(string) error                        { return nil }

type fakeUserRepo struct{ items map[string]*entity.User }

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func (r *fakeUserRepo) Create(*entity.User) error                  { return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error)    { return r.items[id], nil }
func (r *fakeUserRepo) GetByUsername(string) (*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) GetByEmail(string) (*entity.User, error)    { return nil, nil }
func (r *fakeUserRepo) Update(*entity.User) error                  { return nil }
func (r *fakeUserRepo) List() ([]*entity.User, error)              { return nil, nil }
func (r *fakeUserRepo) Delete(string) error                        { return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de generación y envío
// ──────────────────────────────────────────────────────────────────────────────

type fakeGenerator struct {
	pdf      []byte
	err      error
	lastData *report.Data
}

func (g *fakeGenerator) GenerateInventoryPDF(_ context.Context, data *report.Data) ([]byte, error) {
	g.lastData = data
	return g.pdf, g.err
}

type fakeMailer struct {
	err      error
	sentTo   string
	sentFile string
	sentPDF  []byte
}

func (m *fakeMailer) SendReport(_ context.Context, to, filename string, pdf []byte) error {
	if m.err != nil {
		return m.err
	}
	m.sentTo = to
	m.sentFile = filename
	m.sentPDF = pdf
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

func fixture(cfg report.Config, gen *fakeGenerator, mailer *fakeMailer) *report.UseCase {
	invRepo := &fakeInvRepo{list: []*entity.Inventory{
		{ID: "i1", ProductID: "p1", CompanyID: "c1", Quantity: 5},
		{ID: "i2", ProductID: "p2", CompanyID: "c2", Quantity: 8},
	}}
	productRepo := &fakeProductRepo{items: map[string]*entity.Product{
		"p1": {ID: "p1", Code: "SKU-1", Name: "Producto Uno", CompanyID: "c1", PriceCOP: decimal.NewFromInt(40000)},
		"p2": {ID: "p2", Code: "SKU-2", Name: "Producto Dos", CompanyID: "c2", PriceCOP: decimal.NewFromInt(90000)},
	}}
	companyRepo := &fakeCompanyRepo{items: map[string]*entity.Company{
		"c1": {ID: "c1", Name: "Empresa Uno", UserID: "u1"},
		"c2": {ID: "c2", Name: "Empresa Dos", UserID: "u2"},
	}}
	userRepo := &fakeUserRepo{items: map[string]*entity.User{
		"u1": {ID: "u1", Username: "maria"},
	}}
	return report.NewUseCase(invRepo, productRepo, companyRepo, userRepo, gen, mailer, cfg)
}

var (
	u1Principal    = access.Principal{UserID: "u1", Role: access.RoleExternal, CompanyIDs: []string{"c1"}}
	adminPrincipal = access.Principal{UserID: "su", Role: access.RoleAdmin}
)

// ──────────────────────────────────────────────────────────────────────────────
// Modos de entrega
// ──────────────────────────────────────────────────────────────────────────────

// Sin destino: los bytes del PDF vuelven en el resultado para la respuesta HTTP.
func TestGenerateInventoryReport_SinEmailDevuelveBytes(t *testing.T) {
	gen := &fakeGenerator{pdf: []byte("%PDF-fake")}
	mailer := &fakeMailer{}
	uc := fixture(report.Config{}, gen, mailer)

	res, err := uc.GenerateInventoryReport(context.Background(), adminPrincipal, "")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), res.PDF)
	assert.Regexp(t, `^inventory_report_\d{8}_\d{6}\.pdf$`, res.Filename)
	assert.False(t, res.Sent)
	assert.False(t, res.DevMode)
	assert.Empty(t, mailer.sentTo, "sin email no se despacha nada")
}

// Con email en debug: el PDF se guarda en disco y el envío se simula.
func TestGenerateInventoryReport_DebugSimulaEnvio(t *testing.T) {
	gen := &fakeGenerator{pdf: []byte("%PDF-fake")}
	mailer := &fakeMailer{}
	devDir := t.TempDir()
	uc := fixture(report.Config{Debug: true, DevDir: devDir}, gen, mailer)

	res, err := uc.GenerateInventoryReport(context.Background(), adminPrincipal, "dest@example.com")
	require.NoError(t, err)
	assert.True(t, res.DevMode)
	assert.False(t, res.Sent)
	assert.Equal(t, filepath.Join(devDir, res.Filename), res.PDFPath)
	assert.Empty(t, mailer.sentTo, "en debug el correo no sale")

	contenido, err := os.ReadFile(res.PDFPath)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), contenido)
}

// Con email en producción: el reporte se despacha por el mailer.
func TestGenerateInventoryReport_ProduccionEnvia(t *testing.T) {
	gen := &fakeGenerator{pdf: []byte("%PDF-fake")}
	mailer := &fakeMailer{}
	uc := fixture(report.Config{}, gen, mailer)

	res, err := uc.GenerateInventoryReport(context.Background(), adminPrincipal, "dest@example.com")
	require.NoError(t, err)
	assert.True(t, res.Sent)
	assert.Nil(t, res.PDF, "con destino el PDF no viaja en la respuesta")
	assert.Equal(t, "dest@example.com", mailer.sentTo)
	assert.Equal(t, res.Filename, mailer.sentFile)
	assert.Equal(t, []byte("%PDF-fake"), mailer.sentPDF)
}

// ──────────────────────────────────────────────────────────────────────────────
// Errores distintos por etapa
// ──────────────────────────────────────────────────────────────────────────────

func TestGenerateInventoryReport_FalloDeRender(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("maroto explotó")}
	uc := fixture(report.Config{}, gen, &fakeMailer{})

	_, err := uc.GenerateInventoryReport(context.Background(), adminPrincipal, "")
	assert.ErrorIs(t, err, report.ErrGeneratePDF)
	assert.NotErrorIs(t, err, report.ErrSendEmail)
}

func TestGenerateInventoryReport_FalloDeEnvio(t *testing.T) {
	gen := &fakeGenerator{pdf: []byte("%PDF-fake")}
	mailer := &fakeMailer{err: errors.New("SMTP caído")}
	uc := fixture(report.Config{}, gen, mailer)

	_, err := uc.GenerateInventoryReport(context.Background(), adminPrincipal, "dest@example.com")
	assert.ErrorIs(t, err, report.ErrSendEmail)
	assert.NotErrorIs(t, err, report.ErrGeneratePDF)
}

// ──────────────────────────────────────────────────────────────────────────────
// Contenido de la instantánea
// ──────────────────────────────────────────────────────────────────────────────

// El reporte respeta el alcance: un external solo ve sus registros.
func TestGenerateInventoryReport_InstantaneaConAlcance(t *testing.T) {
	gen := &fakeGenerator{pdf: []byte("%PDF-fake")}
	uc := fixture(report.Config{}, gen, &fakeMailer{})

	_, err := uc.GenerateInventoryReport(context.Background(), u1Principal, "")
	require.NoError(t, err)

	require.NotNil(t, gen.lastData)
	require.Len(t, gen.lastData.Rows, 1)
	row := gen.lastData.Rows[0]
	assert.Equal(t, "SKU-1", row.ProductCode)
	assert.Equal(t, "Empresa Uno", row.CompanyName)
	assert.Equal(t, 5, row.Quantity)
	assert.Equal(t, "maria", gen.lastData.RequestedBy, "el solicitante es el username")
}

func TestGenerateInventoryReport_AdminVeTodo(t *testing.T) {
	gen := &fakeGenerator{pdf: []byte("%PDF-fake")}
	uc := fixture(report.Config{}, gen, &fakeMailer{})

	_, err := uc.GenerateInventoryReport(context.Background(), adminPrincipal, "")
	require.NoError(t, err)
	assert.Len(t, gen.lastData.Rows, 2)
	assert.Equal(t, "su", gen.lastData.RequestedBy, "sin usuario en DB se usa el ID")
}
