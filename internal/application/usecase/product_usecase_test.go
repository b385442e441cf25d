package usecase_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/catalogo-api/internal/application/dto"
	"github.com/tu-usuario/catalogo-api/internal/application/usecase"
	"github.com/tu-usuario/catalogo-api/internal/domain"
	"github.com/tu-usuario/catalogo-api/internal/domain/entity"
)

func productFixture() (*usecase.ProductUseCase, *fakeProductRepo, *fakeInventoryRepo) {
	companies := newFakeCompanyRepo(
		&entity.Company{ID: "c1", NIT: "900111111-1", Name: "Empresa Uno", UserID: "u1"},
		&entity.Company{ID: "c2", NIT: "900222222-2", Name: "Empresa Dos", UserID: "u2"},
	)
	products := newFakeProductRepo(
		&entity.Product{ID: "p1", Code: "SKU-1", Name: "Producto Uno", CompanyID: "c1"},
		&entity.Product{ID: "p2", Code: "SKU-2", Name: "Producto Dos", CompanyID: "c2"},
	)
	inventories := newFakeInventoryRepo()
	return usecase.NewProductUseCase(products, companies, inventories), products, inventories
}

func precio(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_OK(t *testing.T) {
	uc, _, _ := productFixture()

	out, err := uc.Create(externalPrincipal("u1", "c1"), dto.CreateProductRequest{
		Code: "SKU-3", Name: "Nuevo", CompanyID: "c1",
		PriceUSD: precio(10), PriceEUR: precio(9), PriceCOP: precio(40000),
	})
	require.NoError(t, err)
	assert.Equal(t, "c1", out.CompanyID)
	assert.True(t, out.PriceCOP.Equal(precio(40000)))
}

func TestProductCreate_EmpresaInexistente(t *testing.T) {
	uc, _, _ := productFixture()

	_, err := uc.Create(adminPrincipal, dto.CreateProductRequest{Code: "X", Name: "X", CompanyID: "nope"})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr), "FK inexistente es error de validación")
	assert.Equal(t, "company_id", vErr.Field)
}

func TestProductCreate_EmpresaAjenaProhibida(t *testing.T) {
	uc, _, _ := productFixture()

	_, err := uc.Create(externalPrincipal("u1", "c1"), dto.CreateProductRequest{
		Code: "X", Name: "X", CompanyID: "c2",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc, _, _ := productFixture()

	_, err := uc.Create(adminPrincipal, dto.CreateProductRequest{
		Code: "X", Name: "X", CompanyID: "c1",
		PriceUSD: precio(10), PriceEUR: precio(-1), PriceCOP: precio(100),
	})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "prices", vErr.Field, "un precio negativo invalida el conjunto")
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc, _, _ := productFixture()

	_, err := uc.Create(adminPrincipal, dto.CreateProductRequest{Code: "SKU-1", Name: "Clon", CompanyID: "c1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Lectura con alcance
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_AlcancePorRol(t *testing.T) {
	uc, _, _ := productFixture()

	out, err := uc.List(externalPrincipal("u2", "c2"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ID)

	out, err = uc.List(adminPrincipal)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestProductGetByID_AjenoEsNotFound(t *testing.T) {
	uc, _, _ := productFixture()

	_, err := uc.GetByID(externalPrincipal("u1", "c1"), "p2")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_ReasignacionExigePermisoEnAmbas(t *testing.T) {
	uc, _, _ := productFixture()

	// U1 puede escribir p1 pero no moverlo a la empresa de U2.
	nueva := "c2"
	_, err := uc.Update(externalPrincipal("u1", "c1"), "p1", dto.UpdateProductRequest{CompanyID: &nueva})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Admin sí puede reasignar.
	out, err := uc.Update(adminPrincipal, "p1", dto.UpdateProductRequest{CompanyID: &nueva})
	require.NoError(t, err)
	assert.Equal(t, "c2", out.CompanyID)
}

func TestProductUpdate_RevalidaPreciosCombinados(t *testing.T) {
	uc, repo, _ := productFixture()
	repo.items["p1"].PriceUSD = precio(10)

	// El precio nuevo negativo invalida aunque los demás no cambien.
	neg := precio(-5)
	_, err := uc.Update(adminPrincipal, "p1", dto.UpdateProductRequest{PriceCOP: &neg})
	var vErr *domain.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "prices", vErr.Field)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetInventory
// ──────────────────────────────────────────────────────────────────────────────

func TestProductGetInventory_EntradasConNombreDeEmpresa(t *testing.T) {
	uc, _, invRepo := productFixture()
	invRepo.Create(&entity.Inventory{ID: "i1", ProductID: "p1", CompanyID: "c1", Quantity: 7})

	out, err := uc.GetInventory(externalPrincipal("u1", "c1"), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", out.Product.ID)
	require.Len(t, out.Inventory, 1)
	assert.Equal(t, "Empresa Uno", out.Inventory[0].Company)
	assert.Equal(t, 7, out.Inventory[0].Quantity)
}

func TestProductGetInventory_SinRegistrosDevuelveListaVacia(t *testing.T) {
	uc, _, _ := productFixture()

	out, err := uc.GetInventory(adminPrincipal, "p1")
	require.NoError(t, err)
	assert.Empty(t, out.Inventory)
}
