package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bms-pro/internal/application/dto"
	"github.com/tu-usuario/bms-pro/internal/application/usecase"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/domain/pricing"
	"github.com/tu-usuario/bms-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory de ProductRepository. Igual que el de empresas, registra el
// tenantID de cada llamada.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products     []*repository.ProductWithCompany
	created      []*entity.Product
	gotTenantIDs []string
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakeProductRepo) GetByID(tenantID, id string) (*repository.ProductWithCompany, error) {
	f.gotTenantIDs = append(f.gotTenantIDs, tenantID)
	for _, p := range f.products {
		if p.ID == id && p.TenantID == tenantID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByTenantCompanyAndName(tenantID, companyID, name string) (*entity.Product, error) {
	f.gotTenantIDs = append(f.gotTenantIDs, tenantID)
	for _, p := range f.products {
		if p.TenantID == tenantID && p.CompanyID == companyID && p.Name == name {
			prod := p.Product
			return &prod, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Update(p *entity.Product) error { return nil }

func (f *fakeProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*repository.ProductWithCompany, error) {
	f.gotTenantIDs = append(f.gotTenantIDs, tenantID)
	var out []*repository.ProductWithCompany
	for _, p := range f.products {
		if p.TenantID == tenantID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Deactivate(tenantID, id, updatedBy string) (bool, error) {
	f.gotTenantIDs = append(f.gotTenantIDs, tenantID)
	for _, p := range f.products {
		if p.ID == id && p.TenantID == tenantID && p.IsActive {
			p.IsActive = false
			return true, nil
		}
	}
	return false, nil
}

func validRule() pricing.Rule {
	return pricing.Rule{
		{Category: pricing.CategoryRetail, Value: "10"},
		{Category: pricing.CategoryWholesale, Value: "15"},
	}
}

func createProductRequest() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		ProductName:    "Jabón líquido",
		CompanyID:      "c-1",
		MRP:            decimal.NewFromInt(100),
		EntityType:     "percentage",
		ProductDetails: validRule(),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento multi-tenant en productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_AsignaTenantDelToken(t *testing.T) {
	companies := &fakeCompanyRepo{companies: []*entity.Company{
		{ID: "c-1", TenantID: "t-1", Name: "Acme Sur", IsActive: true},
	}}
	products := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(products, companies)

	out, err := uc.Create("t-1", "user-1", createProductRequest())
	require.NoError(t, err)

	assert.Equal(t, "t-1", out.TenantID)
	require.Len(t, products.created, 1)
	assert.Equal(t, "t-1", products.created[0].TenantID,
		"la fila persistida debe llevar el tenant del token")
	for _, got := range append(products.gotTenantIDs, companies.gotTenantIDs...) {
		assert.Equal(t, "t-1", got, "toda consulta debe filtrar por el tenant del token")
	}
}

// La empresa referida existe, pero bajo otro tenant: para el caller es como
// si no existiera.
func TestProductCreate_EmpresaDeOtroTenantRechazada(t *testing.T) {
	companies := &fakeCompanyRepo{companies: []*entity.Company{
		{ID: "c-1", TenantID: "t-2", Name: "Ajena S.A.", IsActive: true},
	}}
	products := &fakeProductRepo{}
	uc := usecase.NewProductUseCase(products, companies)

	_, err := uc.Create("t-1", "user-1", createProductRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, products.created, "no debe persistirse nada")
}

func TestProductGetByID_NoVeOtroTenant(t *testing.T) {
	products := &fakeProductRepo{products: []*repository.ProductWithCompany{
		{Product: entity.Product{ID: "p-ajeno", TenantID: "t-2", IsActive: true}, CompanyName: "Ajena"},
	}}
	uc := usecase.NewProductUseCase(products, &fakeCompanyRepo{})

	out, err := uc.GetByID("t-1", "p-ajeno")
	require.NoError(t, err)
	assert.Nil(t, out, "un producto de otro tenant debe ser invisible")
	assert.Equal(t, []string{"t-1"}, products.gotTenantIDs)
}

func TestProductDelete_OtroTenantEsNotFound(t *testing.T) {
	products := &fakeProductRepo{products: []*repository.ProductWithCompany{
		{Product: entity.Product{ID: "p-ajeno", TenantID: "t-2", IsActive: true}},
	}}
	uc := usecase.NewProductUseCase(products, &fakeCompanyRepo{})

	err := uc.Delete("t-1", "user-1", "p-ajeno")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, products.products[0].IsActive)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación de la regla de precios
// ──────────────────────────────────────────────────────────────────────────────

// Una entrada estándar sin valor es entrada inválida del cliente, nunca un
// error interno.
func TestProductCreate_ReglaSinValorEsInvalidInput(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeCompanyRepo{})

	in := createProductRequest()
	in.ProductDetails = pricing.Rule{{Category: pricing.CategoryRetail}}

	_, err := uc.Create("t-1", "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, pricing.ErrMissingValue, "la causa concreta debe conservarse")
}

func TestProductCreate_CategoriaDesconocidaEsInvalidInput(t *testing.T) {
	uc := usecase.NewProductUseCase(&fakeProductRepo{}, &fakeCompanyRepo{})

	in := createProductRequest()
	in.ProductDetails = pricing.Rule{{Category: "mayoreo", Value: "10"}}

	_, err := uc.Create("t-1", "user-1", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, pricing.ErrInvalidCategory)
}

func TestProductUpdate_ReglaInvalidaEsInvalidInput(t *testing.T) {
	products := &fakeProductRepo{products: []*repository.ProductWithCompany{
		{Product: entity.Product{
			ID: "p-1", TenantID: "t-1", CompanyID: "c-1", Name: "Jabón",
			EntityType: pricing.EntityPercentage, Details: validRule(), IsActive: true,
		}, CompanyName: "Acme Sur"},
	}}
	uc := usecase.NewProductUseCase(products, &fakeCompanyRepo{})

	_, err := uc.Update("t-1", "user-1", "p-1", dto.UpdateProductRequest{
		ProductDetails: pricing.Rule{{Category: pricing.CategorySpecialCustomer}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, pricing.ErrEmptySpecialCustomers)
}
