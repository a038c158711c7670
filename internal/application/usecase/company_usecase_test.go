package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/bms-pro/internal/application/dto"
	"github.com/tu-usuario/bms-pro/internal/application/usecase"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake in-memory de CompanyRepository. Registra el tenantID que recibe cada
// llamada para poder asertar que el filtro siempre es el del token.
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies    []*entity.Company
	gotTenantIDs []string
}

func (f *fakeCompanyRepo) Create(c *entity.Company) error {
	f.companies = append(f.companies, c)
	return nil
}

func (f *fakeCompanyRepo) GetByID(tenantID, id string) (*entity.Company, error) {
	f.gotTenantIDs = append(f.gotTenantIDs, tenantID)
	for _, c := range f.companies {
		if c.ID == id && c.TenantID == tenantID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) GetByName(tenantID, name string) (*entity.Company, error) {
	f.gotTenantIDs = append(f.gotTenantIDs, tenantID)
	for _, c := range f.companies {
		if c.Name == name && c.TenantID == tenantID {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCompanyRepo) Update(c *entity.Company) error { return nil }

func (f *fakeCompanyRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Company, error) {
	f.gotTenantIDs = append(f.gotTenantIDs, tenantID)
	var out []*entity.Company
	for _, c := range f.companies {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCompanyRepo) Deactivate(tenantID, id, updatedBy string) (bool, error) {
	f.gotTenantIDs = append(f.gotTenantIDs, tenantID)
	for _, c := range f.companies {
		if c.ID == id && c.TenantID == tenantID && c.IsActive {
			c.IsActive = false
			return true, nil
		}
	}
	return false, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento multi-tenant: el filtro emitido siempre es el tenant del token,
// nunca uno que venga del cliente (el request ni siquiera tiene ese campo).
// ──────────────────────────────────────────────────────────────────────────────

func TestCompanyCreate_AsignaTenantDelToken(t *testing.T) {
	repo := &fakeCompanyRepo{}
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.Create("t-1", "user-1", dto.CreateCompanyRequest{CompanyName: "Acme Sur"})
	require.NoError(t, err)

	assert.Equal(t, "t-1", out.TenantID)
	require.Len(t, repo.companies, 1)
	assert.Equal(t, "t-1", repo.companies[0].TenantID,
		"la fila persistida debe llevar el tenant del token")
	assert.Equal(t, "user-1", repo.companies[0].CreatedBy)
	for _, got := range repo.gotTenantIDs {
		assert.Equal(t, "t-1", got, "toda consulta debe filtrar por el tenant del token")
	}
}

func TestCompanyGetByID_NoVeOtroTenant(t *testing.T) {
	repo := &fakeCompanyRepo{companies: []*entity.Company{
		{ID: "c-ajena", TenantID: "t-2", Name: "Ajena S.A.", IsActive: true},
	}}
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.GetByID("t-1", "c-ajena")
	require.NoError(t, err)
	assert.Nil(t, out, "una empresa de otro tenant debe ser invisible")
	assert.Equal(t, []string{"t-1"}, repo.gotTenantIDs)
}

func TestCompanyList_FiltraPorTenantDelToken(t *testing.T) {
	repo := &fakeCompanyRepo{companies: []*entity.Company{
		{ID: "c-1", TenantID: "t-1", Name: "Propia", IsActive: true},
		{ID: "c-2", TenantID: "t-2", Name: "Ajena", IsActive: true},
	}}
	uc := usecase.NewCompanyUseCase(repo)

	out, err := uc.List("t-1", 20, 0)
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "Propia", out.Items[0].CompanyName)
	assert.Equal(t, []string{"t-1"}, repo.gotTenantIDs)
}

func TestCompanyDelete_OtroTenantEsNotFound(t *testing.T) {
	repo := &fakeCompanyRepo{companies: []*entity.Company{
		{ID: "c-ajena", TenantID: "t-2", Name: "Ajena S.A.", IsActive: true},
	}}
	uc := usecase.NewCompanyUseCase(repo)

	err := uc.Delete("t-1", "user-1", "c-ajena")
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"borrar una empresa de otro tenant debe comportarse como inexistente")
	assert.True(t, repo.companies[0].IsActive, "la empresa ajena no debe tocarse")
}
