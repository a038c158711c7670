package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/bms-pro/internal/application/auth"
	"github.com/tu-usuario/bms-pro/internal/application/dto"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes in-memory
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail  map[string]*entity.User
	touched  []string
	touchErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) TouchLastLoggedIn(id string) error {
	if f.touchErr != nil {
		return f.touchErr
	}
	f.touched = append(f.touched, id)
	return nil
}

func (f *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }

func (f *fakeUserRepo) ListWithTenants() ([]*repository.UserWithTenant, error) { return nil, nil }

func (f *fakeUserRepo) Deactivate(id string) (bool, error) { return false, nil }

type fakeTenantRepo struct {
	byID map[string]*entity.Tenant
}

func (f *fakeTenantRepo) Create(t *entity.Tenant) error                  { return nil }
func (f *fakeTenantRepo) GetByID(id string) (*entity.Tenant, error)      { return f.byID[id], nil }
func (f *fakeTenantRepo) GetByName(name string) (*entity.Tenant, error)  { return nil, nil }
func (f *fakeTenantRepo) Update(t *entity.Tenant) error                  { return nil }
func (f *fakeTenantRepo) List() ([]*entity.Tenant, error)                { return nil, nil }
func (f *fakeTenantRepo) Deactivate(id string) (bool, error)             { return false, nil }

func buildUseCase(users *fakeUserRepo, tenants *fakeTenantRepo) *auth.AuthUseCase {
	if tenants == nil {
		tenants = &fakeTenantRepo{byID: make(map[string]*entity.Tenant)}
	}
	return auth.NewAuthUseCase(users, tenants, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "bms-pro-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// El userName se deriva del prefijo del email + 4 dígitos del teléfono.
func TestRegister_DerivaUserName(t *testing.T) {
	users := newFakeUserRepo()
	uc := buildUseCase(users, nil)

	out, err := uc.Register(dto.RegisterRequest{
		Email:       "ana@example.com",
		Password:    "supersecreta",
		PhoneNumber: "31045556677",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana3104", out.UserName)
	assert.Equal(t, entity.RoleExecutive, out.AccessType,
		"sin accessType explícito el rol por defecto es executive")
	assert.True(t, out.IsActive)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	users := newFakeUserRepo()
	uc := buildUseCase(users, nil)

	_, err := uc.Register(dto.RegisterRequest{
		Email: "ana@example.com", Password: "supersecreta", PhoneNumber: "3104555",
	})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{
		Email: "ana@example.com", Password: "otra-clave", PhoneNumber: "3200111",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc := buildUseCase(newFakeUserRepo(), nil)

	_, err := uc.Register(dto.RegisterRequest{
		Email: "ana@example.com", Password: "supersecreta", PhoneNumber: "3104555",
		AccessType: "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func seedUser(t *testing.T, users *fakeUserRepo, email, password, tenantID string, active bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{
		ID:           "user-" + email,
		TenantID:     tenantID,
		UserName:     "u" + email,
		Email:        email,
		PasswordHash: string(hash),
		AccessType:   entity.RoleAdmin,
		IsActive:     active,
	}
	users.byEmail[email] = u
	return u
}

func TestLogin_DevuelveTokenYNombreDeTenant(t *testing.T) {
	users := newFakeUserRepo()
	tenants := &fakeTenantRepo{byID: map[string]*entity.Tenant{
		"t-1": {ID: "t-1", Name: "Acme Distribuciones", IsActive: true},
	}}
	u := seedUser(t, users, "ana@example.com", "supersecreta", "t-1", true)
	uc := buildUseCase(users, tenants)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "supersecreta"})
	require.NoError(t, err)

	assert.Equal(t, "Login successful.", out.Message)
	assert.NotEmpty(t, out.Token)
	require.NotNil(t, out.TenantName)
	assert.Equal(t, "Acme Distribuciones", *out.TenantName)
	assert.Equal(t, []string{u.ID}, users.touched,
		"el login debe tocar lastLoggedIn exactamente una vez")
}

// La marca de último acceso es best-effort: si falla, el login autenticado
// sale bien igual.
func TestLogin_FalloEnLastLoggedInNoAbortaElLogin(t *testing.T) {
	users := newFakeUserRepo()
	users.touchErr = errors.New("conexión perdida")
	seedUser(t, users, "ana@example.com", "supersecreta", "", true)
	uc := buildUseCase(users, nil)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "supersecreta"})
	require.NoError(t, err, "un fallo al marcar lastLoggedIn no debe abortar el login")
	assert.NotEmpty(t, out.Token)
}

// Email inexistente y password incorrecta producen el mismo error.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "ana@example.com", "supersecreta", "", true)
	uc := buildUseCase(users, nil)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "ana@example.com", "supersecreta", "", false)
	uc := buildUseCase(users, nil)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "supersecreta"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// ForgotPassword
// ──────────────────────────────────────────────────────────────────────────────

func TestForgotPassword_ActualizaHash(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "ana@example.com", "vieja-clave", "", true)
	uc := buildUseCase(users, nil)

	err := uc.ForgotPassword(dto.ForgotPasswordRequest{
		Email: "ana@example.com", NewPassword: "clave-nueva", ConfirmPassword: "clave-nueva",
	})
	require.NoError(t, err)

	// La nueva contraseña debe funcionar en el login.
	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "clave-nueva"})
	assert.NoError(t, err)
}

func TestForgotPassword_ConfirmacionNoCoincide(t *testing.T) {
	uc := buildUseCase(newFakeUserRepo(), nil)
	err := uc.ForgotPassword(dto.ForgotPasswordRequest{
		Email: "ana@example.com", NewPassword: "una", ConfirmPassword: "otra",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestForgotPassword_UsuarioNoExiste(t *testing.T) {
	uc := buildUseCase(newFakeUserRepo(), nil)
	err := uc.ForgotPassword(dto.ForgotPasswordRequest{
		Email: "nadie@example.com", NewPassword: "clave-nueva", ConfirmPassword: "clave-nueva",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
