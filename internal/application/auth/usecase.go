package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/bms-pro/internal/application/dto"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/domain/repository"
	"github.com/tu-usuario/bms-pro/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y
// restablecimiento de contraseña.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	jwtCfg     JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, tenantRepo repository.TenantRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tenantRepo: tenantRepo, jwtCfg: jwtCfg}
}

// deriveUserName arma el userName con el prefijo del email y los primeros
// 4 dígitos del teléfono: "ana@x.com" + "3104..." → "ana3104".
func deriveUserName(email, phone string) string {
	prefix := email
	if i := strings.Index(email, "@"); i >= 0 {
		prefix = email[:i]
	}
	digits := phone
	if len(digits) > 4 {
		digits = digits[:4]
	}
	return prefix + digits
}

// Register crea un usuario: deriva el userName, hashea la contraseña con
// bcrypt y persiste. accessType por defecto: executive; tenant opcional.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	accessType := in.AccessType
	if accessType == "" {
		accessType = entity.RoleExecutive
	}
	if !entity.ValidAccessType(accessType) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     in.TenantID,
		UserName:     deriveUserName(in.Email, in.PhoneNumber),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		PhoneNumber:  in.PhoneNumber,
		AccessType:   accessType,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// Login verifica email/password, emite el JWT con rol, tenant y rootpath,
// y actualiza lastLoggedIn. Devuelve también el nombre del tenant.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	var tenantName *string
	if user.TenantID != "" {
		tenant, err := uc.tenantRepo.GetByID(user.TenantID)
		if err != nil {
			return nil, err
		}
		if tenant != nil {
			tenantName = &tenant.Name
		}
	}

	token, err := jwt.Generate(
		uc.jwtCfg.Secret,
		user.ID, user.UserName, user.AccessType, user.TenantID,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	// La marca de último acceso es best-effort: un fallo aquí no aborta
	// un login ya autenticado.
	if err := uc.userRepo.TouchLastLoggedIn(user.ID); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("no se pudo actualizar lastLoggedIn")
	}
	return &dto.LoginResponse{
		Message:    "Login successful.",
		TenantName: tenantName,
		Token:      token,
	}, nil
}

// ForgotPassword restablece la contraseña verificando la confirmación.
// Devuelve ErrUserNotFound si el email no existe.
func (uc *AuthUseCase) ForgotPassword(in dto.ForgotPasswordRequest) error {
	if in.NewPassword != in.ConfirmPassword {
		return domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(user)
}

// ToUserResponse mapea la entidad a su DTO de salida (sin password).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		UserName:     u.UserName,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		PhoneNumber:  u.PhoneNumber,
		AccessType:   u.AccessType,
		TenantID:     u.TenantID,
		IsActive:     u.IsActive,
		LastLoggedIn: u.LastLoggedIn,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
