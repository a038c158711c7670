package usecase

import (
	"time"

	"github.com/tu-usuario/bms-pro/internal/application/auth"
	"github.com/tu-usuario/bms-pro/internal/application/dto"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/domain/repository"
)

// UserUseCase administración de usuarios: listados del tenantowner,
// consulta/actualización individual y desactivación.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios (solo tenantowner; el gate vive en el router).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

// ListWithTenants devuelve los usuarios no-owner con el nombre de su tenant
// (o nil si no tienen tenant asignado).
func (uc *UserUseCase) ListWithTenants() ([]dto.UserWithTenantResponse, error) {
	list, err := uc.repo.ListWithTenants()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserWithTenantResponse, 0, len(list))
	for _, u := range list {
		var tenantName *string
		if u.TenantName != "" {
			name := u.TenantName
			tenantName = &name
		}
		items = append(items, dto.UserWithTenantResponse{
			ID:         u.ID,
			Email:      u.Email,
			AccessType: u.AccessType,
			TenantName: tenantName,
			IsActive:   u.IsActive,
		})
	}
	return items, nil
}

// GetByID obtiene un usuario por ID (sin password).
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return auth.ToUserResponse(user), nil
}

// Update aplica actualizaciones parciales. Reasignar rol o tenant es la vía
// con la que el tenantowner administra las cuentas; ese gate vive en el handler.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		user.PhoneNumber = *in.PhoneNumber
	}
	if in.AccessType != nil {
		if !entity.ValidAccessType(*in.AccessType) {
			return nil, domain.ErrInvalidInput
		}
		user.AccessType = *in.AccessType
	}
	if in.TenantID != nil {
		user.TenantID = *in.TenantID
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete desactiva un usuario activo (soft delete, solo tenantowner).
func (uc *UserUseCase) Delete(id string) error {
	ok, err := uc.repo.Deactivate(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}
