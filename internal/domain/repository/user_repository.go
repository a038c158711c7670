package repository

import "github.com/tu-usuario/bms-pro/internal/domain/entity"

// UserWithTenant usuario enriquecido con el nombre de su tenant
// (para el listado administrativo del tenantowner).
type UserWithTenant struct {
	ID         string
	Email      string
	AccessType string
	TenantName string // vacío si el usuario no tiene tenant asignado
	IsActive   bool
}

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	// TouchLastLoggedIn actualiza solo la marca de último acceso.
	TouchLastLoggedIn(id string) error
	List() ([]*entity.User, error)
	// ListWithTenants lista usuarios no-owner junto al nombre de su tenant.
	ListWithTenants() ([]*UserWithTenant, error)
	// Deactivate marca el usuario como inactivo (soft delete).
	Deactivate(id string) (bool, error)
}
