package repository

import "github.com/tu-usuario/bms-pro/internal/domain/entity"

// TenantRepository define el puerto de persistencia para Tenant (DIP).
// La implementación vive en infrastructure.
type TenantRepository interface {
	Create(tenant *entity.Tenant) error
	GetByID(id string) (*entity.Tenant, error)
	GetByName(name string) (*entity.Tenant, error)
	Update(tenant *entity.Tenant) error
	List() ([]*entity.Tenant, error)
	// Deactivate marca el tenant como inactivo (soft delete).
	// Retorna false si no existe un tenant activo con ese id.
	Deactivate(id string) (bool, error)
}
