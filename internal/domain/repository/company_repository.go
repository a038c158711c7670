package repository

import "github.com/tu-usuario/bms-pro/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Todas las operaciones van acotadas por tenantID: el filtro viene del
// token, nunca del cliente.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(tenantID, id string) (*entity.Company, error)
	GetByName(tenantID, name string) (*entity.Company, error)
	Update(company *entity.Company) error
	ListByTenant(tenantID string, limit, offset int) ([]*entity.Company, error)
	// Deactivate marca la empresa como inactiva (soft delete) dentro del tenant.
	Deactivate(tenantID, id, updatedBy string) (bool, error)
}
