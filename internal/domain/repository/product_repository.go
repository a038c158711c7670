package repository

import "github.com/tu-usuario/bms-pro/internal/domain/entity"

// ProductWithCompany producto enriquecido con el nombre de su empresa
// (equivalente al populate de la lista de productos).
type ProductWithCompany struct {
	entity.Product
	CompanyName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// Todas las operaciones van acotadas por tenantID tomado del token.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(tenantID, id string) (*ProductWithCompany, error)
	GetByTenantCompanyAndName(tenantID, companyID, name string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByTenant(tenantID string, limit, offset int) ([]*ProductWithCompany, error)
	// Deactivate marca el producto como inactivo (soft delete) dentro del tenant.
	Deactivate(tenantID, id, updatedBy string) (bool, error)
}
