package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
// Toda consulta lleva tenant_id en el WHERE: el aislamiento multi-tenant se
// materializa aquí con el valor que el middleware sacó del token.
type CompanyRepo struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, tenant_id, name, is_active, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.TenantID, company.Name, company.IsActive,
		company.CreatedBy, company.UpdatedBy, company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID dentro del tenant.
func (r *CompanyRepo) GetByID(tenantID, id string) (*entity.Company, error) {
	query := `
		SELECT id, tenant_id, name, is_active, COALESCE(created_by::text, ''), COALESCE(updated_by::text, ''), created_at, updated_at
		FROM companies WHERE id = $1 AND tenant_id = $2`
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, id, tenantID).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.IsActive, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByName obtiene una empresa por nombre dentro del tenant.
func (r *CompanyRepo) GetByName(tenantID, name string) (*entity.Company, error) {
	query := `
		SELECT id, tenant_id, name, is_active, COALESCE(created_by::text, ''), COALESCE(updated_by::text, ''), created_at, updated_at
		FROM companies WHERE tenant_id = $1 AND name = $2`
	var c entity.Company
	err := r.pool.QueryRow(context.Background(), query, tenantID, name).Scan(
		&c.ID, &c.TenantID, &c.Name, &c.IsActive, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by name: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente (el WHERE mantiene el tenant).
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET name = $3, is_active = $4, updated_by = NULLIF($5, ''), updated_at = $6
		WHERE id = $1 AND tenant_id = $2`
	_, err := r.pool.Exec(context.Background(), query,
		company.ID, company.TenantID, company.Name, company.IsActive,
		company.UpdatedBy, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// ListByTenant lista empresas del tenant con paginación.
func (r *CompanyRepo) ListByTenant(tenantID string, limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, tenant_id, name, is_active, COALESCE(created_by::text, ''), COALESCE(updated_by::text, ''), created_at, updated_at
		FROM companies WHERE tenant_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.IsActive, &c.CreatedBy, &c.UpdatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Deactivate marca la empresa como inactiva dentro del tenant (soft delete).
func (r *CompanyRepo) Deactivate(tenantID, id, updatedBy string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE companies SET is_active = false, updated_by = NULLIF($3, ''), updated_at = now()
		 WHERE id = $1 AND tenant_id = $2 AND is_active = true`,
		id, tenantID, updatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("deactivate company: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
