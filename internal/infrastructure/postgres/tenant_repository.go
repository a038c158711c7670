package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/domain/repository"
)

// Asegura que TenantRepo implementa repository.TenantRepository.
var _ repository.TenantRepository = (*TenantRepo)(nil)

// TenantRepo implementación del puerto TenantRepository sobre PostgreSQL.
type TenantRepo struct {
	pool *pgxpool.Pool
}

// NewTenantRepository construye el adaptador de persistencia para tenants.
func NewTenantRepository(pool *pgxpool.Pool) *TenantRepo {
	return &TenantRepo{pool: pool}
}

// Create persiste un nuevo tenant.
func (r *TenantRepo) Create(tenant *entity.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.IsActive, tenant.CreatedAt, tenant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert tenant: %w", err)
	}
	return nil
}

// GetByID obtiene un tenant por ID.
func (r *TenantRepo) GetByID(id string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM tenants WHERE id = $1`
	var t entity.Tenant
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.Name, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	return &t, nil
}

// GetByName obtiene un tenant por nombre (único a nivel plataforma).
func (r *TenantRepo) GetByName(name string) (*entity.Tenant, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM tenants WHERE name = $1`
	var t entity.Tenant
	err := r.pool.QueryRow(context.Background(), query, name).Scan(
		&t.ID, &t.Name, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tenant by name: %w", err)
	}
	return &t, nil
}

// Update actualiza un tenant existente.
func (r *TenantRepo) Update(tenant *entity.Tenant) error {
	query := `
		UPDATE tenants SET name = $2, is_active = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		tenant.ID, tenant.Name, tenant.IsActive, tenant.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

// List devuelve todos los tenants ordenados por creación.
func (r *TenantRepo) List() ([]*entity.Tenant, error) {
	query := `
		SELECT id, name, is_active, created_at, updated_at
		FROM tenants ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer rows.Close()

	var list []*entity.Tenant
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tenant: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Deactivate marca el tenant como inactivo. Solo aplica sobre tenants activos.
func (r *TenantRepo) Deactivate(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE tenants SET is_active = false, updated_at = now() WHERE id = $1 AND is_active = true`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("deactivate tenant: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
