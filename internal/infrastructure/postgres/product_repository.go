package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/domain/pricing"
	"github.com/tu-usuario/bms-pro/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// La regla de precios (details) viaja como JSONB: es un documento que se
// reemplaza completo en cada escritura, nunca se actualiza parcialmente.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto con su regla de precios serializada.
func (r *ProductRepo) Create(product *entity.Product) error {
	details, err := json.Marshal(product.Details)
	if err != nil {
		return fmt.Errorf("marshal product details: %w", err)
	}
	query := `
		INSERT INTO products (id, tenant_id, company_id, name, mrp, mfd_date, entity_type, details,
		                      is_active, created_by, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), NULLIF($11, ''), $12, $13)`
	_, err = r.pool.Exec(context.Background(), query,
		product.ID, product.TenantID, product.CompanyID, product.Name,
		product.MRP, product.MfdDate, string(product.EntityType), details,
		product.IsActive, product.CreatedBy, product.UpdatedBy,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del tenant junto al nombre de su empresa.
func (r *ProductRepo) GetByID(tenantID, id string) (*repository.ProductWithCompany, error) {
	query := `
		SELECT p.id, p.tenant_id, p.company_id, p.name, p.mrp, p.mfd_date, p.entity_type, p.details,
		       p.is_active, COALESCE(p.created_by::text, ''), COALESCE(p.updated_by::text, ''),
		       p.created_at, p.updated_at, c.name
		FROM products p
		JOIN companies c ON c.id = p.company_id
		WHERE p.id = $1 AND p.tenant_id = $2`
	row := r.pool.QueryRow(context.Background(), query, id, tenantID)
	p, err := scanProductWithCompany(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByTenantCompanyAndName busca un producto por nombre dentro de tenant+empresa.
// Se usa para el chequeo de duplicados previo al alta.
func (r *ProductRepo) GetByTenantCompanyAndName(tenantID, companyID, name string) (*entity.Product, error) {
	query := `
		SELECT id, tenant_id, company_id, name, mrp, mfd_date, entity_type, details,
		       is_active, COALESCE(created_by::text, ''), COALESCE(updated_by::text, ''), created_at, updated_at
		FROM products WHERE tenant_id = $1 AND company_id = $2 AND name = $3`
	var p entity.Product
	var entityType string
	var details []byte
	err := r.pool.QueryRow(context.Background(), query, tenantID, companyID, name).Scan(
		&p.ID, &p.TenantID, &p.CompanyID, &p.Name, &p.MRP, &p.MfdDate, &entityType, &details,
		&p.IsActive, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by name: %w", err)
	}
	p.EntityType = pricing.EntityType(entityType)
	if err := json.Unmarshal(details, &p.Details); err != nil {
		return nil, fmt.Errorf("unmarshal product details: %w", err)
	}
	return &p, nil
}

// Update reemplaza los campos del producto, incluida la regla completa.
func (r *ProductRepo) Update(product *entity.Product) error {
	details, err := json.Marshal(product.Details)
	if err != nil {
		return fmt.Errorf("marshal product details: %w", err)
	}
	query := `
		UPDATE products
		SET company_id = $3, name = $4, mrp = $5, mfd_date = $6, entity_type = $7, details = $8,
		    is_active = $9, updated_by = NULLIF($10, ''), updated_at = $11
		WHERE id = $1 AND tenant_id = $2`
	_, err = r.pool.Exec(context.Background(), query,
		product.ID, product.TenantID, product.CompanyID, product.Name,
		product.MRP, product.MfdDate, string(product.EntityType), details,
		product.IsActive, product.UpdatedBy, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// ListByTenant lista productos del tenant con el nombre de empresa resuelto.
func (r *ProductRepo) ListByTenant(tenantID string, limit, offset int) ([]*repository.ProductWithCompany, error) {
	query := `
		SELECT p.id, p.tenant_id, p.company_id, p.name, p.mrp, p.mfd_date, p.entity_type, p.details,
		       p.is_active, COALESCE(p.created_by::text, ''), COALESCE(p.updated_by::text, ''),
		       p.created_at, p.updated_at, c.name
		FROM products p
		JOIN companies c ON c.id = p.company_id
		WHERE p.tenant_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*repository.ProductWithCompany
	for rows.Next() {
		p, err := scanProductWithCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Deactivate marca el producto como inactivo dentro del tenant (soft delete).
func (r *ProductRepo) Deactivate(tenantID, id, updatedBy string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE products SET is_active = false, updated_by = NULLIF($3, ''), updated_at = now()
		 WHERE id = $1 AND tenant_id = $2 AND is_active = true`,
		id, tenantID, updatedBy,
	)
	if err != nil {
		return false, fmt.Errorf("deactivate product: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// rowScanner abstrae pgx.Row y pgx.Rows para compartir el escaneo.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanProductWithCompany(row rowScanner) (*repository.ProductWithCompany, error) {
	var p repository.ProductWithCompany
	var entityType string
	var details []byte
	err := row.Scan(
		&p.ID, &p.TenantID, &p.CompanyID, &p.Name, &p.MRP, &p.MfdDate, &entityType, &details,
		&p.IsActive, &p.CreatedBy, &p.UpdatedBy, &p.CreatedAt, &p.UpdatedAt, &p.CompanyName,
	)
	if err != nil {
		return nil, err
	}
	p.EntityType = pricing.EntityType(entityType)
	if err := json.Unmarshal(details, &p.Details); err != nil {
		return nil, fmt.Errorf("unmarshal product details: %w", err)
	}
	return &p, nil
}
