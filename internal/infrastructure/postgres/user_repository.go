package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/domain/repository"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, COALESCE(tenant_id::text, ''), user_name, email, password_hash,
	COALESCE(first_name, ''), COALESCE(last_name, ''), COALESCE(phone_number, ''),
	access_type, is_active, last_logged_in, created_at, updated_at`

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, tenant_id, user_name, email, password_hash, first_name, last_name,
		                   phone_number, access_type, is_active, created_at, updated_at)
		VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''),
		        NULLIF($8, ''), $9, $10, $11, $12)`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.TenantID, user.UserName, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.PhoneNumber, user.AccessType,
		user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id).Scan(
		&u.ID, &u.TenantID, &u.UserName, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.PhoneNumber, &u.AccessType,
		&u.IsActive, &u.LastLoggedIn, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email (clave del login).
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(context.Background(),
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email).Scan(
		&u.ID, &u.TenantID, &u.UserName, &u.Email, &u.PasswordHash,
		&u.FirstName, &u.LastName, &u.PhoneNumber, &u.AccessType,
		&u.IsActive, &u.LastLoggedIn, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// Update actualiza los datos de perfil y credenciales del usuario.
func (r *UserRepo) Update(user *entity.User) error {
	query := `
		UPDATE users
		SET tenant_id = NULLIF($2, '')::uuid, user_name = $3, email = $4, password_hash = $5,
		    first_name = NULLIF($6, ''), last_name = NULLIF($7, ''), phone_number = NULLIF($8, ''),
		    access_type = $9, is_active = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		user.ID, user.TenantID, user.UserName, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.PhoneNumber, user.AccessType,
		user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// TouchLastLoggedIn actualiza solo la marca de último acceso.
// Una falla aquí no debe abortar el login, por eso va separada del Update.
func (r *UserRepo) TouchLastLoggedIn(id string) error {
	_, err := r.pool.Exec(context.Background(),
		`UPDATE users SET last_logged_in = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch last_logged_in: %w", err)
	}
	return nil
}

// List lista todos los usuarios.
func (r *UserRepo) List() ([]*entity.User, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(
			&u.ID, &u.TenantID, &u.UserName, &u.Email, &u.PasswordHash,
			&u.FirstName, &u.LastName, &u.PhoneNumber, &u.AccessType,
			&u.IsActive, &u.LastLoggedIn, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ListWithTenants lista los usuarios operativos (sin owners) junto al nombre
// de su tenant; el LEFT JOIN tolera usuarios sin tenant asignado.
func (r *UserRepo) ListWithTenants() ([]*repository.UserWithTenant, error) {
	query := `
		SELECT u.id, u.email, u.access_type, COALESCE(t.name, ''), u.is_active
		FROM users u
		LEFT JOIN tenants t ON t.id = u.tenant_id
		WHERE u.access_type <> 'tenantowner'
		ORDER BY u.created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list users with tenants: %w", err)
	}
	defer rows.Close()

	var list []*repository.UserWithTenant
	for rows.Next() {
		var u repository.UserWithTenant
		if err := rows.Scan(&u.ID, &u.Email, &u.AccessType, &u.TenantName, &u.IsActive); err != nil {
			return nil, fmt.Errorf("scan user with tenant: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Deactivate marca el usuario como inactivo (soft delete).
func (r *UserRepo) Deactivate(id string) (bool, error) {
	cmd, err := r.pool.Exec(context.Background(),
		`UPDATE users SET is_active = false, updated_at = now() WHERE id = $1 AND is_active = true`, id)
	if err != nil {
		return false, fmt.Errorf("deactivate user: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
