package entity

import "time"

// Roles válidos para User.
const (
	RoleTenantOwner = "tenantowner"
	RoleAdmin       = "admin"
	RoleExecutive   = "executive"
)

// User representa un usuario del sistema. TenantID es vacío para el rol
// tenantowner (opera a nivel plataforma); obligatorio para el resto.
type User struct {
	ID           string
	TenantID     string
	UserName     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	FirstName    string
	LastName     string
	PhoneNumber  string
	AccessType   string // tenantowner, admin, executive
	IsActive     bool
	LastLoggedIn *time.Time // nil hasta el primer login
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidAccessType informa si el rol es uno de los reconocidos.
func ValidAccessType(t string) bool {
	return t == RoleTenantOwner || t == RoleAdmin || t == RoleExecutive
}
