package entity

import "time"

// Company representa una empresa/marca dentro de un tenant.
// CreatedBy/UpdatedBy guardan el ID del usuario del token que ejecutó la acción.
type Company struct {
	ID        string
	TenantID  string
	Name      string // único dentro del tenant
	IsActive  bool
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
