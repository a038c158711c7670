package dto

import "time"

// CreateTenantRequest entrada para crear un tenant (solo tenantowner).
type CreateTenantRequest struct {
	TenantName string `json:"tenantName" validate:"required,min=1,max=200"`
}

// UpdateTenantRequest entrada para renombrar un tenant.
type UpdateTenantRequest struct {
	TenantName string `json:"tenantName" validate:"required,min=1,max=200"`
}

// TenantResponse salida de un tenant.
type TenantResponse struct {
	ID         string    `json:"id"`
	TenantName string    `json:"tenantName"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
