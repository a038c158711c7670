package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa. El tenant sale del token.
type CreateCompanyRequest struct {
	CompanyName string `json:"companyName" validate:"required,min=1,max=200"`
}

// UpdateCompanyRequest entrada para actualizar una empresa.
type UpdateCompanyRequest struct {
	CompanyName *string `json:"companyName" validate:"omitempty,min=1,max=200"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenantId"`
	CompanyName string    `json:"companyName"`
	IsActive    bool      `json:"isActive"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	UpdatedBy   string    `json:"updatedBy,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
