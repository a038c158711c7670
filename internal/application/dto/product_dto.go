package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bms-pro/internal/domain/pricing"
)

// CreateProductRequest entrada para crear un producto. El tenant sale del token;
// companyId debe pertenecer a ese tenant. productDetails es la regla completa.
type CreateProductRequest struct {
	ProductName    string          `json:"productName" validate:"required,min=1,max=200"`
	CompanyID      string          `json:"companyId" validate:"required,uuid"`
	MRP            decimal.Decimal `json:"mrp"`
	MfdDate        time.Time       `json:"mfdDate"`
	EntityType     string          `json:"entityType" validate:"required,oneof=percentage direct formula"`
	ProductDetails pricing.Rule    `json:"productDetails"`
}

// UpdateProductRequest entrada para actualizar un producto. La regla de
// precios, si viene, reemplaza a la anterior completa (nunca parcheo).
type UpdateProductRequest struct {
	ProductName    *string          `json:"productName" validate:"omitempty,min=1,max=200"`
	CompanyID      *string          `json:"companyId" validate:"omitempty,uuid"`
	MRP            *decimal.Decimal `json:"mrp"`
	MfdDate        *time.Time       `json:"mfdDate"`
	EntityType     *string          `json:"entityType" validate:"omitempty,oneof=percentage direct formula"`
	ProductDetails pricing.Rule     `json:"productDetails"`
}

// ProductResponse salida de un producto, con el nombre de su empresa.
type ProductResponse struct {
	ID             string          `json:"id"`
	TenantID       string          `json:"tenantId"`
	CompanyID      string          `json:"companyId"`
	CompanyName    string          `json:"companyName,omitempty"`
	ProductName    string          `json:"productName"`
	MRP            decimal.Decimal `json:"mrp"`
	MfdDate        time.Time       `json:"mfdDate"`
	EntityType     string          `json:"entityType"`
	ProductDetails pricing.Rule    `json:"productDetails"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
