package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/bms-pro/internal/domain/pricing"
)

// Product representa un producto facturado por una empresa del tenant.
// Details es la regla de precios completa (una entrada por categoría de
// cliente más la opcional specialcustomer); se reemplaza completa en cada
// actualización. La semántica del valor la fija EntityType.
type Product struct {
	ID         string
	TenantID   string
	CompanyID  string
	Name       string // único por tenant+empresa
	MRP        decimal.Decimal
	MfdDate    time.Time
	EntityType pricing.EntityType
	Details    pricing.Rule
	IsActive   bool
	CreatedBy  string
	UpdatedBy  string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
