package entity

import "time"

// Tenant representa una organización cliente de la plataforma: la frontera
// de aislamiento que agrupa empresas, productos y usuarios no-owner.
type Tenant struct {
	ID        string
	Name      string // único a nivel plataforma
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
