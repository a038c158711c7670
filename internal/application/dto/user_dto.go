package dto

import "time"

// RegisterRequest entrada para registro: el userName se deriva en el use case
// a partir del email y el teléfono. accessType por defecto: executive.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=4"`
	AccessType  string `json:"accessType" validate:"omitempty,oneof=tenantowner admin executive"`
	TenantID    string `json:"tenantId" validate:"omitempty,uuid"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y el nombre del tenant del usuario
// (nil para tenantowner).
type LoginResponse struct {
	Message    string  `json:"message"`
	TenantName *string `json:"tenantName"`
	Token      string  `json:"token"`
}

// ForgotPasswordRequest entrada para restablecer contraseña.
type ForgotPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
// Reasignar accessType/tenantId es operación exclusiva del tenantowner.
type UpdateUserRequest struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	PhoneNumber *string `json:"phoneNumber"`
	AccessType  *string `json:"accessType" validate:"omitempty,oneof=tenantowner admin executive"`
	TenantID    *string `json:"tenantId"`
	IsActive    *bool   `json:"isActive"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID           string     `json:"id"`
	UserName     string     `json:"userName"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	PhoneNumber  string     `json:"phoneNumber"`
	AccessType   string     `json:"accessType"`
	TenantID     string     `json:"tenantId,omitempty"`
	IsActive     bool       `json:"isActive"`
	LastLoggedIn *time.Time `json:"lastLoggedIn"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// UserWithTenantResponse fila del listado administrativo con nombre de tenant.
type UserWithTenantResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	AccessType string  `json:"accessType"`
	TenantName *string `json:"tenantName"`
	IsActive   bool    `json:"isActive"`
}
