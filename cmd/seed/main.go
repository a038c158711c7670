// seed crea la cuenta inicial de tenantowner para un despliegue nuevo.
//
// Uso: go run ./cmd/seed
// Lee SEED_EMAIL, SEED_PASSWORD y SEED_PHONE del entorno (además de la
// configuración normal de DB). Si el email ya existe no hace nada.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/bms-pro/pkg/config"
	"github.com/tu-usuario/bms-pro/pkg/jwt"
)

func main() {
	email := strings.TrimSpace(strings.ToLower(os.Getenv("SEED_EMAIL")))
	password := os.Getenv("SEED_PASSWORD")
	phone := os.Getenv("SEED_PHONE")
	if email == "" || password == "" || len(phone) < 4 {
		fmt.Fprintln(os.Stderr, "SEED_EMAIL, SEED_PASSWORD y SEED_PHONE (mínimo 4 dígitos) son requeridos")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.GetByEmail(email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar usuario: %v\n", err)
		os.Exit(1)
	}
	if existing != nil {
		fmt.Printf("el usuario %s ya existe, nada que hacer\n", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hashear password: %v\n", err)
		os.Exit(1)
	}

	// Mismo esquema de userName que el registro normal: prefijo del email + 4 dígitos del teléfono.
	prefix := email
	if at := strings.Index(email, "@"); at > 0 {
		prefix = email[:at]
	}
	now := time.Now().UTC()
	owner := &entity.User{
		ID:           uuid.New().String(),
		UserName:     prefix + phone[:4],
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  phone,
		AccessType:   jwt.RoleTenantOwner,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(owner); err != nil {
		fmt.Fprintf(os.Stderr, "crear tenantowner: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("tenantowner creado: %s (userName %s)\n", owner.Email, owner.UserName)
}
