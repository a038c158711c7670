package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/bms-pro/internal/application/auth"
	"github.com/tu-usuario/bms-pro/internal/application/billing"
	"github.com/tu-usuario/bms-pro/internal/application/usecase"
	pkgjwt "github.com/tu-usuario/bms-pro/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	TenantUC  *usecase.TenantUseCase
	CompanyUC *usecase.CompanyUseCase
	ProductUC *usecase.ProductUseCase
	UserUC    *usecase.UserUseCase
	BillUC    *billing.BillUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
//
// Matriz de acceso:
//   - /api/auth/*           público
//   - /api/tenants/*        tenantowner
//   - /api/companies/*      admin
//   - /api/products/*       admin
//   - /api/users            GET: tenantowner; /:id GET/PUT: autenticado; DELETE: tenantowner
//   - /api/bills/*          autenticado
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tenants (solo tenantowner)
	tenants := protected.Group("/tenants", RequireRole(pkgjwt.RoleTenantOwner))
	tenantHandler := NewTenantHandler(deps.TenantUC)
	tenants.Post("/", tenantHandler.Create)
	tenants.Get("/", tenantHandler.List)
	tenants.Get("/:id", tenantHandler.GetByID)
	tenants.Put("/:id", tenantHandler.Update)
	tenants.Delete("/:id", tenantHandler.Delete)

	// Companies (rol admin, acotado al tenant del token)
	companies := protected.Group("/companies", RequireRole(pkgjwt.RoleAdmin))
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)

	// Products (rol admin, acotado al tenant del token)
	products := protected.Group("/products", RequireRole(pkgjwt.RoleAdmin))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Users: el listado y el borrado son del tenantowner; perfil abierto.
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", RequireRole(pkgjwt.RoleTenantOwner), userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", RequireRole(pkgjwt.RoleTenantOwner), userHandler.Delete)

	// Bills (cualquier usuario autenticado; nunca se persisten)
	bills := protected.Group("/bills")
	billHandler := NewBillHandler(deps.BillUC)
	bills.Post("/preview", billHandler.Preview)
	bills.Post("/pdf", billHandler.DownloadPDF)
}
