package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bms-pro/internal/application/dto"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/domain/pricing"
	"github.com/tu-usuario/bms-pro/internal/domain/repository"
)

// ProductUseCase CRUD de productos con su regla de precios, acotado al
// tenant del token. La regla se valida completa y se reemplaza completa.
type ProductUseCase struct {
	repo        repository.ProductRepository
	companyRepo repository.CompanyRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, companyRepo repository.CompanyRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, companyRepo: companyRepo}
}

// Create crea un producto bajo el tenant del caller. La empresa debe
// pertenecer al mismo tenant y el nombre es único por tenant+empresa.
func (uc *ProductUseCase) Create(tenantID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	entityType := pricing.EntityType(in.EntityType)
	if err := in.ProductDetails.Validate(entityType); err != nil {
		// Una regla malformada es entrada inválida del cliente, no un 500.
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	company, err := uc.companyRepo.GetByID(tenantID, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrInvalidInput // la empresa no existe en este tenant
	}

	existing, err := uc.repo.GetByTenantCompanyAndName(tenantID, in.CompanyID, in.ProductName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		CompanyID:  in.CompanyID,
		Name:       in.ProductName,
		MRP:        in.MRP,
		MfdDate:    in.MfdDate,
		EntityType: entityType,
		Details:    in.ProductDetails,
		IsActive:   true,
		CreatedBy:  userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	resp := toProductResponse(&repository.ProductWithCompany{Product: *product, CompanyName: company.Name})
	return resp, nil
}

// GetByID obtiene un producto del tenant del caller, con el nombre de su empresa.
func (uc *ProductUseCase) GetByID(tenantID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista los productos del tenant con paginación.
func (uc *ProductUseCase) List(tenantID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza un producto del tenant. Si viene regla nueva, reemplaza
// a la anterior completa; si cambia la empresa, se revalida su pertenencia.
func (uc *ProductUseCase) Update(tenantID, userID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	current, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	product := current.Product

	if in.CompanyID != nil {
		company, err := uc.companyRepo.GetByID(tenantID, *in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrInvalidInput
		}
		product.CompanyID = *in.CompanyID
		current.CompanyName = company.Name
	}
	if in.ProductName != nil {
		product.Name = *in.ProductName
	}
	if in.MRP != nil {
		product.MRP = *in.MRP
	}
	if in.MfdDate != nil {
		product.MfdDate = *in.MfdDate
	}
	if in.EntityType != nil {
		product.EntityType = pricing.EntityType(*in.EntityType)
	}
	if in.ProductDetails != nil {
		product.Details = in.ProductDetails
	}
	// La regla y el tipo se validan juntos: un cambio de entityType puede
	// invalidar los valores existentes.
	if err := product.Details.Validate(product.EntityType); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	product.UpdatedBy = userID
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(&product); err != nil {
		return nil, err
	}
	return toProductResponse(&repository.ProductWithCompany{Product: product, CompanyName: current.CompanyName}), nil
}

// Delete desactiva un producto del tenant (soft delete).
func (uc *ProductUseCase) Delete(tenantID, userID, id string) error {
	ok, err := uc.repo.Deactivate(tenantID, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toProductResponse(p *repository.ProductWithCompany) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		TenantID:       p.TenantID,
		CompanyID:      p.CompanyID,
		CompanyName:    p.CompanyName,
		ProductName:    p.Name,
		MRP:            p.MRP,
		MfdDate:        p.MfdDate,
		EntityType:     string(p.EntityType),
		ProductDetails: p.Details,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
