package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/bms-pro/internal/application/dto"
	"github.com/tu-usuario/bms-pro/internal/domain"
	"github.com/tu-usuario/bms-pro/internal/domain/entity"
	"github.com/tu-usuario/bms-pro/internal/domain/repository"
)

// CompanyUseCase CRUD de empresas, siempre acotado al tenant del token.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una empresa bajo el tenant del caller. Nombre único por tenant.
func (uc *CompanyUseCase) Create(tenantID, userID string, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, err := uc.repo.GetByName(tenantID, in.CompanyName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Name:      in.CompanyName,
		IsActive:  true,
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID obtiene una empresa del tenant del caller.
func (uc *CompanyUseCase) GetByID(tenantID, id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return toCompanyResponse(company), nil
}

// List lista las empresas del tenant con paginación.
func (uc *CompanyUseCase) List(tenantID string, limit, offset int) (*dto.CompanyListResponse, error) {
	list, err := uc.repo.ListByTenant(tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update actualiza una empresa del tenant del caller y registra quién lo hizo.
func (uc *CompanyUseCase) Update(tenantID, userID, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(tenantID, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.CompanyName != nil {
		company.Name = *in.CompanyName
	}
	company.UpdatedBy = userID
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete desactiva una empresa del tenant (soft delete).
func (uc *CompanyUseCase) Delete(tenantID, userID, id string) error {
	ok, err := uc.repo.Deactivate(tenantID, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		CompanyName: c.Name,
		IsActive:    c.IsActive,
		CreatedBy:   c.CreatedBy,
		UpdatedBy:   c.UpdatedBy,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
