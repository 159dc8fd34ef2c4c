package usecases

import (
	"context"
	"fmt"

	"github.com/nhadat/marketplace/internal/application/property/dto"
	userdto "github.com/nhadat/marketplace/internal/application/user/dto"
	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/shared/authorization"
	"github.com/nhadat/marketplace/internal/shared/errors"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

type ListPropertiesQuery struct {
	CallerRole   authorization.UserRole
	Status       string
	Location     string
	PropertyType string
	ListingType  string
	MinPrice     *float64
	MaxPrice     *float64
	Query        string
	Page         int
	PageSize     int
}

// ListPropertiesUseCase is the public search. Only approved listings are
// returned unless a staff or admin caller asks for a specific status.
type ListPropertiesUseCase struct {
	propertyRepo property.Repository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewListPropertiesUseCase(propertyRepo property.Repository, userRepo user.Repository, logger logger.Interface) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context, query ListPropertiesQuery) (*dto.ListPropertiesResult, error) {
	uc.logger.Debugw("executing list properties use case", "role", query.CallerRole, "status", query.Status)

	status, err := resolveVisibleStatus(query.Status, query.CallerRole)
	if err != nil {
		return nil, err
	}

	filter, err := buildListFilter(query, status)
	if err != nil {
		return nil, err
	}

	items, total, err := uc.propertyRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list properties", "error", err)
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	owners, err := loadOwnerSummaries(ctx, uc.userRepo, items)
	if err != nil {
		uc.logger.Errorw("failed to load listing owners", "error", err)
		return nil, err
	}

	return &dto.ListPropertiesResult{
		Items:    dto.ToPropertyResponses(items, owners),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// resolveVisibleStatus applies the visibility rule: everyone sees approved
// listings by default and only staff or admin may ask for another status.
func resolveVisibleStatus(requested string, role authorization.UserRole) (vo.PropertyStatus, error) {
	if requested == "" {
		return vo.PropertyStatusApproved, nil
	}

	status, ok := vo.ParsePropertyStatus(requested)
	if !ok {
		return "", errors.NewValidationError("Invalid filters", "status must be one of [pending approved rejected sold]")
	}
	if status != vo.PropertyStatusApproved && !role.IsStaffOrAdmin() {
		return "", errors.NewForbiddenError("Only staff or admin can view listings with this status")
	}
	return status, nil
}

func buildListFilter(query ListPropertiesQuery, status vo.PropertyStatus) (property.ListFilter, error) {
	pagination := utils.ValidatePagination(query.Page, query.PageSize)
	filter := property.ListFilter{
		Status:   status,
		Location: query.Location,
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		Query:    query.Query,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}

	if query.PropertyType != "" {
		pt := vo.PropertyType(query.PropertyType)
		if !pt.IsValid() {
			return filter, errors.NewValidationError("Invalid filters", "propertyType is not supported")
		}
		filter.PropertyType = pt
	}
	if query.ListingType != "" {
		lt := vo.ListingType(query.ListingType)
		if !lt.IsValid() {
			return filter, errors.NewValidationError("Invalid filters", "listingType must be one of [sell rent]")
		}
		filter.ListingType = lt
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return filter, errors.NewValidationError("Invalid filters", "minPrice cannot exceed maxPrice")
	}
	return filter, nil
}

func loadOwnerSummaries(ctx context.Context, repo user.Repository, items []*property.Property) (map[uint]*userdto.UserSummary, error) {
	if len(items) == 0 {
		return map[uint]*userdto.UserSummary{}, nil
	}

	seen := make(map[uint]bool, len(items))
	ids := make([]uint, 0, len(items))
	for _, p := range items {
		if !seen[p.OwnerID()] {
			seen[p.OwnerID()] = true
			ids = append(ids, p.OwnerID())
		}
	}

	owners, err := repo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load owners: %w", err)
	}
	return userdto.SummariesByID(owners), nil
}
