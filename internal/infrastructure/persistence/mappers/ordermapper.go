package mappers

import (
	"fmt"

	"github.com/nhadat/marketplace/internal/domain/order"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
)

type OrderMapper interface {
	ToEntity(model *models.OrderModel) (*order.Order, error)
	ToModel(entity *order.Order) *models.OrderModel
	ToEntities(models []models.OrderModel) ([]*order.Order, error)
	PackageToEntity(model *models.PackageModel) (*order.Package, error)
	PackageToModel(entity *order.Package) *models.PackageModel
}

type OrderMapperImpl struct{}

func NewOrderMapper() OrderMapper {
	return &OrderMapperImpl{}
}

func (m *OrderMapperImpl) ToEntity(model *models.OrderModel) (*order.Order, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := order.ReconstructOrder(order.OrderParams{
		ID:        model.ID,
		SID:       model.SID,
		UserID:    model.UserID,
		PackageID: model.PackageID,
		Amount:    model.Amount,
		Status:    model.Status,
		MarkedBy:  model.MarkedBy,
		Notes:     model.Notes,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *OrderMapperImpl) ToModel(entity *order.Order) *models.OrderModel {
	if entity == nil {
		return nil
	}
	return &models.OrderModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		UserID:    entity.UserID(),
		PackageID: entity.PackageID(),
		Amount:    entity.Amount(),
		Status:    entity.Status().String(),
		MarkedBy:  entity.MarkedBy(),
		Notes:     entity.Notes(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

func (m *OrderMapperImpl) ToEntities(list []models.OrderModel) ([]*order.Order, error) {
	entities := make([]*order.Order, 0, len(list))
	for i := range list {
		entity, err := m.ToEntity(&list[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *OrderMapperImpl) PackageToEntity(model *models.PackageModel) (*order.Package, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := order.ReconstructPackage(order.PackageParams{
		ID:             model.ID,
		SID:            model.SID,
		Name:           model.Name,
		Slug:           model.Slug,
		Price:          model.Price,
		ListingCredits: model.ListingCredits,
		Description:    model.Description,
		IsActive:       model.IsActive,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct package %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *OrderMapperImpl) PackageToModel(entity *order.Package) *models.PackageModel {
	if entity == nil {
		return nil
	}
	return &models.PackageModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		Name:           entity.Name(),
		Slug:           entity.Slug(),
		Price:          entity.Price(),
		ListingCredits: entity.ListingCredits(),
		Description:    entity.Description(),
		IsActive:       entity.IsActive(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}
}
