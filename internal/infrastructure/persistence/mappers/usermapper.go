package mappers

import (
	"fmt"

	"github.com/nhadat/marketplace/internal/domain/user"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.ReconstructUser(user.ReconstructParams{
		ID:                    model.ID,
		SID:                   model.SID,
		Email:                 model.Email,
		Name:                  model.Name,
		GoogleID:              derefString(model.GoogleID),
		Avatar:                derefString(model.Avatar),
		Phone:                 derefString(model.Phone),
		PasswordHash:          model.PasswordHash,
		Role:                  model.Role,
		Status:                model.Status,
		FreeListingsRemaining: model.FreeListingsRemaining,
		PaidListingsRemaining: model.PaidListingsRemaining,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:                    entity.ID(),
		SID:                   entity.SID(),
		Email:                 entity.Email().String(),
		Name:                  entity.Name(),
		GoogleID:              optionalString(entity.GoogleID()),
		Avatar:                optionalString(entity.Avatar()),
		Phone:                 optionalString(entity.Phone()),
		PasswordHash:          entity.PasswordHash(),
		Role:                  entity.Role().String(),
		Status:                entity.Status().String(),
		FreeListingsRemaining: entity.FreeListingsRemaining(),
		PaidListingsRemaining: entity.PaidListingsRemaining(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ToEntities(list []models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(list))
	for i := range list {
		entity, err := m.ToEntity(&list[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
