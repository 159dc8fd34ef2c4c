package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/nhadat/marketplace/internal/domain/property"
	vo "github.com/nhadat/marketplace/internal/domain/property/valueobjects"
	"github.com/nhadat/marketplace/internal/infrastructure/persistence/models"
)

type PropertyMapper interface {
	ToEntity(model *models.PropertyModel) (*property.Property, error)
	ToModel(entity *property.Property) *models.PropertyModel
	ToEntities(models []models.PropertyModel) ([]*property.Property, error)
}

type PropertyMapperImpl struct{}

func NewPropertyMapper() PropertyMapper {
	return &PropertyMapperImpl{}
}

func (m *PropertyMapperImpl) ToEntity(model *models.PropertyModel) (*property.Property, error) {
	if model == nil {
		return nil, nil
	}

	images := []string(model.Images)
	if images == nil {
		images = []string{}
	}
	metadata := model.Metadata.Data()
	if metadata.Amenities == nil {
		metadata.Amenities = []string{}
	}

	entity, err := property.ReconstructProperty(property.ReconstructParams{
		ID:      model.ID,
		SID:     model.SID,
		OwnerID: model.OwnerID,
		Details: property.Details{
			Title:        model.Title,
			Description:  model.Description,
			Price:        model.Price,
			PriceUnit:    vo.PriceUnit(model.PriceUnit),
			ListingType:  vo.ListingType(model.ListingType),
			Location:     model.Location,
			PropertyType: vo.PropertyType(model.PropertyType),
			Area:         model.Area,
			Bedrooms:     model.Bedrooms,
			Bathrooms:    model.Bathrooms,
			Floors:       model.Floors,
			Images:       images,
			Metadata:     metadata,
		},
		Status:          model.Status,
		RejectionReason: model.RejectionReason,
		ApprovedAt:      model.ApprovedAt,
		Version:         model.Version,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct property %d: %w", model.ID, err)
	}
	return entity, nil
}

func (m *PropertyMapperImpl) ToModel(entity *property.Property) *models.PropertyModel {
	if entity == nil {
		return nil
	}

	d := entity.Details()
	return &models.PropertyModel{
		ID:              entity.ID(),
		SID:             entity.SID(),
		OwnerID:         entity.OwnerID(),
		Title:           d.Title,
		Description:     d.Description,
		Price:           d.Price,
		PriceUnit:       string(d.PriceUnit),
		ListingType:     string(d.ListingType),
		Location:        d.Location,
		PropertyType:    string(d.PropertyType),
		Area:            d.Area,
		Bedrooms:        d.Bedrooms,
		Bathrooms:       d.Bathrooms,
		Floors:          d.Floors,
		Images:          datatypes.NewJSONSlice(d.Images),
		Metadata:        datatypes.NewJSONType(d.Metadata),
		Status:          entity.Status().String(),
		RejectionReason: entity.RejectionReason(),
		ApprovedAt:      entity.ApprovedAt(),
		Version:         entity.Version(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
	}
}

func (m *PropertyMapperImpl) ToEntities(list []models.PropertyModel) ([]*property.Property, error) {
	entities := make([]*property.Property, 0, len(list))
	for i := range list {
		entity, err := m.ToEntity(&list[i])
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
