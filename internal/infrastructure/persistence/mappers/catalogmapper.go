package mappers

import (
	"fmt"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/infrastructure/persistence/models"
)

// CatalogMapper handles the conversion between reference data entities
// and persistence models.
type CatalogMapper interface {
	DeviceTypeToModel(dt *catalog.DeviceType) *models.DeviceTypeModel
	DeviceTypeToDomain(model *models.DeviceTypeModel) (*catalog.DeviceType, error)
	PriorityToModel(p *catalog.Priority) *models.PriorityModel
	PriorityToDomain(model *models.PriorityModel) (*catalog.Priority, error)
	StatusToModel(s *catalog.Status) *models.StatusModel
	StatusToDomain(model *models.StatusModel) (*catalog.Status, error)
}

type CatalogMapperImpl struct{}

func NewCatalogMapper() CatalogMapper {
	return &CatalogMapperImpl{}
}

func (m *CatalogMapperImpl) DeviceTypeToModel(dt *catalog.DeviceType) *models.DeviceTypeModel {
	return &models.DeviceTypeModel{
		ID:   dt.ID(),
		Name: dt.Name(),
	}
}

func (m *CatalogMapperImpl) DeviceTypeToDomain(model *models.DeviceTypeModel) (*catalog.DeviceType, error) {
	entity, err := catalog.ReconstructDeviceType(model.ID, model.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct device type: %w", err)
	}
	return entity, nil
}

func (m *CatalogMapperImpl) PriorityToModel(p *catalog.Priority) *models.PriorityModel {
	return &models.PriorityModel{
		ID:           p.ID(),
		Name:         p.Name(),
		DisplayOrder: p.DisplayOrder(),
	}
}

func (m *CatalogMapperImpl) PriorityToDomain(model *models.PriorityModel) (*catalog.Priority, error) {
	entity, err := catalog.ReconstructPriority(model.ID, model.Name, model.DisplayOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct priority: %w", err)
	}
	return entity, nil
}

func (m *CatalogMapperImpl) StatusToModel(s *catalog.Status) *models.StatusModel {
	return &models.StatusModel{
		ID:           s.ID(),
		Name:         s.Name(),
		DisplayOrder: s.DisplayOrder(),
		IsFinal:      s.IsFinal(),
	}
}

func (m *CatalogMapperImpl) StatusToDomain(model *models.StatusModel) (*catalog.Status, error) {
	entity, err := catalog.ReconstructStatus(model.ID, model.Name, model.DisplayOrder, model.IsFinal)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct status: %w", err)
	}
	return entity, nil
}
