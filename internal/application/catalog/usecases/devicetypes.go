package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/device"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CreateDeviceTypeCommand struct {
	Name string
}

type CreateDeviceTypeUseCase struct {
	typeRepo catalog.DeviceTypeRepository
	logger   logger.Interface
}

func NewCreateDeviceTypeUseCase(typeRepo catalog.DeviceTypeRepository, logger logger.Interface) *CreateDeviceTypeUseCase {
	return &CreateDeviceTypeUseCase{typeRepo: typeRepo, logger: logger}
}

func (uc *CreateDeviceTypeUseCase) Execute(ctx context.Context, cmd CreateDeviceTypeCommand) (*DeviceTypeResult, error) {
	existing, err := uc.typeRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("device type name already exists")
	}

	deviceType, err := catalog.NewDeviceType(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.typeRepo.Create(ctx, deviceType); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("device type name already exists")
		}
		return nil, err
	}

	uc.logger.Infow("device type created", "id", deviceType.ID(), "name", deviceType.Name())
	return newDeviceTypeResult(deviceType), nil
}

type UpdateDeviceTypeCommand struct {
	DeviceTypeID uint
	Name         string
}

type UpdateDeviceTypeUseCase struct {
	typeRepo catalog.DeviceTypeRepository
	logger   logger.Interface
}

func NewUpdateDeviceTypeUseCase(typeRepo catalog.DeviceTypeRepository, logger logger.Interface) *UpdateDeviceTypeUseCase {
	return &UpdateDeviceTypeUseCase{typeRepo: typeRepo, logger: logger}
}

func (uc *UpdateDeviceTypeUseCase) Execute(ctx context.Context, cmd UpdateDeviceTypeCommand) (*DeviceTypeResult, error) {
	deviceType, err := uc.typeRepo.GetByID(ctx, cmd.DeviceTypeID)
	if err != nil {
		return nil, err
	}
	if deviceType == nil {
		return nil, errors.NewNotFoundError("device type not found")
	}

	other, err := uc.typeRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID() != deviceType.ID() {
		return nil, errors.NewConflictError("device type name already exists")
	}

	if err := deviceType.Rename(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.typeRepo.Update(ctx, deviceType); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("device type name already exists")
		}
		return nil, err
	}

	return newDeviceTypeResult(deviceType), nil
}

type DeleteDeviceTypeUseCase struct {
	typeRepo   catalog.DeviceTypeRepository
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewDeleteDeviceTypeUseCase(
	typeRepo catalog.DeviceTypeRepository,
	deviceRepo device.Repository,
	logger logger.Interface,
) *DeleteDeviceTypeUseCase {
	return &DeleteDeviceTypeUseCase{typeRepo: typeRepo, deviceRepo: deviceRepo, logger: logger}
}

func (uc *DeleteDeviceTypeUseCase) Execute(ctx context.Context, deviceTypeID uint) error {
	deviceType, err := uc.typeRepo.GetByID(ctx, deviceTypeID)
	if err != nil {
		return err
	}
	if deviceType == nil {
		return errors.NewNotFoundError("device type not found")
	}

	count, err := uc.deviceRepo.CountByDeviceTypeID(ctx, deviceTypeID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError("device type is referenced by existing devices")
	}

	if err := uc.typeRepo.Delete(ctx, deviceTypeID); err != nil {
		return err
	}

	uc.logger.Infow("device type deleted", "id", deviceTypeID, "name", deviceType.Name())
	return nil
}

type ListDeviceTypesCommand struct {
	Skip  int
	Limit int
}

type ListDeviceTypesUseCase struct {
	typeRepo catalog.DeviceTypeRepository
	logger   logger.Interface
}

func NewListDeviceTypesUseCase(typeRepo catalog.DeviceTypeRepository, logger logger.Interface) *ListDeviceTypesUseCase {
	return &ListDeviceTypesUseCase{typeRepo: typeRepo, logger: logger}
}

func (uc *ListDeviceTypesUseCase) Execute(ctx context.Context, cmd ListDeviceTypesCommand) ([]*DeviceTypeResult, error) {
	p := utils.ValidatePagination(cmd.Skip, cmd.Limit)

	types, err := uc.typeRepo.List(ctx, p.Skip, p.Limit)
	if err != nil {
		return nil, err
	}

	results := make([]*DeviceTypeResult, 0, len(types))
	for _, dt := range types {
		results = append(results, newDeviceTypeResult(dt))
	}
	return results, nil
}
