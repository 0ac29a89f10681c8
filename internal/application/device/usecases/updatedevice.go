package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/device"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateDeviceCommand struct {
	DeviceID        uint
	Name            string
	DeviceTypeID    *uint
	InventoryNumber *string
}

type UpdateDeviceUseCase struct {
	deviceRepo device.Repository
	typeRepo   catalog.DeviceTypeRepository
	logger     logger.Interface
}

func NewUpdateDeviceUseCase(
	deviceRepo device.Repository,
	typeRepo catalog.DeviceTypeRepository,
	logger logger.Interface,
) *UpdateDeviceUseCase {
	return &UpdateDeviceUseCase{deviceRepo: deviceRepo, typeRepo: typeRepo, logger: logger}
}

func (uc *UpdateDeviceUseCase) Execute(ctx context.Context, cmd UpdateDeviceCommand) (*DeviceResult, error) {
	dev, err := uc.deviceRepo.GetByID(ctx, cmd.DeviceID)
	if err != nil {
		return nil, err
	}
	if dev == nil {
		return nil, errors.NewNotFoundError("device not found")
	}

	if err := checkDeviceReferences(ctx, uc.deviceRepo, uc.typeRepo, cmd.DeviceTypeID, cmd.InventoryNumber, dev.ID()); err != nil {
		return nil, err
	}

	if err := dev.Update(cmd.Name, cmd.DeviceTypeID, cmd.InventoryNumber); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.Update(ctx, dev); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("inventory number already exists")
		}
		return nil, err
	}

	return newDeviceResult(dev), nil
}
