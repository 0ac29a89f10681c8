// Package usecases implements device registry operations. Device IDs
// come from the external asset system, so create takes the ID from the
// caller instead of relying on auto increment.
package usecases

import (
	"context"

	"helpdesk/internal/domain/catalog"
	"helpdesk/internal/domain/device"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateDeviceCommand struct {
	DeviceID        uint
	Name            string
	DeviceTypeID    *uint
	InventoryNumber *string
}

type CreateDeviceUseCase struct {
	deviceRepo device.Repository
	typeRepo   catalog.DeviceTypeRepository
	logger     logger.Interface
}

func NewCreateDeviceUseCase(
	deviceRepo device.Repository,
	typeRepo catalog.DeviceTypeRepository,
	logger logger.Interface,
) *CreateDeviceUseCase {
	return &CreateDeviceUseCase{deviceRepo: deviceRepo, typeRepo: typeRepo, logger: logger}
}

func (uc *CreateDeviceUseCase) Execute(ctx context.Context, cmd CreateDeviceCommand) (*DeviceResult, error) {
	existing, err := uc.deviceRepo.GetByID(ctx, cmd.DeviceID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.NewConflictError("device ID already exists")
	}

	if err := uc.checkReferences(ctx, cmd.DeviceTypeID, cmd.InventoryNumber, cmd.DeviceID); err != nil {
		return nil, err
	}

	dev, err := device.NewDevice(cmd.DeviceID, cmd.Name, cmd.DeviceTypeID, cmd.InventoryNumber)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.Create(ctx, dev); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("device ID or inventory number already exists")
		}
		return nil, err
	}

	uc.logger.Infow("device registered", "id", dev.ID(), "name", dev.Name())
	return newDeviceResult(dev), nil
}

func (uc *CreateDeviceUseCase) checkReferences(ctx context.Context, deviceTypeID *uint, inventoryNumber *string, selfID uint) error {
	return checkDeviceReferences(ctx, uc.deviceRepo, uc.typeRepo, deviceTypeID, inventoryNumber, selfID)
}

// checkDeviceReferences validates the optional device type and the
// unique-when-present inventory number. selfID excludes the device
// being updated from the inventory number collision check.
func checkDeviceReferences(
	ctx context.Context,
	deviceRepo device.Repository,
	typeRepo catalog.DeviceTypeRepository,
	deviceTypeID *uint,
	inventoryNumber *string,
	selfID uint,
) error {
	if deviceTypeID != nil {
		deviceType, err := typeRepo.GetByID(ctx, *deviceTypeID)
		if err != nil {
			return err
		}
		if deviceType == nil {
			return errors.NewBadRequestError("device type not found")
		}
	}

	if inventoryNumber != nil && *inventoryNumber != "" {
		other, err := deviceRepo.GetByInventoryNumber(ctx, *inventoryNumber)
		if err != nil {
			return err
		}
		if other != nil && other.ID() != selfID {
			return errors.NewConflictError("inventory number already exists")
		}
	}

	return nil
}
