package usecases

import (
	"context"

	"helpdesk/internal/domain/device"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewGetDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *GetDeviceUseCase {
	return &GetDeviceUseCase{deviceRepo: deviceRepo, logger: logger}
}

func (uc *GetDeviceUseCase) Execute(ctx context.Context, deviceID uint) (*DeviceResult, error) {
	dev, err := uc.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if dev == nil {
		return nil, errors.NewNotFoundError("device not found")
	}

	return newDeviceResult(dev), nil
}
