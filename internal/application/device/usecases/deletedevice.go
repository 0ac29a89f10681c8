package usecases

import (
	"context"

	"helpdesk/internal/domain/device"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteDeviceUseCase struct {
	deviceRepo device.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteDeviceUseCase(
	deviceRepo device.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeleteDeviceUseCase {
	return &DeleteDeviceUseCase{deviceRepo: deviceRepo, ticketRepo: ticketRepo, logger: logger}
}

func (uc *DeleteDeviceUseCase) Execute(ctx context.Context, deviceID uint) error {
	dev, err := uc.deviceRepo.GetByID(ctx, deviceID)
	if err != nil {
		return err
	}
	if dev == nil {
		return errors.NewNotFoundError("device not found")
	}

	count, err := uc.ticketRepo.CountByDeviceID(ctx, deviceID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.NewConflictError("device is referenced by existing tickets")
	}

	if err := uc.deviceRepo.Delete(ctx, deviceID); err != nil {
		return err
	}

	uc.logger.Infow("device deleted", "id", deviceID, "name", dev.Name())
	return nil
}
