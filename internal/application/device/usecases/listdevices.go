package usecases

import (
	"context"

	"helpdesk/internal/domain/device"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListDevicesCommand struct {
	Skip         int
	Limit        int
	Name         string
	DeviceTypeID *uint
}

type ListDevicesResult struct {
	Devices []*DeviceResult
	Total   int64
	Skip    int
	Limit   int
}

type ListDevicesUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewListDevicesUseCase(deviceRepo device.Repository, logger logger.Interface) *ListDevicesUseCase {
	return &ListDevicesUseCase{deviceRepo: deviceRepo, logger: logger}
}

func (uc *ListDevicesUseCase) Execute(ctx context.Context, cmd ListDevicesCommand) (*ListDevicesResult, error) {
	p := utils.ValidatePagination(cmd.Skip, cmd.Limit)

	devices, total, err := uc.deviceRepo.List(ctx, device.ListFilter{
		Skip:         p.Skip,
		Limit:        p.Limit,
		Name:         cmd.Name,
		DeviceTypeID: cmd.DeviceTypeID,
	})
	if err != nil {
		return nil, err
	}

	results := make([]*DeviceResult, 0, len(devices))
	for _, dev := range devices {
		results = append(results, newDeviceResult(dev))
	}

	return &ListDevicesResult{
		Devices: results,
		Total:   total,
		Skip:    p.Skip,
		Limit:   p.Limit,
	}, nil
}
