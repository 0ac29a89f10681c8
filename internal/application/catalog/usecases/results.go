package usecases

import "helpdesk/internal/domain/catalog"

type DeviceTypeResult struct {
	ID   uint
	Name string
}

func newDeviceTypeResult(dt *catalog.DeviceType) *DeviceTypeResult {
	return &DeviceTypeResult{ID: dt.ID(), Name: dt.Name()}
}

type PriorityResult struct {
	ID           uint
	Name         string
	DisplayOrder *int
}

func newPriorityResult(p *catalog.Priority) *PriorityResult {
	return &PriorityResult{ID: p.ID(), Name: p.Name(), DisplayOrder: p.DisplayOrder()}
}

type StatusResult struct {
	ID           uint
	Name         string
	DisplayOrder *int
	IsFinal      bool
}

func newStatusResult(s *catalog.Status) *StatusResult {
	return &StatusResult{ID: s.ID(), Name: s.Name(), DisplayOrder: s.DisplayOrder(), IsFinal: s.IsFinal()}
}
