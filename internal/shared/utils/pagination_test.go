package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"helpdesk/internal/shared/constants"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name          string
		skip, limit   int
		expectedSkip  int
		expectedLimit int
	}{
		{name: "defaults", skip: 0, limit: 0, expectedSkip: 0, expectedLimit: constants.DefaultLimit},
		{name: "negative skip floored", skip: -5, limit: 20, expectedSkip: 0, expectedLimit: 20},
		{name: "limit capped", skip: 10, limit: 5000, expectedSkip: 10, expectedLimit: constants.MaxLimit},
		{name: "valid values pass through", skip: 40, limit: 25, expectedSkip: 40, expectedLimit: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ValidatePagination(tt.skip, tt.limit)
			assert.Equal(t, tt.expectedSkip, p.Skip)
			assert.Equal(t, tt.expectedLimit, p.Limit)
		})
	}
}
