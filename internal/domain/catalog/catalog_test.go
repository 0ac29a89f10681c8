package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestNewDeviceType(t *testing.T) {
	dt, err := NewDeviceType("  Laptop  ")
	require.NoError(t, err)
	assert.Equal(t, "Laptop", dt.Name())

	_, err = NewDeviceType("   ")
	assert.Error(t, err)

	_, err = NewDeviceType(strings.Repeat("x", 256))
	assert.Error(t, err)
}

func TestNewStatus(t *testing.T) {
	s, err := NewStatus("Closed", intPtr(3), true)
	require.NoError(t, err)
	assert.True(t, s.IsFinal())
	assert.Equal(t, 3, *s.DisplayOrder())

	_, err = NewStatus("", nil, false)
	assert.Error(t, err)
}

func TestStatusUpdate(t *testing.T) {
	s, err := NewStatus("New", intPtr(1), false)
	require.NoError(t, err)

	require.NoError(t, s.Update("Reopened", intPtr(4), false))
	assert.Equal(t, "Reopened", s.Name())
	assert.False(t, s.IsFinal())

	assert.Error(t, s.Update("", nil, false))
}

func TestPriorityUpdate(t *testing.T) {
	p, err := NewPriority("Low", intPtr(1))
	require.NoError(t, err)

	require.NoError(t, p.Update("Lowest", nil))
	assert.Equal(t, "Lowest", p.Name())
	assert.Nil(t, p.DisplayOrder())
}
