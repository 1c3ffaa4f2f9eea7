// Package testutils provides shared testing utilities across the application.
package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jonesrussell/gocompare/internal/content"
)

// MockReader is a mock implementation of the content.Reader interface.
type MockReader struct {
	mock.Mock
}

// NewMockReader creates a new mock content reader.
func NewMockReader() *MockReader {
	return &MockReader{}
}

// SearchDevices returns device summaries matching the query.
func (m *MockReader) SearchDevices(ctx context.Context, query string) ([]content.DeviceSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]content.DeviceSummary), args.Error(1)
}

// GetDeviceBySlug resolves a slug to a full device record.
func (m *MockReader) GetDeviceBySlug(ctx context.Context, slug string) (*content.Device, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.Device), args.Error(1)
}
