// test/mock/audit.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-anuragv/skillboard/api/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogEvent(ctx context.Context, event audit.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditService) QueryEvents(ctx context.Context, from, to time.Time, username, action string) ([]audit.Event, error) {
	args := m.Called(ctx, from, to, username, action)
	return args.Get(0).([]audit.Event), args.Error(1)
}
