// api/audit/service.go
package audit

import (
	"context"
	"time"
)

type Service interface {
	LogEvent(ctx context.Context, event Event) error
	QueryEvents(ctx context.Context, from, to time.Time, username, action string) ([]Event, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogEvent(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return s.repo.LogEvent(ctx, event)
}

func (s *service) QueryEvents(ctx context.Context, from, to time.Time, username, action string) ([]Event, error) {
	return s.repo.QueryEvents(ctx, from, to, username, action)
}
