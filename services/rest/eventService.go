package rest

import (
	"context"

	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"go.uber.org/zap"
)

type eventService struct {
	logger *zap.Logger
	client backend.Client
}

// NewEventService creates a new EventService
func NewEventService(logger *zap.Logger, client backend.Client) services.EventService {
	return &eventService{
		logger: logger,
		client: client,
	}
}

func (s *eventService) GetEvents(ctx context.Context, query entities.ListQuery) ([]entities.Event, int, error) {
	return getList[entities.Event](ctx, s.client, endpoint("event", "list"), query.Values())
}

func (s *eventService) GetEventWithID(ctx context.Context, id string) (*entities.Event, error) {
	return getOne[entities.Event](ctx, s.client, endpoint("event", "detail"), id)
}
