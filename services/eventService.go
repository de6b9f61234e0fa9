package services

import (
	"context"

	"github.com/exiby/exiby_admin/entities"
)

// EventService gives read access to the events hosted on the platform
type EventService interface {
	GetEvents(ctx context.Context, query entities.ListQuery) ([]entities.Event, int, error)
	GetEventWithID(ctx context.Context, id string) (*entities.Event, error)
}
