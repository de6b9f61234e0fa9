package services

import (
	"context"

	"github.com/exiby/exiby_admin/entities"
)

// OrganizationService is the service for interactions with organizations stored by the backend
type OrganizationService interface {
	GetOrganizations(ctx context.Context, query entities.ListQuery) ([]entities.Organization, int, error)
	GetOrganizationWithID(ctx context.Context, id string) (*entities.Organization, error)

	CreateOrganization(ctx context.Context, organization entities.Organization) (*entities.Organization, error)
	UpdateOrganizationWithID(ctx context.Context, id string, organization entities.Organization) error
	SetOrganizationStatus(ctx context.Context, id string, active bool) error

	DeleteOrganizationWithID(ctx context.Context, id string) error
	GetDeletedOrganizations(ctx context.Context, query entities.ListQuery) ([]entities.Organization, int, error)
	RestoreOrganizationWithID(ctx context.Context, id string) error
	PermanentlyDeleteOrganizationWithID(ctx context.Context, id string) error
}
