package rest

import (
	"context"
	"net/http"

	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"go.uber.org/zap"
)

const organizationResource = "organization"

type organizationService struct {
	logger *zap.Logger
	client backend.Client
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(logger *zap.Logger, client backend.Client) services.OrganizationService {
	return &organizationService{
		logger: logger,
		client: client,
	}
}

func (s *organizationService) GetOrganizations(ctx context.Context, query entities.ListQuery) ([]entities.Organization, int, error) {
	return getList[entities.Organization](ctx, s.client, endpoint(organizationResource, "list"), query.Values())
}

func (s *organizationService) GetOrganizationWithID(ctx context.Context, id string) (*entities.Organization, error) {
	return getOne[entities.Organization](ctx, s.client, endpoint(organizationResource, "detail"), id)
}

func (s *organizationService) CreateOrganization(ctx context.Context, organization entities.Organization) (*entities.Organization, error) {
	created, err := create(ctx, s.client, endpoint(organizationResource, "add"), organization)
	if err != nil {
		return nil, err
	}
	s.logger.Info("organization created", zap.String("id", created.ID), zap.String("email", created.OrgUser.Email))
	return created, nil
}

func (s *organizationService) UpdateOrganizationWithID(ctx context.Context, id string, organization entities.Organization) error {
	return sendWithID(ctx, s.client, http.MethodPut, endpoint(organizationResource, "update"), id, organization)
}

func (s *organizationService) SetOrganizationStatus(ctx context.Context, id string, active bool) error {
	return sendWithID(ctx, s.client, http.MethodPut, endpoint(organizationResource, "status"), id, statusUpdate{Status: active})
}

func (s *organizationService) DeleteOrganizationWithID(ctx context.Context, id string) error {
	return sendWithID(ctx, s.client, http.MethodDelete, endpoint(organizationResource, "delete"), id, nil)
}

func (s *organizationService) GetDeletedOrganizations(ctx context.Context, query entities.ListQuery) ([]entities.Organization, int, error) {
	return getList[entities.Organization](ctx, s.client, endpoint(organizationResource, "deleted_list"), query.Values())
}

func (s *organizationService) RestoreOrganizationWithID(ctx context.Context, id string) error {
	return sendWithID(ctx, s.client, http.MethodPut, endpoint(organizationResource, "restore"), id, nil)
}

func (s *organizationService) PermanentlyDeleteOrganizationWithID(ctx context.Context, id string) error {
	err := sendWithID(ctx, s.client, http.MethodDelete, endpoint(organizationResource, "permanent_delete"), id, nil)
	if err == nil {
		s.logger.Info("organization permanently deleted", zap.String("id", id))
	}
	return err
}
