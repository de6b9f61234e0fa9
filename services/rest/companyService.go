package rest

import (
	"context"
	"net/http"

	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"go.uber.org/zap"
)

const companyResource = "company"

type companyService struct {
	logger *zap.Logger
	client backend.Client
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(logger *zap.Logger, client backend.Client) services.CompanyService {
	return &companyService{
		logger: logger,
		client: client,
	}
}

func (s *companyService) GetCompanies(ctx context.Context, query entities.ListQuery) ([]entities.Company, int, error) {
	return getList[entities.Company](ctx, s.client, endpoint(companyResource, "list"), query.Values())
}

func (s *companyService) GetCompanyWithID(ctx context.Context, id string) (*entities.Company, error) {
	return getOne[entities.Company](ctx, s.client, endpoint(companyResource, "detail"), id)
}

func (s *companyService) CreateCompany(ctx context.Context, company entities.Company) (*entities.Company, error) {
	created, err := create(ctx, s.client, endpoint(companyResource, "add"), company)
	if err != nil {
		return nil, err
	}
	s.logger.Info("company created", zap.String("id", created.ID), zap.String("email", created.OrgUser.Email))
	return created, nil
}

func (s *companyService) UpdateCompanyWithID(ctx context.Context, id string, company entities.Company) error {
	return sendWithID(ctx, s.client, http.MethodPut, endpoint(companyResource, "update"), id, company)
}

func (s *companyService) SetCompanyStatus(ctx context.Context, id string, active bool) error {
	return sendWithID(ctx, s.client, http.MethodPut, endpoint(companyResource, "status"), id, statusUpdate{Status: active})
}

func (s *companyService) DeleteCompanyWithID(ctx context.Context, id string) error {
	return sendWithID(ctx, s.client, http.MethodDelete, endpoint(companyResource, "delete"), id, nil)
}

func (s *companyService) GetDeletedCompanies(ctx context.Context, query entities.ListQuery) ([]entities.Company, int, error) {
	return getList[entities.Company](ctx, s.client, endpoint(companyResource, "deleted_list"), query.Values())
}

func (s *companyService) RestoreCompanyWithID(ctx context.Context, id string) error {
	return sendWithID(ctx, s.client, http.MethodPut, endpoint(companyResource, "restore"), id, nil)
}

func (s *companyService) PermanentlyDeleteCompanyWithID(ctx context.Context, id string) error {
	err := sendWithID(ctx, s.client, http.MethodDelete, endpoint(companyResource, "permanent_delete"), id, nil)
	if err == nil {
		s.logger.Info("company permanently deleted", zap.String("id", id))
	}
	return err
}
