package rest

import (
	"context"
	"net/http"

	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/utils/templatevars"
	"go.uber.org/zap"
)

const emailTemplateResource = "email_template"

type emailTemplateService struct {
	logger *zap.Logger
	client backend.Client
}

// NewEmailTemplateService creates a new EmailTemplateService
func NewEmailTemplateService(logger *zap.Logger, client backend.Client) services.EmailTemplateService {
	return &emailTemplateService{
		logger: logger,
		client: client,
	}
}

func (s *emailTemplateService) GetEmailTemplates(ctx context.Context, query entities.ListQuery) ([]entities.EmailTemplate, int, error) {
	return getList[entities.EmailTemplate](ctx, s.client, endpoint(emailTemplateResource, "list"), query.Values())
}

func (s *emailTemplateService) GetEmailTemplateWithID(ctx context.Context, id string) (*entities.EmailTemplate, error) {
	return getOne[entities.EmailTemplate](ctx, s.client, endpoint(emailTemplateResource, "detail"), id)
}

func (s *emailTemplateService) CreateEmailTemplate(ctx context.Context, template entities.EmailTemplate) (*entities.EmailTemplate, error) {
	template.Variables = templatevars.Extract(template.Content)
	return create(ctx, s.client, endpoint(emailTemplateResource, "add"), template)
}

func (s *emailTemplateService) UpdateEmailTemplateWithID(ctx context.Context, id string, template entities.EmailTemplate) error {
	template.Variables = templatevars.Extract(template.Content)
	return sendWithID(ctx, s.client, http.MethodPut, endpoint(emailTemplateResource, "update"), id, template)
}

func (s *emailTemplateService) DeleteEmailTemplateWithID(ctx context.Context, id string) error {
	return sendWithID(ctx, s.client, http.MethodDelete, endpoint(emailTemplateResource, "delete"), id, nil)
}
