package services

import (
	"context"

	"github.com/exiby/exiby_admin/entities"
)

// EmailTemplateService is the service for interactions with email templates.
// Variables of created and updated templates are derived from their content.
type EmailTemplateService interface {
	GetEmailTemplates(ctx context.Context, query entities.ListQuery) ([]entities.EmailTemplate, int, error)
	GetEmailTemplateWithID(ctx context.Context, id string) (*entities.EmailTemplate, error)
	CreateEmailTemplate(ctx context.Context, template entities.EmailTemplate) (*entities.EmailTemplate, error)
	UpdateEmailTemplateWithID(ctx context.Context, id string, template entities.EmailTemplate) error
	DeleteEmailTemplateWithID(ctx context.Context, id string) error
}
