package sendgrid

import (
	"html/template"
	"net/http"

	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/utils"
	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

var templatePreviewEmailTemplatePath = "templates/emails/templatePreview_email.gohtml"

type sendgridEmailService struct {
	*sendgrid.Client
	logger *zap.Logger
	cfg    *config.AppConfig

	templatePreviewEmailTemplate *template.Template
}

// NewSendgridEmailService creates an EmailService that delivers through Sendgrid
func NewSendgridEmailService(logger *zap.Logger, cfg *config.AppConfig, client *sendgrid.Client) (services.EmailService, error) {
	templatePreviewEmailTemplate, err := utils.LoadTemplate("template preview", templatePreviewEmailTemplatePath)
	if err != nil {
		return nil, errors.Wrap(err, "could not load template preview template")
	}

	return &sendgridEmailService{
		Client:                       client,
		logger:                       logger,
		cfg:                          cfg,
		templatePreviewEmailTemplate: templatePreviewEmailTemplate,
	}, nil
}

func (s *sendgridEmailService) SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error {
	from := mail.NewEmail(senderName, senderEmail)
	to := mail.NewEmail(recipientName, recipientEmail)
	message := mail.NewSingleEmail(from, subject, to, plainTextBody, htmlBody)
	response, err := s.Send(message)

	if err != nil {
		s.logger.Error("could not issue email request",
			zap.String("subject", subject),
			zap.String("recipient", recipientEmail),
			zap.String("sender", senderEmail),
			zap.Error(err))
		return errors.Wrap(err, "could not send email request to SendGrid")
	}

	if response.StatusCode != http.StatusAccepted {
		s.logger.Error("email request was rejected by Sendgrid",
			zap.String("subject", subject),
			zap.String("recipient", recipientEmail),
			zap.String("sender", senderEmail),
			zap.Int("response status code", response.StatusCode),
			zap.String("response body", response.Body))
		return services.ErrSendgridRejectedRequest
	}

	s.logger.Info("email request sent successfully",
		zap.String("subject", subject),
		zap.String("recipient", recipientEmail),
		zap.String("sender", senderEmail))
	return nil
}

func (s *sendgridEmailService) SendTemplatePreview(emailTemplate entities.EmailTemplate, samples map[string]string, recipientEmail string) error {
	subject, body, err := services.BuildTemplatePreviewEmail(s.templatePreviewEmailTemplate,
		s.cfg.Email.TestEmailSubjPrefix, s.cfg.Email.NoreplyEmailName, emailTemplate, samples)
	if err != nil {
		return err
	}

	return s.SendEmail(
		subject,
		body,
		"",
		s.cfg.Email.NoreplyEmailName,
		s.cfg.Email.NoreplyEmailAddr,
		"",
		recipientEmail)
}
