package smtp

import (
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/environment"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	templatePreviewEmailTemplatePath = "templates/emails/templatePreview_email.gohtml"
	htmlEmailTemplateStr             = `From: %s <%s>
To: %s <%s>
Subject: %s
Mime-Version: 1.0;
Content-Type: text/html; charset="UTF-8";
Content-Transfer-Encoding: 8bit;

%s
`
)

type smtpEmailService struct {
	logger *zap.Logger
	cfg    *config.AppConfig
	env    *environment.Env
	client utils.SMTPClient

	smtpAuth                     smtp.Auth
	templatePreviewEmailTemplate *template.Template
}

// NewSMTPEmailService creates an EmailService that delivers through the SMTP server in the environment
func NewSMTPEmailService(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, client utils.SMTPClient) (services.EmailService, error) {
	templatePreviewEmailTemplate, err := utils.LoadTemplate("template preview", templatePreviewEmailTemplatePath)
	if err != nil {
		return nil, errors.Wrap(err, "could not load template preview template")
	}

	return &smtpEmailService{
		logger:                       logger,
		cfg:                          cfg,
		env:                          env,
		client:                       client,
		templatePreviewEmailTemplate: templatePreviewEmailTemplate,
		smtpAuth: smtp.PlainAuth("", env.Get(environment.SMTPUsername),
			env.Get(environment.SMTPPassword), env.Get(environment.SMTPHost)),
	}, nil
}

func (s *smtpEmailService) SendEmail(subject, htmlBody, plainTextBody, senderName, senderEmail, recipientName, recipientEmail string) error {
	message := fmt.Sprintf(htmlEmailTemplateStr, senderName, senderEmail, recipientName, recipientEmail, subject, htmlBody)

	err := s.client.SendEmail(fmt.Sprintf("%s:%s", s.env.Get(environment.SMTPHost), s.env.Get(environment.SMTPPort)),
		s.smtpAuth, senderEmail, []string{recipientEmail}, []byte(message))
	if err != nil {
		s.logger.Error("could not send email",
			zap.String("subject", subject),
			zap.String("recipient", recipientEmail),
			zap.Error(err))
		return errors.Wrap(err, "could not send email")
	}

	s.logger.Info("email sent successfully",
		zap.String("subject", subject),
		zap.String("recipient", recipientEmail))
	return nil
}

func (s *smtpEmailService) SendTemplatePreview(emailTemplate entities.EmailTemplate, samples map[string]string, recipientEmail string) error {
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
		recipientEmail,
		recipientEmail)
}
