package multiplexers

import (
	"fmt"

	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/environment"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/services/multiplexers/types"
	"github.com/exiby/exiby_admin/services/sendgrid"
	smtplib "github.com/exiby/exiby_admin/services/smtp"
	"github.com/exiby/exiby_admin/utils"
	"github.com/pkg/errors"
	sendgridgo "github.com/sendgrid/sendgrid-go"
	"go.uber.org/zap"
)

// NewEmailService picks the EmailService implementation for the configured delivery provider
func NewEmailService(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, smtpClient utils.SMTPClient,
	sendGridClient *sendgridgo.Client) (services.EmailService, error) {
	switch cfg.Email.EmailDeliveryProvider {
	case types.SMTP:
		return smtplib.NewSMTPEmailService(logger, cfg, env, smtpClient)
	case types.SendGrid:
		return sendgrid.NewSendgridEmailService(logger, cfg, sendGridClient)
	default:
		return nil, errors.New(fmt.Sprintf("email delivery provider %s is invalid", cfg.Email.EmailDeliveryProvider))
	}
}
