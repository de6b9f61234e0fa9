package services

import (
	"context"

	"github.com/exiby/exiby_admin/entities"
)

// ConfigurationService stores the platform configuration edited on the configuration pages
type ConfigurationService interface {
	GetEmailGatewayConfig(ctx context.Context) (*entities.EmailGatewayConfig, error)
	SaveEmailGatewayConfig(ctx context.Context, cfg entities.EmailGatewayConfig) error

	GetPaymentGatewayConfig(ctx context.Context) (*entities.PaymentGatewayConfig, error)
	SavePaymentGatewayConfig(ctx context.Context, cfg entities.PaymentGatewayConfig) error

	GetLegalDocument(ctx context.Context, kind entities.LegalDocumentKind) (*entities.LegalDocument, error)
	SaveLegalDocument(ctx context.Context, document entities.LegalDocument) error
}
