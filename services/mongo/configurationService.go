package mongo

import (
	"context"
	"strings"

	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/repositories"
	"github.com/exiby/exiby_admin/services"
	"github.com/exiby/exiby_admin/utils"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	emailGatewaySettingKey   = "email_gateway"
	paymentGatewaySettingKey = "payment_gateway"
	legalDocumentKeyPrefix   = "legal_document."
)

var legalDocumentTitles = map[entities.LegalDocumentKind]string{
	entities.TermsOfService: "Terms of Service",
	entities.PrivacyPolicy:  "Privacy Policy",
	entities.RefundPolicy:   "Refund Policy",
}

type mongoConfigurationService struct {
	logger             *zap.Logger
	settingsRepository *repositories.SettingsRepository
	timeProvider       utils.TimeProvider
}

// NewMongoConfigurationService creates a new ConfigurationService that uses MongoDB as the storage technology
func NewMongoConfigurationService(logger *zap.Logger, settingsRepository *repositories.SettingsRepository,
	timeProvider utils.TimeProvider) services.ConfigurationService {
	return &mongoConfigurationService{
		logger:             logger,
		settingsRepository: settingsRepository,
		timeProvider:       timeProvider,
	}
}

func (s *mongoConfigurationService) GetEmailGatewayConfig(ctx context.Context) (*entities.EmailGatewayConfig, error) {
	var cfg entities.EmailGatewayConfig
	if err := s.load(ctx, emailGatewaySettingKey, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *mongoConfigurationService) SaveEmailGatewayConfig(ctx context.Context, cfg entities.EmailGatewayConfig) error {
	if cfg.Password == "" {
		current, err := s.GetEmailGatewayConfig(ctx)
		if err != nil {
			return err
		}
		cfg.Password = current.Password
	}
	cfg.UpdatedAt = s.timeProvider.Now()

	return s.save(ctx, emailGatewaySettingKey, cfg)
}

func (s *mongoConfigurationService) GetPaymentGatewayConfig(ctx context.Context) (*entities.PaymentGatewayConfig, error) {
	var cfg entities.PaymentGatewayConfig
	if err := s.load(ctx, paymentGatewaySettingKey, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *mongoConfigurationService) SavePaymentGatewayConfig(ctx context.Context, cfg entities.PaymentGatewayConfig) error {
	if cfg.SecretKey == "" || cfg.WebhookSecret == "" {
		current, err := s.GetPaymentGatewayConfig(ctx)
		if err != nil {
			return err
		}
		if cfg.SecretKey == "" {
			cfg.SecretKey = current.SecretKey
		}
		if cfg.WebhookSecret == "" {
			cfg.WebhookSecret = current.WebhookSecret
		}
	}
	cfg.Currency = strings.ToUpper(cfg.Currency)
	cfg.UpdatedAt = s.timeProvider.Now()

	return s.save(ctx, paymentGatewaySettingKey, cfg)
}

func (s *mongoConfigurationService) GetLegalDocument(ctx context.Context, kind entities.LegalDocumentKind) (*entities.LegalDocument, error) {
	if !kind.Valid() {
		return nil, services.ErrInvalidLegalDocumentKind
	}

	document := entities.LegalDocument{
		Kind:  kind,
		Title: legalDocumentTitles[kind],
	}
	if err := s.load(ctx, legalDocumentKeyPrefix+string(kind), &document); err != nil {
		return nil, err
	}
	return &document, nil
}

func (s *mongoConfigurationService) SaveLegalDocument(ctx context.Context, document entities.LegalDocument) error {
	if !document.Kind.Valid() {
		return services.ErrInvalidLegalDocumentKind
	}
	if strings.TrimSpace(document.Title) == "" {
		document.Title = legalDocumentTitles[document.Kind]
	}
	document.UpdatedAt = s.timeProvider.Now()

	return s.save(ctx, legalDocumentKeyPrefix+string(document.Kind), document)
}

// load decodes the value of the setting with key into v.
// v is left untouched when the setting was never saved.
func (s *mongoConfigurationService) load(ctx context.Context, key string, v interface{}) error {
	res := s.settingsRepository.FindOne(ctx, bson.M{repositories.SettingKey: key})

	var doc struct {
		Value bson.Raw `bson:"value"`
	}
	err := res.Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil
	} else if err != nil {
		return errors.Wrapf(err, "could not query for setting %s", key)
	}

	if err := bson.Unmarshal(doc.Value, v); err != nil {
		return errors.Wrapf(err, "could not decode setting %s", key)
	}
	return nil
}

func (s *mongoConfigurationService) save(ctx context.Context, key string, value interface{}) error {
	_, err := s.settingsRepository.UpdateOne(ctx,
		bson.M{repositories.SettingKey: key},
		bson.M{"$set": bson.M{"value": value}},
		options.Update().SetUpsert(true))
	if err != nil {
		return errors.Wrapf(err, "could not save setting %s", key)
	}

	s.logger.Info("setting saved", zap.String("key", key))
	return nil
}
