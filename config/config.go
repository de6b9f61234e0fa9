package config

import (
	"path/filepath"

	"github.com/exiby/exiby_admin/config/role"
	"github.com/exiby/exiby_admin/environment"
	"github.com/exiby/exiby_admin/services/multiplexers/types"
	"github.com/pkg/errors"
	"go.uber.org/config"
)

// AdminConfig holds the credentials checked by the login form
type AdminConfig struct {
	ID           string `yaml:"id"`
	Email        string `yaml:"email"`
	Name         string `yaml:"name"`
	Role         string `yaml:"role"`
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
	// LoginDelay is the simulated network latency of a login attempt, in milliseconds
	LoginDelay int64 `yaml:"login_delay"`
}

// SessionConfig configures the session cookies
type SessionConfig struct {
	// Lifetime of the session in seconds
	Lifetime int64 `yaml:"lifetime"`
	Secure   bool  `yaml:"secure"`
}

// BackendConfig configures the REST backend client
type BackendConfig struct {
	// Timeout of a single backend request in seconds
	Timeout int64 `yaml:"timeout"`
}

// PaginationConfig configures the list pages
type PaginationConfig struct {
	DefaultPageSize int   `yaml:"default_page_size"`
	PageSizeOptions []int `yaml:"page_size_options"`
}

// SoftDeleteConfig configures the trash views
type SoftDeleteConfig struct {
	RetentionDays int `yaml:"retention_days"`
}

// ExportConfig configures the CSV exports
type ExportConfig struct {
	MaxRows int `yaml:"max_rows"`
}

// EmailConfig configures outgoing email
type EmailConfig struct {
	EmailDeliveryProvider types.EmailDeliveryProvider `yaml:"email_delivery_provider"`
	NoreplyEmailName      string                      `yaml:"noreply_email_name"`
	NoreplyEmailAddr      string                      `yaml:"noreply_email_addr"`
	TestEmailSubjPrefix   string                      `yaml:"test_email_subj_prefix"`
}

// EmailTemplatesConfig configures the email template editor
type EmailTemplatesConfig struct {
	Types        []string          `yaml:"types"`
	SampleValues map[string]string `yaml:"sample_values"`
}

// NotificationSeed is a notification every admin starts with
type NotificationSeed struct {
	ID      string `yaml:"id"`
	Type    string `yaml:"type"`
	Title   string `yaml:"title"`
	Message string `yaml:"message"`
	Read    bool   `yaml:"read"`
	// Age of the notification when the portal starts, in minutes
	Age int64 `yaml:"age"`
}

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name           string               `yaml:"name"`
	AppURL         string               `yaml:"app_url"`
	Admin          AdminConfig          `yaml:"admin"`
	Session        SessionConfig        `yaml:"session"`
	Backend        BackendConfig        `yaml:"backend"`
	Pagination     PaginationConfig     `yaml:"pagination"`
	SoftDelete     SoftDeleteConfig     `yaml:"soft_delete"`
	Export         ExportConfig         `yaml:"export"`
	Email          EmailConfig          `yaml:"email"`
	EmailTemplates EmailTemplatesConfig `yaml:"email_templates"`
	Notifications  []NotificationSeed   `yaml:"notifications"`
	Roles          role.UserRoleConfig  `yaml:"roles"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	dir := env.Get(environment.ConfigDir)
	if dir == "" {
		dir = "."
	}

	configFiles := []config.YAMLOption{config.File(filepath.Join(dir, "base.yaml"))}
	if env.Get(environment.Environment) == "prod" {
		configFiles = append(configFiles, config.File(filepath.Join(dir, "production.yaml")))
	} else if env.Get(environment.Environment) == "dev" {
		configFiles = append(configFiles, config.File(filepath.Join(dir, "development.yaml")))
	}
	configProvider, err := config.NewYAML(configFiles...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate config")
	}

	return &cfg, nil
}
