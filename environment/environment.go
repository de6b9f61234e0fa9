package environment

import (
	"os"

	"go.uber.org/zap"
)

// names of env vars
const (
	Environment      = "ENVIRONMENT"
	Port             = "PORT"
	ConfigDir        = "CONFIG_DIR"
	BackendURL       = "BACKEND_URL"
	BackendAuthToken = "BACKEND_AUTH_TOKEN"
	SessionSecret    = "SESSION_SECRET"
	MongoHost        = "MONGO_HOST"
	MongoDatabase    = "MONGO_DATABASE"
	MongoUser        = "MONGO_USER"
	MongoPassword    = "MONGO_PASSWORD"
	SendgridAPIKey   = "SENDGRID_API_KEY"
	SMTPHost         = "SMTP_HOST"
	SMTPPort         = "SMTP_PORT"
	SMTPUsername     = "SMTP_USERNAME"
	SMTPPassword     = "SMTP_PASSWORD"
)

var envVars = []string{
	Environment,
	Port,
	ConfigDir,
	BackendURL,
	BackendAuthToken,
	SessionSecret,
	MongoHost,
	MongoDatabase,
	MongoUser,
	MongoPassword,
	SendgridAPIKey,
	SMTPHost,
	SMTPPort,
	SMTPUsername,
	SMTPPassword,
}

// NewEnv creates an Env with loaded environment variables
func NewEnv(logger *zap.Logger) *Env {
	env := Env{
		vars: make(map[string]string, len(envVars)),
	}
	for _, name := range envVars {
		env.vars[name] = valueOfEnvVar(logger, name)
	}
	return &env
}

// NewEnvWithVars creates an Env holding exactly the given variables
func NewEnvWithVars(vars map[string]string) *Env {
	copied := make(map[string]string, len(vars))
	for name, value := range vars {
		copied[name] = value
	}
	return &Env{vars: copied}
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

func valueOfEnvVar(logger *zap.Logger, varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Warn("expected environment variable not defined", zap.String("var", varName))
	}

	return envVar
}
