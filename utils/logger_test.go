package utils

import (
	"testing"

	"github.com/exiby/exiby_admin/environment"
	"github.com/exiby/exiby_admin/testutils"
	"github.com/stretchr/testify/assert"
)

func Test_NewLogger__should_not_throw_error_when_ENVIRONMENT_not_set(t *testing.T) {
	restore := testutils.UnsetVars(environment.Environment)
	defer restore()

	logger, err := NewLogger()
	assert.NoError(t, err)
	assert.NotNil(t, logger)
}

func Test_NewLogger__should_not_throw_error_when_ENVIRONMENT_is_set_to_prod(t *testing.T) {
	restore := testutils.SetEnvVars(map[string]string{environment.Environment: "prod"})
	defer restore()

	logger, err := NewLogger()
	assert.NoError(t, err)
	assert.NotNil(t, logger)
}
