package role

import (
	"testing"

	"github.com/exiby/exiby_admin/entities"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func testSetupRoleConfig() UserRoleConfig {
	return UserRoleConfig{
		string(Admin): {
			entities.EventsModule: {entities.ViewAction, entities.EditAction},
		},
		string(Support): {},
	}
}

func Test_GetRolePermissions__should_return_a_row_for_every_module(t *testing.T) {
	roleConfig := testSetupRoleConfig()

	permissions, err := roleConfig.GetRolePermissions(Admin)
	assert.NoError(t, err)

	assert.Len(t, permissions, len(entities.AdminModules))
	for i, module := range entities.AdminModules {
		assert.Equal(t, module, permissions[i].Module)
	}
}

func Test_GetRolePermissions__should_grant_configured_actions(t *testing.T) {
	roleConfig := testSetupRoleConfig()

	permissions, err := roleConfig.GetRolePermissions(Admin)
	assert.NoError(t, err)

	member := entities.TeamMember{Permissions: permissions}
	assert.True(t, member.Can(entities.EventsModule, entities.ViewAction))
	assert.True(t, member.Can(entities.EventsModule, entities.EditAction))
	assert.False(t, member.Can(entities.EventsModule, entities.DeleteAction))
	assert.False(t, member.Can(entities.TeamModule, entities.ViewAction))
}

func Test_GetRolePermissions__should_return_ErrUnknownRole_for_unknown_role(t *testing.T) {
	roleConfig := testSetupRoleConfig()

	_, err := roleConfig.GetRolePermissions(UserRole("intern"))

	assert.Equal(t, ErrUnknownRole, errors.Cause(err))
}

func Test_Roles__should_list_configured_roles_in_order(t *testing.T) {
	roleConfig := testSetupRoleConfig()

	assert.Equal(t, []UserRole{Admin, Support}, roleConfig.Roles())
}
