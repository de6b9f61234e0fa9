package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_TeamMember_UnmarshalJSON__should_decode_role_and_permission_matrix(t *testing.T) {
	var member TeamMember
	err := json.Unmarshal([]byte(`{"_id":"1","first_name":"Ada","last_name":"Lovelace","email":"ada@exiby.com",
		"role":"admin","permissions":[{"module":"events","view":true,"edit":true}]}`), &member)
	assert.NoError(t, err)

	assert.Equal(t, "Ada Lovelace", member.FullName())
	assert.True(t, member.Can(EventsModule, ViewAction))
	assert.True(t, member.Can(EventsModule, EditAction))
	assert.False(t, member.Can(EventsModule, DeleteAction))
	assert.False(t, member.Can(TeamModule, ViewAction))
}

func Test_TeamMember_UnmarshalJSON__should_normalise_name_and_access_list(t *testing.T) {
	var member TeamMember
	err := json.Unmarshal([]byte(`{"_id":"2","name":"Grace Brewster Hopper","email":"grace@exiby.com",
		"access":["organizations","companies"]}`), &member)
	assert.NoError(t, err)

	assert.Equal(t, "Grace", member.FirstName)
	assert.Equal(t, "Brewster Hopper", member.LastName)
	assert.Equal(t, []ModulePermission{
		{Module: OrganizationsModule, View: true},
		{Module: CompaniesModule, View: true},
	}, member.Permissions)
}

func Test_TeamMember_UnmarshalJSON__should_prefer_explicit_names_and_permissions(t *testing.T) {
	var member TeamMember
	err := json.Unmarshal([]byte(`{"first_name":"Ada","name":"Someone Else",
		"permissions":[{"module":"team","view":true}],"access":["events"]}`), &member)
	assert.NoError(t, err)

	assert.Equal(t, "Ada", member.FullName())
	assert.Equal(t, []ModulePermission{{Module: TeamModule, View: true}}, member.Permissions)
}

func Test_ModulePermission_Grant__should_allow_only_the_granted_action(t *testing.T) {
	permission := ModulePermission{Module: EventsModule}.Grant(CreateAction)

	for _, action := range PermissionActions {
		assert.Equal(t, action == CreateAction, permission.Allows(action), string(action))
	}
}

func Test_Notifications_UnreadCount(t *testing.T) {
	notifications := Notifications{{ID: "1"}, {ID: "2", Read: true}, {ID: "3"}}

	assert.Equal(t, 2, notifications.UnreadCount())
}

func Test_ListQuery_Values__should_only_encode_set_fields(t *testing.T) {
	assert.Equal(t, "limit=20&page=2&search=acme", ListQuery{Page: 2, Limit: 20, Search: "acme"}.Values().Encode())
	assert.Empty(t, ListQuery{}.Values())
}

func Test_LegalDocumentKind_Valid(t *testing.T) {
	assert.True(t, PrivacyPolicy.Valid())
	assert.False(t, LegalDocumentKind("cookies").Valid())
}
