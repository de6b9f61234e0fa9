package entities

import (
	"encoding/json"
	"strings"
)

// Admin portal modules a team member can be granted access to
const (
	OrganizationsModule  = "organizations"
	CompaniesModule      = "companies"
	EventsModule         = "events"
	TeamModule           = "team"
	PaymentPlansModule   = "payment_plans"
	EmailTemplatesModule = "email_templates"
	ConfigurationModule  = "configuration"
)

// AdminModules lists the modules in the order they are displayed in the permission matrix
var AdminModules = []string{
	OrganizationsModule,
	CompaniesModule,
	EventsModule,
	TeamModule,
	PaymentPlansModule,
	EmailTemplatesModule,
	ConfigurationModule,
}

// PermissionAction is an operation a team member may perform on a module
type PermissionAction string

const (
	ViewAction   PermissionAction = "view"
	CreateAction PermissionAction = "create"
	EditAction   PermissionAction = "edit"
	DeleteAction PermissionAction = "delete"
)

// PermissionActions lists the columns of the permission matrix
var PermissionActions = []PermissionAction{ViewAction, CreateAction, EditAction, DeleteAction}

// ModulePermission is one row of a team member's permission matrix
type ModulePermission struct {
	Module string `json:"module"`
	View   bool   `json:"view"`
	Create bool   `json:"create"`
	Edit   bool   `json:"edit"`
	Delete bool   `json:"delete"`
}

// Allows reports whether the row grants the given action
func (p ModulePermission) Allows(action PermissionAction) bool {
	switch action {
	case ViewAction:
		return p.View
	case CreateAction:
		return p.Create
	case EditAction:
		return p.Edit
	case DeleteAction:
		return p.Delete
	}
	return false
}

// Grant returns a copy of the row with the given action allowed
func (p ModulePermission) Grant(action PermissionAction) ModulePermission {
	switch action {
	case ViewAction:
		p.View = true
	case CreateAction:
		p.Create = true
	case EditAction:
		p.Edit = true
	case DeleteAction:
		p.Delete = true
	}
	return p
}

// TeamMember is an admin user of the portal.
//
// The backend has returned two shapes for team members: a role with a
// permission matrix, and a single name with a flat list of accessible
// modules. Both decode into this struct; access lists become view-only rows.
type TeamMember struct {
	ID          string             `json:"_id,omitempty"`
	FirstName   string             `json:"first_name"`
	LastName    string             `json:"last_name"`
	Email       string             `json:"email"`
	Role        string             `json:"role"`
	Status      string             `json:"status"`
	Permissions []ModulePermission `json:"permissions"`
}

// FullName joins the first and last name
func (m TeamMember) FullName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}

// Can reports whether the member may perform action on module
func (m TeamMember) Can(module string, action PermissionAction) bool {
	for _, permission := range m.Permissions {
		if permission.Module == module {
			return permission.Allows(action)
		}
	}
	return false
}

func (m *TeamMember) UnmarshalJSON(data []byte) error {
	type teamMember TeamMember
	var raw struct {
		teamMember
		Name   string   `json:"name"`
		Access []string `json:"access"`
	}
	raw.teamMember = teamMember(*m)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*m = TeamMember(raw.teamMember)
	if m.FirstName == "" && m.LastName == "" && raw.Name != "" {
		m.FirstName, m.LastName = splitName(raw.Name)
	}
	if len(m.Permissions) == 0 && len(raw.Access) > 0 {
		m.Permissions = make([]ModulePermission, 0, len(raw.Access))
		for _, module := range raw.Access {
			m.Permissions = append(m.Permissions, ModulePermission{Module: module, View: true})
		}
	}
	return nil
}

func splitName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i], strings.TrimSpace(name[i+1:])
	}
	return name, ""
}
