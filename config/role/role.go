package role

import (
	"fmt"

	"github.com/exiby/exiby_admin/entities"
	"github.com/pkg/errors"
)

// UserRole is the role of a team member
type UserRole string

const SuperAdmin UserRole = "super_admin"
const Admin UserRole = "admin"
const Manager UserRole = "manager"
const Support UserRole = "support"

// ErrUnknownRole is returned when a role has no configured permissions
var ErrUnknownRole = errors.New("unknown role")

// UserRoleConfig maps a role to the actions it may perform on each module
type UserRoleConfig map[string]map[string][]entities.PermissionAction

// GetRolePermissions returns the default permission matrix for the role, one row per admin module
func (r UserRoleConfig) GetRolePermissions(role UserRole) ([]entities.ModulePermission, error) {
	modules, ok := r[string(role)]
	if !ok {
		return nil, errors.Wrap(ErrUnknownRole, fmt.Sprintf("role %s does not exist", role))
	}

	permissions := make([]entities.ModulePermission, 0, len(entities.AdminModules))
	for _, module := range entities.AdminModules {
		permission := entities.ModulePermission{Module: module}
		for _, action := range modules[module] {
			permission = permission.Grant(action)
		}
		permissions = append(permissions, permission)
	}
	return permissions, nil
}

// Roles returns the configured role names in a stable order
func (r UserRoleConfig) Roles() []UserRole {
	var roles []UserRole
	for _, known := range []UserRole{SuperAdmin, Admin, Manager, Support} {
		if _, ok := r[string(known)]; ok {
			roles = append(roles, known)
		}
	}
	return roles
}
