package authorization

import (
	"net/http"
	"strings"

	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/config/role"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/utils/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Authorizer checks the actions a signed in admin may perform on the portal's modules
type Authorizer interface {
	// Allowed reports whether the role of user grants action on module.
	// Unknown roles are allowed nothing.
	Allowed(user entities.SessionUser, module string, action entities.PermissionAction) bool
	// ModuleGuard returns a middleware rejecting requests the session user may not perform on module.
	// The action is derived from the request with RequestedAction.
	ModuleGuard(module string, handleUnauthorized gin.HandlerFunc) gin.HandlerFunc
}

// NewAuthorizer creates an Authorizer backed by the role permissions of the app config
func NewAuthorizer(logger *zap.Logger, cfg *config.AppConfig) Authorizer {
	return &authorizer{
		logger: logger,
		cfg:    cfg,
	}
}

type authorizer struct {
	logger *zap.Logger
	cfg    *config.AppConfig
}

func (a *authorizer) Allowed(user entities.SessionUser, module string, action entities.PermissionAction) bool {
	permissions, err := a.cfg.Roles.GetRolePermissions(role.UserRole(user.Role))
	if err != nil {
		return false
	}
	for _, permission := range permissions {
		if permission.Module == module {
			return permission.Allows(action)
		}
	}
	return false
}

func (a *authorizer) ModuleGuard(module string, handleUnauthorized gin.HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, ok := auth.GetSessionUser(ctx)
		action := RequestedAction(ctx.Request.Method, ctx.Request.URL.Path)
		if !ok || !a.Allowed(user, module, action) {
			a.logger.Debug("unauthorized request", zap.String("user", user.ID), zap.String("role", user.Role),
				zap.String("module", module), zap.String("action", string(action)))
			handleUnauthorized(ctx)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// RequestedAction maps a request on a module route to the permission it needs.
// Reads need view. Writes need create on "new", delete on "delete" and "bulk-delete",
// and edit otherwise.
func RequestedAction(method, path string) entities.PermissionAction {
	if method == http.MethodGet || method == http.MethodHead {
		return entities.ViewAction
	}

	path = strings.TrimSuffix(path, "/")
	switch path[strings.LastIndex(path, "/")+1:] {
	case "new":
		return entities.CreateAction
	case "delete", "bulk-delete":
		return entities.DeleteAction
	}
	return entities.EditAction
}
