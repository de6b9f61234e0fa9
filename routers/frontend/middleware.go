package frontend

import (
	"net/http"
	"strings"

	"github.com/exiby/exiby_admin/backend"
	"github.com/exiby/exiby_admin/entities"
	"github.com/exiby/exiby_admin/environment"
	"github.com/exiby/exiby_admin/utils/auth"
	"github.com/gin-gonic/gin"
)

const (
	loginPath        = "/login"
	dashboardPath    = "/dashboard"
	staticPathPrefix = "/static/"
)

func sessionTokenProvider(ctx *gin.Context) string {
	token, err := ctx.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

// sessionGate sends visitors without a valid session to the login page
// and signed in admins away from the login page
func (r *frontendRouter) sessionGate(ctx *gin.Context) {
	path := ctx.Request.URL.Path
	if strings.HasPrefix(path, staticPathPrefix) {
		ctx.Next()
		return
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}

	claims := auth.GetSessionClaims(sessionTokenProvider(ctx), []byte(r.env.Get(environment.SessionSecret)))
	if claims == nil {
		if path == loginPath {
			ctx.Next()
			return
		}
		ctx.Redirect(http.StatusSeeOther, loginPath)
		ctx.Abort()
		return
	}

	ctx.Set(auth.SessionUserKey, claims.User())
	if path == "/" || path == loginPath {
		ctx.Redirect(http.StatusSeeOther, dashboardPath)
		ctx.Abort()
		return
	}
	ctx.Next()
}

// backendToken makes the session's backend token available to the services
func (r *frontendRouter) backendToken(ctx *gin.Context) {
	if token, err := ctx.Cookie(authTokenCookieName); err == nil && token != "" {
		ctx.Set(backend.AuthTokenKey, token)
	}
	ctx.Next()
}

func currentUser(ctx *gin.Context) entities.SessionUser {
	user, _ := auth.GetSessionUser(ctx)
	return user
}

// safeReturnPath only accepts local absolute paths
func safeReturnPath(path, fallback string) string {
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") || strings.HasPrefix(path, "/\\") {
		return fallback
	}
	return path
}
