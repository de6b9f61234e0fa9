package v1

import (
	"net/http"
	"strings"

	"github.com/exiby/exiby_admin/config"
	"github.com/exiby/exiby_admin/environment"
	"github.com/exiby/exiby_admin/routers/api/models"
	"github.com/exiby/exiby_admin/state"
	"github.com/exiby/exiby_admin/utils/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	authHeader        = "Authorization"
	bearerPrefix      = "Bearer "
	sessionCookieName = "exiby_user"
)

// APIV1Router is the router for v1 of the API used by the portal's pages
type APIV1Router interface {
	models.Router
	GetNotifications(*gin.Context)
	MarkNotificationRead(*gin.Context)
	MarkNotificationUnread(*gin.Context)
	MarkAllNotificationsRead(*gin.Context)
	PreviewEmailTemplate(*gin.Context)
}

type apiV1Router struct {
	models.BaseRouter
	logger *zap.Logger
	cfg    *config.AppConfig
	env    *environment.Env
	store  state.Store
}

// NewAPIV1Router creates a APIV1Router
func NewAPIV1Router(logger *zap.Logger, cfg *config.AppConfig, env *environment.Env, store state.Store) APIV1Router {
	return &apiV1Router{
		logger: logger,
		cfg:    cfg,
		env:    env,
		store:  store,
	}
}

// RegisterRoutes registers all of the API's (v1) routes to the given router group
func (r *apiV1Router) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/", r.Heartbeat)

	sessionVerifier := auth.SessionVerifierFactory(sessionToken, []byte(r.env.Get(environment.SessionSecret)), r.invalidSession)

	notificationsGroup := routerGroup.Group("/notifications", sessionVerifier)
	notificationsGroup.GET("/", r.GetNotifications)
	notificationsGroup.POST("/read-all", r.MarkAllNotificationsRead)
	notificationsGroup.POST("/:id/read", r.MarkNotificationRead)
	notificationsGroup.POST("/:id/unread", r.MarkNotificationUnread)

	emailTemplatesGroup := routerGroup.Group("/email-templates", sessionVerifier)
	emailTemplatesGroup.POST("/preview", r.PreviewEmailTemplate)
}

// sessionToken reads the session JWT from the Authorization header, falling back to the session cookie
func sessionToken(ctx *gin.Context) string {
	if header := ctx.GetHeader(authHeader); header != "" {
		return strings.TrimPrefix(header, bearerPrefix)
	}
	token, err := ctx.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

func (r *apiV1Router) invalidSession(ctx *gin.Context) {
	r.logger.Debug("invalid session", zap.String("path", ctx.Request.URL.Path))
	models.SendAPIError(ctx, http.StatusUnauthorized, "invalid or expired session")
}
