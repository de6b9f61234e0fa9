package routers

import (
	"github.com/exiby/exiby_admin/routers/api/models"
	v1 "github.com/exiby/exiby_admin/routers/api/v1"
	"github.com/exiby/exiby_admin/routers/frontend"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MainRouter is the router mounting the API and the portal
type MainRouter interface {
	models.Router
}

type mainRouter struct {
	models.BaseRouter
	logger         *zap.Logger
	apiV1          v1.APIV1Router
	frontendRouter frontend.Router
}

// NewMainRouter creates a MainRouter
func NewMainRouter(logger *zap.Logger, apiV1Router v1.APIV1Router, frontendRouter frontend.Router) MainRouter {
	return &mainRouter{
		logger:         logger,
		apiV1:          apiV1Router,
		frontendRouter: frontendRouter,
	}
}

// RegisterRoutes registers the heartbeat, the API under /api/v1 and the portal pages
func (r *mainRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("/heartbeat", r.Heartbeat)

	r.apiV1.RegisterRoutes(routerGroup.Group("/api/v1"))
	r.frontendRouter.RegisterRoutes(routerGroup)
}
