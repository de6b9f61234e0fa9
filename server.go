package main

import (
	"github.com/exiby/exiby_admin/environment"
	"github.com/exiby/exiby_admin/routers"
	"github.com/exiby/exiby_admin/routers/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultPort       = "8000"
	frontendTemplates = "templates/frontend/*.gohtml"
	staticDir         = "./static"
)

// Server is the HTTP server of the admin portal
type Server struct {
	*gin.Engine
	Port string
}

// NewServer creates the gin engine with the portal's middleware and routes
func NewServer(logger *zap.Logger, env *environment.Env, mainRouter routers.MainRouter) Server {
	if env.Get(environment.Environment) == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(common.RequestID(), common.RequestLogger(logger), gin.Recovery())
	engine.LoadHTMLGlob(frontendTemplates)
	engine.Static("/static", staticDir)

	mainRouter.RegisterRoutes(&engine.RouterGroup)

	port := env.Get(environment.Port)
	if port == "" {
		port = defaultPort
	}

	return Server{
		Engine: engine,
		Port:   port,
	}
}
