package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router is a collection of routes that can be registered on a router group
type Router interface {
	RegisterRoutes(*gin.RouterGroup)
	Heartbeat(*gin.Context)
}

// BaseRouter implements the routes shared by every router
type BaseRouter struct{}

type heartbeatResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Heartbeat responds to any request with 200
func (r *BaseRouter) Heartbeat(c *gin.Context) {
	message := fmt.Sprintf("request to %s received", c.Request.URL.String())

	c.JSON(http.StatusOK, heartbeatResponse{Status: "OK", Code: http.StatusOK, Message: message})
}
