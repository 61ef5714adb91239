package routes

import (
	"github.com/gin-gonic/gin"

	datarequesthandlers "datarequests/internal/interfaces/http/handlers/datarequest"
)

type DataRequestRouteConfig struct {
	Handler *datarequesthandlers.Handler
}

// SetupDataRequestRoutes registers the RPC action endpoint and the REST routes.
// Authorization happens inside each action, so no route requires auth here.
func SetupDataRequestRoutes(engine *gin.Engine, config *DataRequestRouteConfig) {
	api := engine.Group("/api/action")
	{
		api.GET("/:name", config.Handler.Action)
		api.POST("/:name", config.Handler.Action)
	}

	datarequests := engine.Group("/datarequests")
	{
		datarequests.GET("", config.Handler.List)
		datarequests.POST("", config.Handler.Create)

		datarequests.GET("/:id/comments", config.Handler.ListComments)
		datarequests.POST("/:id/comments", config.Handler.CreateComment)
		datarequests.POST("/:id/status", config.Handler.UpdateStatus)

		datarequests.GET("/:id", config.Handler.Show)
	}
}
