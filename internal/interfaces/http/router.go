package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"datarequests/internal/interfaces/http/middleware"
	"datarequests/internal/interfaces/http/routes"
	"datarequests/internal/shared/utils"
)

func (c *Container) setupRoutes() {
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.RequestLogger(c.log))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(c.authMiddleware.OptionalAuth())

	c.engine.GET("/health", c.healthCheck)
	c.engine.GET("/metrics", gin.WrapH(c.metrics.Handler()))

	routes.SetupDataRequestRoutes(c.engine, &routes.DataRequestRouteConfig{
		Handler: c.hdlrs.dataRequest,
	})
}

func (c *Container) healthCheck(ctx *gin.Context) {
	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		c.log.Errorw("health check failed", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, utils.APIResponse{Success: false, Message: "database unavailable"})
		return
	}

	utils.SuccessResponse(ctx, http.StatusOK, "", gin.H{"status": "ok"})
}
