package fakeapi

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *Server) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerAPIRoutes()
	srv.registerFakeRoutes()
}

func (srv *Server) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.requestLogger())
	srv.gin.Use(PrometheusMiddleware(srv.metrics))

	srv.l.Infof(context.Background(), "fakeapi: mode %s, environment %s", srv.mode, srv.environment)
}

func (srv *Server) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerAPIRoutes mirrors the third-party API surface.
func (srv *Server) registerAPIRoutes() {
	api := srv.gin.Group(APIBasePath, srv.authenticate())

	api.GET("/systems", srv.listSystems)

	webhooks := api.Group("/systems/:systemId/function-webhooks")
	webhooks.GET("", srv.listWebhooks)
	webhooks.POST("", srv.createWebhook)
	webhooks.GET("/:webhookId", srv.getWebhook)
	webhooks.PUT("/:webhookId", srv.updateWebhook)
	webhooks.DELETE("/:webhookId", srv.deleteWebhook)
	webhooks.PATCH("/:webhookId", srv.renameWebhook)
}

// registerFakeRoutes adds test hooks that have no production equivalent.
func (srv *Server) registerFakeRoutes() {
	fake := srv.gin.Group("/_fake")
	fake.GET("/systems/:systemId/function-webhooks/:webhookId/definition", srv.getDefinition)
	fake.POST("/systems/:systemId/function-webhooks/:webhookId/confirm", srv.confirmWebhook)
}

func (srv *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		srv.l.Debugf(c.Request.Context(), "fakeapi: %s %s -> %d in %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
