package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "hr-assistant/internal/chat/delivery/http"
	"hr-assistant/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	mw := srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
	return nil
}

func (srv HTTPServer) registerMiddlewares() middleware.Middleware {
	mw := middleware.New(srv.l)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.CORS())

	return mw
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.rootStatus)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the chat domain under /api, rate limited
// per client.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()

	api := srv.gin.Group("/api")
	if srv.rateLimitPerMin > 0 {
		api.Use(mw.RateLimit(srv.rateLimitPerMin))
	}

	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Chat domain registered under /api")
}
