package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "taskflow-server/internal/auth/delivery/http"
	chatHTTP "taskflow-server/internal/chat/delivery/http"
	"taskflow-server/internal/middleware"
	tasksHTTP "taskflow-server/internal/tasks/delivery/http"
)

func (srv *HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.verifier, srv.rateLimitPerMin)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RateLimit())

	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/status", srv.statusCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	root := srv.gin.Group("")

	authHTTP.RegisterRoutes(root, authHTTP.New(srv.l, srv.authUC, srv.credUC, srv.verifier, srv.mockAuth), mw)
	srv.l.Infof(ctx, "Auth domain registered")

	tasksHTTP.RegisterRoutes(root, tasksHTTP.New(srv.l, srv.taskUC), mw)
	srv.l.Infof(ctx, "Tasks domain registered")

	chatHTTP.RegisterRoutes(root, chatHTTP.New(srv.l, srv.chatUC, srv.credUC), mw)
	srv.l.Infof(ctx, "AI command domain registered")
}
