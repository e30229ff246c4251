package routers

import (
	"time"

	"github.com/haierkeys/content-organizer-service/internal/app"
	"github.com/haierkeys/content-organizer-service/internal/middleware"
	"github.com/haierkeys/content-organizer-service/internal/routers/api_router"
	"github.com/haierkeys/content-organizer-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/user",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
	limiter.BucketRule{
		Key:          "/api/share",
		FillInterval: time.Second,
		Capacity:     20,
		Quantum:      20,
	},
)

func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	cfg := appContainer.Config()

	r := gin.New()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfo())
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
		api.Use(middleware.Metrics())
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLog())
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		folderHandler := api_router.NewFolderHandler(appContainer)
		contentHandler := api_router.NewContentHandler(appContainer)
		shareHandler := api_router.NewShareHandler(appContainer)
		usageHandler := api_router.NewUsageHandler(appContainer)
		marketplaceHandler := api_router.NewMarketplaceHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		api.POST("/user/register", userHandler.Register)
		api.POST("/user/login", userHandler.Login)

		// 市场浏览无需认证
		api.GET("/marketplace", marketplaceHandler.List)
		api.GET("/marketplace/version", marketplaceHandler.Get)

		api.GET("/version", versionHandler.ServerVersion)
		api.GET("/health", healthHandler.Check)

		auth := api.Group("", middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey))

		auth.POST("/user/change_password", userHandler.ChangePassword)
		auth.GET("/user/info", userHandler.Info)

		auth.POST("/folder", folderHandler.Create)
		auth.GET("/folder", folderHandler.Get)
		auth.GET("/folders", folderHandler.List)
		auth.PUT("/folder", folderHandler.Update)
		auth.DELETE("/folder", folderHandler.Delete)

		auth.POST("/content", contentHandler.Create)
		auth.GET("/content", contentHandler.Get)
		auth.GET("/contents", contentHandler.List)
		auth.PUT("/content", contentHandler.Update)
		auth.DELETE("/content", contentHandler.Delete)

		auth.POST("/share/publish", shareHandler.Publish)
		auth.GET("/share/status", shareHandler.Status)
		auth.GET("/share/preview", shareHandler.Preview)
		auth.POST("/share/import", shareHandler.Import)
		auth.POST("/share/unshare", shareHandler.Unshare)
		auth.GET("/share/versions", shareHandler.Versions)

		auth.POST("/marketplace/like", marketplaceHandler.Like)

		auth.GET("/usage", usageHandler.Get)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
