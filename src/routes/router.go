package routes

import (
	"net/http"
	"time"

	"github.com/especializacion-sena/sitios-backend/src/controllers"
	"github.com/especializacion-sena/sitios-backend/src/middleware"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"github.com/especializacion-sena/sitios-backend/src/storage"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type RouterOptions struct {
	AllowedOrigins []string
	MaxUploadBytes int64
}

// NewRouter wires middleware, services and every resource route.
func NewRouter(db *gorm.DB, store storage.BlobStore, log *zap.Logger, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = opts.MaxUploadBytes

	metrics := middleware.NewMetrics()

	router.Use(ginzap.Ginzap(log, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(log, true))
	router.Use(middleware.SetupCORS(opts.AllowedOrigins))
	router.Use(metrics.Handler())
	router.Use(middleware.ErrorHandler(log))

	siteOpts := controllers.SiteControllerOptions{MaxUploadBytes: opts.MaxUploadBytes}
	if local, ok := store.(*storage.LocalStore); ok {
		router.Static(controllers.DefaultImagesPath, local.Dir())
		siteOpts.ImagesPath = controllers.DefaultImagesPath
	}

	SetupSiteRoutes(router, services.NewSiteService(db), store, log, siteOpts)
	SetupCommentRoutes(router, services.NewCommentService(db))
	SetupUserRoutes(router, services.NewUserService(db))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from sitios-backend!")
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	return router
}
