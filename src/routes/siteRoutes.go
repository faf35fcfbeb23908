package routes

import (
	"github.com/especializacion-sena/sitios-backend/src/controllers"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"github.com/especializacion-sena/sitios-backend/src/storage"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func SetupSiteRoutes(router *gin.Engine, service *services.SiteService, store storage.BlobStore, log *zap.Logger, opts controllers.SiteControllerOptions) {
	siteController := controllers.NewSiteController(service, store, log, opts)

	sites := router.Group("/sitios")
	{
		sites.GET("", siteController.GetSites)
		sites.POST("", siteController.CreateSite)
		sites.POST("/upload", siteController.CreateSiteWithUpload)
		sites.POST("/import", siteController.ImportSites)
		sites.GET("/:id", siteController.GetSiteByID)
		sites.PUT("/:id", siteController.UpdateSite)
		sites.DELETE("/:id", siteController.DeleteSite)
	}
}
