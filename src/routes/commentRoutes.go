package routes

import (
	"github.com/especializacion-sena/sitios-backend/src/controllers"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCommentRoutes(router *gin.Engine, service *services.CommentService) {
	commentController := controllers.NewCommentController(service)

	router.GET("/comentarios/:id_sitio", commentController.GetComments)
	router.POST("/comentarios/:id_sitio", commentController.CreateComment)
}
