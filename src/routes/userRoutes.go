package routes

import (
	"github.com/especializacion-sena/sitios-backend/src/controllers"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	router.GET("/usuarios", userController.AuthenticateUser)
}
