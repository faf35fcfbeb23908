package controllers

import (
	"errors"
	"net/http"

	"github.com/especializacion-sena/sitios-backend/src/dtos"
	"github.com/especializacion-sena/sitios-backend/src/errs"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// AuthenticateUser handles GET /usuarios?username=&password=
func (c *UserController) AuthenticateUser(ctx *gin.Context) {
	var query dtos.LoginQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		_ = ctx.Error(errs.NewValidationError(errs.MsgMissingQuery))
		return
	}

	user, err := c.service.AuthenticateUser(ctx.Request.Context(), query.Username, query.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dtos.LoginResponse{Status: "unauthorized"})
			return
		}
		_ = ctx.Error(errs.NewPersistenceError(err))
		return
	}
	ctx.JSON(http.StatusOK, dtos.LoginResponse{Status: "ok", Data: user.Username})
}
