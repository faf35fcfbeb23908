package controllers

import (
	"net/http"

	"github.com/especializacion-sena/sitios-backend/src/dtos"
	"github.com/especializacion-sena/sitios-backend/src/errs"
	"github.com/especializacion-sena/sitios-backend/src/models"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"github.com/gin-gonic/gin"
)

type CommentController struct {
	service *services.CommentService
}

func NewCommentController(service *services.CommentService) *CommentController {
	return &CommentController{service: service}
}

// GetComments handles GET /comentarios/:id_sitio
func (c *CommentController) GetComments(ctx *gin.Context) {
	idSitio, ok := parseIDParam(ctx, "id_sitio")
	if !ok {
		return
	}

	comments, err := c.service.GetCommentsBySite(ctx.Request.Context(), idSitio)
	if err != nil {
		_ = ctx.Error(errs.NewPersistenceError(err))
		return
	}
	ctx.JSON(http.StatusOK, dtos.InfoResponse{Info: comments})
}

// CreateComment handles POST /comentarios/:id_sitio. The site id is taken
// from the path, never from the body.
func (c *CommentController) CreateComment(ctx *gin.Context) {
	idSitio, ok := parseIDParam(ctx, "id_sitio")
	if !ok {
		return
	}

	var req dtos.CreateCommentRequest
	if err := ctx.ShouldBind(&req); err != nil {
		_ = ctx.Error(bindingError(err))
		return
	}

	comment := models.CommentModel{
		IdSitio: idSitio,
		Comment: req.Comment,
		User:    req.User,
	}
	if err := c.service.CreateComment(ctx.Request.Context(), &comment); err != nil {
		_ = ctx.Error(errs.NewPersistenceError(err))
		return
	}
	ctx.JSON(http.StatusOK, dtos.StatusResponse{Status: statusOK})
}
