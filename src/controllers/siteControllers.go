package controllers

import (
	"context"
	"errors"
	"net/http"
	"path"
	"path/filepath"

	"github.com/especializacion-sena/sitios-backend/src/dtos"
	"github.com/especializacion-sena/sitios-backend/src/errs"
	"github.com/especializacion-sena/sitios-backend/src/models"
	"github.com/especializacion-sena/sitios-backend/src/services"
	"github.com/especializacion-sena/sitios-backend/src/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	statusOK          = "OK"
	photoFormField    = "photo"
	importFormField   = "file"
	msgPhotoTooLarge  = "La foto supera el tamaño maximo permitido"
	msgMissingImport  = "Hace falta el archivo excel"
	DefaultImagesPath = "/images"

	// room for the text fields and part headers around the photo
	multipartOverhead = 1 << 20
)

type SiteControllerOptions struct {
	// MaxUploadBytes rejects larger photos.
	MaxUploadBytes int64
	// ImagesPath, when set, is the route serving relative photo paths;
	// such photos are returned as absolute URLs under it.
	ImagesPath string
}

type SiteController struct {
	service *services.SiteService
	store   storage.BlobStore
	log     *zap.Logger
	opts    SiteControllerOptions
}

func NewSiteController(service *services.SiteService, store storage.BlobStore, log *zap.Logger, opts SiteControllerOptions) *SiteController {
	return &SiteController{service: service, store: store, log: log, opts: opts}
}

func (c *SiteController) withPhotoURLs(ctx *gin.Context, sites []models.SiteModel) []models.SiteModel {
	if c.opts.ImagesPath == "" {
		return sites
	}
	for i := range sites {
		if sites[i].Photo != "" && !isAbsoluteURL(sites[i].Photo) {
			sites[i].Photo = absoluteURL(ctx, path.Join(c.opts.ImagesPath, sites[i].Photo))
		}
	}
	return sites
}

// GetSites handles GET /sitios
func (c *SiteController) GetSites(ctx *gin.Context) {
	sites, err := c.service.GetAllSites(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(errs.NewPersistenceError(err))
		return
	}
	ctx.JSON(http.StatusOK, dtos.InfoResponse{Info: c.withPhotoURLs(ctx, sites)})
}

// GetSiteByID handles GET /sitios/:id
func (c *SiteController) GetSiteByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	sites, err := c.service.GetSiteByID(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(errs.NewPersistenceError(err))
		return
	}
	ctx.JSON(http.StatusOK, dtos.InfoResponse{Info: c.withPhotoURLs(ctx, sites)})
}

// CreateSite handles POST /sitios. Multipart requests are treated as uploads.
func (c *SiteController) CreateSite(ctx *gin.Context) {
	if ctx.ContentType() == gin.MIMEMultipartPOSTForm {
		c.CreateSiteWithUpload(ctx)
		return
	}

	var req dtos.CreateSiteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		_ = ctx.Error(bindingError(err))
		return
	}

	site := models.SiteModel{
		Name:   req.Name,
		Info:   req.Info,
		Photo:  req.Photo,
		Rate:   int(req.Rate),
		Coords: req.Coords,
	}
	if err := c.service.CreateSite(ctx.Request.Context(), &site); err != nil {
		_ = ctx.Error(errs.NewPersistenceError(err))
		return
	}
	ctx.JSON(http.StatusOK, dtos.StatusResponse{Status: statusOK})
}

// CreateSiteWithUpload handles POST /sitios/upload: the photo is stored
// first and the row then points at it. A failed insert removes the photo.
func (c *SiteController) CreateSiteWithUpload(ctx *gin.Context) {
	if c.opts.MaxUploadBytes > 0 {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.opts.MaxUploadBytes+multipartOverhead)
	}

	var req dtos.UploadSiteRequest
	bindErr := ctx.ShouldBind(&req)
	header, fileErr := ctx.FormFile(photoFormField)
	if bodyTooLarge(bindErr) || bodyTooLarge(fileErr) {
		_ = ctx.Error(errs.NewValidationError(msgPhotoTooLarge))
		return
	}
	if bindErr != nil || fileErr != nil {
		_ = ctx.Error(errs.NewValidationError(errs.MsgMissingParams))
		return
	}

	if c.opts.MaxUploadBytes > 0 && header.Size > c.opts.MaxUploadBytes {
		_ = ctx.Error(errs.NewValidationError(msgPhotoTooLarge))
		return
	}
	contentType := header.Header.Get("Content-Type")

	file, err := header.Open()
	if err != nil {
		_ = ctx.Error(errs.NewStorageError(err))
		return
	}
	defer file.Close()

	reqCtx := ctx.Request.Context()
	key := uuid.NewString() + "_" + filepath.Base(header.Filename)

	blob, err := c.store.Save(reqCtx, key, contentType, file)
	if err != nil {
		_ = ctx.Error(errs.NewStorageError(err))
		return
	}

	site := models.SiteModel{
		Name:   req.Name,
		Info:   req.Info,
		Photo:  blob.Location,
		Rate:   int(req.Rate),
		Coords: req.Coords,
	}
	if err := c.service.CreateSite(reqCtx, &site); err != nil {
		// Clean up the photo if the insert fails
		if delErr := c.store.Delete(context.WithoutCancel(reqCtx), blob.Key); delErr != nil {
			c.log.Error("could not remove orphaned photo", zap.String("key", blob.Key), zap.Error(delErr))
		}
		_ = ctx.Error(errs.NewPersistenceError(err))
		return
	}
	ctx.JSON(http.StatusOK, dtos.StatusResponse{Status: statusOK})
}

// UpdateSite handles PUT /sitios/:id
func (c *SiteController) UpdateSite(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dtos.UpdateSiteRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBind(&req); err != nil {
			_ = ctx.Error(bindingError(err))
			return
		}
	}

	affected, err := c.service.UpdateSite(ctx.Request.Context(), id, req)
	if err != nil {
		_ = ctx.Error(errs.NewPersistenceError(err))
		return
	}
	ctx.JSON(http.StatusOK, dtos.AffectedRowsResponse{Status: statusOK, AffectedRows: affected})
}

// DeleteSite handles DELETE /sitios/:id
func (c *SiteController) DeleteSite(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	affected, err := c.service.DeleteSite(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(errs.NewPersistenceError(err))
		return
	}
	ctx.JSON(http.StatusOK, dtos.AffectedRowsResponse{Status: statusOK, AffectedRows: affected})
}

// ImportSites handles POST /sitios/import with an xlsx workbook
func (c *SiteController) ImportSites(ctx *gin.Context) {
	header, err := ctx.FormFile(importFormField)
	if err != nil {
		_ = ctx.Error(errs.NewValidationError(msgMissingImport))
		return
	}

	file, err := header.Open()
	if err != nil {
		_ = ctx.Error(errs.NewStorageError(err))
		return
	}
	defer file.Close()

	result, err := c.service.ImportSitesFromExcel(ctx.Request.Context(), file)
	if err != nil {
		_ = ctx.Error(errs.NewValidationError(err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, dtos.ImportResponse{
		Status:   statusOK,
		Imported: result.Imported,
		Errors:   result.Errors,
	})
}

func bodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
