package controllers

import (
	"errors"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/especializacion-sena/sitios-backend/src/errs"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// parseIDParam reads a non-negative integer path parameter. On failure it
// records a validation error and returns false.
func parseIDParam(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id < 0 {
		_ = ctx.Error(errs.NewValidationError(errs.MsgInvalidNumber))
		return 0, false
	}
	return id, true
}

func bindingError(err error) *errs.HTTPError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) || errors.Is(err, io.EOF) {
		return errs.NewValidationError(errs.MsgMissingParams)
	}
	return errs.NewValidationError("Parametros invalidos: " + err.Error())
}

func isAbsoluteURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// absoluteURL turns a path served by this API into a URL on the host the
// client used.
func absoluteURL(ctx *gin.Context, path string) string {
	scheme := "http"
	if ctx.Request.TLS != nil || ctx.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: ctx.Request.Host, Path: path}
	return u.String()
}
