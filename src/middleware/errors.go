package middleware

import (
	"errors"

	"github.com/especializacion-sena/sitios-backend/src/errs"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler writes the error envelope for the last error a handler
// attached with ctx.Error, unless the handler already responded.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		last := ctx.Errors.Last()
		if last == nil {
			return
		}

		var httpErr *errs.HTTPError
		if !errors.As(last.Err, &httpErr) {
			httpErr = errs.NewInternalError(last.Err)
		}

		fields := []zap.Field{
			zap.Int("status", httpErr.Status()),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.FullPath()),
			zap.Error(last.Err),
		}
		if httpErr.Status() >= 500 {
			log.Error("request failed", fields...)
		} else {
			log.Warn("request rejected", fields...)
		}

		if ctx.Writer.Written() {
			return
		}
		ctx.AbortWithStatusJSON(httpErr.Status(), httpErr)
	}
}
