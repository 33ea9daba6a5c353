package handlers

import (
	"errors"
	"net/http"

	response "buildbid/internal/adapter/http/dto/response"
	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/usecase"
	"buildbid/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func invalidRequest(message string) *pkg.AppError {
	return pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest)
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, response.Failure(appErr))
}

// respondError renders validation failures with every defect and maps anything
// else through mapErr. Unmapped errors are logged; their detail is never rendered.
func respondError(c *gin.Context, log *logger.Logger, err error, mapErr func(error) *pkg.AppError) {
	var vErr *usecase.ValidationFailedError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, response.ValidationFailure(vErr.Errors))
		return
	}
	appErr := mapErr(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("[http][handler] request failed", "method", c.Request.Method, "path", c.FullPath(), "code", appErr.Code, "err", err)
	}
	abortWith(c, appErr)
}
