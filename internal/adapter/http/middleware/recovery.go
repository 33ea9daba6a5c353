package middleware

import (
	"net/http"

	response "buildbid/internal/adapter/http/dto/response"
	"buildbid/internal/infrastructure/logger"
	"buildbid/pkg"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 envelope and logs what was recovered.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Nop()
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Recovered from panic", "path", c.Request.URL.Path, "panic", recovered)
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, response.Failure(appErr))
	})
}
