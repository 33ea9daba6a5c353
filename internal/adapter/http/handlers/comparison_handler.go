package handlers

import (
	"net/http"

	response "buildbid/internal/adapter/http/dto/response"
	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ComparisonHandler struct {
	usecase usecase.IQuoteComparisonUseCase
	log     *logger.Logger
}

func NewComparisonHandler(uc usecase.IQuoteComparisonUseCase, log *logger.Logger) *ComparisonHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ComparisonHandler{usecase: uc, log: log}
}

// CompareQuotes godoc
// @Summary      Compare the quotes of a scope of work
// @Description  Uses the latest version of each builder's quote; withdrawn quotes are left out.
// @Tags         comparison
// @Produce      json
// @Param        sow_id  path      string  true  "Scope of work ID"
// @Success      200     {object}  response.Envelope
// @Failure      404     {object}  response.Envelope
// @Router       /scopes/{sow_id}/comparison [get]
func (h *ComparisonHandler) CompareQuotes(c *gin.Context) {
	comparison, err := h.usecase.CompareQuotes(c.Request.Context(), c.Param("sow_id"))
	if err != nil {
		respondError(c, h.log, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.OK(comparison))
}
