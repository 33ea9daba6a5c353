package handlers

import (
	"errors"
	"net/http"
	"time"

	request "buildbid/internal/adapter/http/dto/request"
	response "buildbid/internal/adapter/http/dto/response"
	"buildbid/internal/domain/quoting"
	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/usecase"
	"buildbid/pkg"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles HTTP requests for builder quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	log     *logger.Logger
	now     func() time.Time
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, log *logger.Logger) *QuoteHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &QuoteHandler{usecase: uc, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// SubmitQuote godoc
// @Summary      Submit a quote
// @Description  Validates the quote, checks the scope of work and stores it as submitted. One quote per builder and scope of work.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        quote  body      request.QuoteRequest  true  "Quote"
// @Success      201    {object}  response.Envelope
// @Failure      400    {object}  response.Envelope
// @Failure      404    {object}  response.Envelope
// @Failure      409    {object}  response.Envelope
// @Router       /quotes [post]
func (h *QuoteHandler) SubmitQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	in, err := payload.ToInput()
	if err != nil {
		abortWith(c, invalidRequest("Methodology must be NRM1 or NRM2"))
		return
	}

	res, err := h.usecase.SubmitQuote(c.Request.Context(), payload.SoWID, payload.BuilderID, in)
	if err != nil {
		respondError(c, h.log, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusCreated, response.OKWithWarnings(response.FromQuote(res.Quote, h.now()), res.Warnings))
}

// GetQuote godoc
// @Summary  Get a quote
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.Envelope
// @Failure  404  {object}  response.Envelope
// @Router   /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, err := h.usecase.GetQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromQuote(q, h.now())))
}

// GetQuotesForSoW godoc
// @Summary  List the quotes of a scope of work, cheapest first
// @Tags     quotes
// @Produce  json
// @Param    sow_id  path      string  true  "Scope of work ID"
// @Success  200     {object}  response.Envelope
// @Router   /scopes/{sow_id}/quotes [get]
func (h *QuoteHandler) GetQuotesForSoW(c *gin.Context) {
	quotes, err := h.usecase.GetQuotesForSoW(c.Request.Context(), c.Param("sow_id"))
	if err != nil {
		respondError(c, h.log, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromQuotes(quotes, h.now())))
}

// GetBuilderQuotes godoc
// @Summary  List a builder's quotes, newest first
// @Tags     quotes
// @Produce  json
// @Param    builder_id  path      string  true   "Builder ID"
// @Param    status      query     string  false  "Stored status filter"
// @Success  200         {object}  response.Envelope
// @Failure  400         {object}  response.Envelope
// @Router   /builders/{builder_id}/quotes [get]
func (h *QuoteHandler) GetBuilderQuotes(c *gin.Context) {
	quotes, err := h.usecase.GetBuilderQuotes(c.Request.Context(), c.Param("builder_id"), c.Query("status"))
	if err != nil {
		respondError(c, h.log, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromQuotes(quotes, h.now())))
}

// UpdateQuoteStatus godoc
// @Summary  Move a quote to a new status
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id      path      string                      true  "Quote ID"
// @Param    status  body      request.QuoteStatusRequest  true  "Target status"
// @Success  200     {object}  response.Envelope
// @Failure  409     {object}  response.Envelope
// @Router   /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateQuoteStatus(c *gin.Context) {
	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	q, err := h.usecase.UpdateQuoteStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		respondError(c, h.log, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromQuote(q, h.now())))
}

// CreateRevision godoc
// @Summary  Revise a quote
// @Description  Writes the next version as a new quote; the previous version is kept.
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    id        path      string                   true  "Quote ID"
// @Param    revision  body      request.RevisionRequest  true  "Changed fields"
// @Success  201       {object}  response.Envelope
// @Failure  409       {object}  response.Envelope
// @Router   /quotes/{id}/revisions [post]
func (h *QuoteHandler) CreateRevision(c *gin.Context) {
	var payload request.RevisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	res, err := h.usecase.CreateRevision(c.Request.Context(), c.Param("id"), payload.ToUpdates())
	if err != nil {
		respondError(c, h.log, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusCreated, response.OKWithWarnings(response.FromQuote(res.Quote, h.now()), res.Warnings))
}

// AnalyzeQuote godoc
// @Summary  Totals, margins, critical path and warnings of a quote
// @Tags     quotes
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.Envelope
// @Router   /quotes/{id}/analysis [get]
func (h *QuoteHandler) AnalyzeQuote(c *gin.Context) {
	a, err := h.usecase.AnalyzeQuote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, mapQuoteError)
		return
	}
	c.JSON(http.StatusOK, response.OK(a))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSoWID), errors.Is(err, usecase.ErrInvalidBuilderID),
		errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return invalidRequest(err.Error())
	case errors.Is(err, usecase.ErrSoWNotFound):
		return pkg.NewDomainErrorSimple("SOW_NOT_FOUND", "Scope of work not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoQuotesFound):
		return pkg.NewDomainErrorSimple("NO_QUOTES_FOUND", "No quotes found for this scope of work", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateQuote):
		return pkg.NewDomainErrorSimple("DUPLICATE_QUOTE", "Builder already submitted a quote for this scope of work", http.StatusConflict)
	case errors.Is(err, quoting.ErrInvalidStatusTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteNotModifiable):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_MODIFIABLE", "Quote cannot be revised in its current status", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteSuperseded):
		return pkg.NewDomainErrorSimple("QUOTE_SUPERSEDED", "A newer version of this quote already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote has expired", http.StatusConflict)
	default:
		return internalError(err)
	}
}
