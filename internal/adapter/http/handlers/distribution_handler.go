package handlers

import (
	"errors"
	"net/http"

	request "buildbid/internal/adapter/http/dto/request"
	response "buildbid/internal/adapter/http/dto/response"
	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/usecase"
	"buildbid/pkg"

	"github.com/gin-gonic/gin"
)

type DistributionHandler struct {
	usecase usecase.IDistributionUseCase
	log     *logger.Logger
}

func NewDistributionHandler(uc usecase.IDistributionUseCase, log *logger.Logger) *DistributionHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &DistributionHandler{usecase: uc, log: log}
}

// DistributeToBuilders godoc
// @Summary  Invite builders to quote
// @Tags     distributions
// @Accept   json
// @Produce  json
// @Param    sow_id        path      string                       true  "Scope of work ID"
// @Param    distribution  body      request.DistributionRequest  true  "Invitation"
// @Success  201           {object}  response.Envelope
// @Failure  400           {object}  response.Envelope
// @Failure  404           {object}  response.Envelope
// @Router   /scopes/{sow_id}/distributions [post]
func (h *DistributionHandler) DistributeToBuilders(c *gin.Context) {
	var payload request.DistributionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	d, err := h.usecase.DistributeToBuilders(c.Request.Context(), payload.ToInput(c.Param("sow_id")))
	if err != nil {
		respondError(c, h.log, err, mapDistributionError)
		return
	}
	c.JSON(http.StatusCreated, response.OK(response.FromDistribution(d)))
}

// DeclineInvitation godoc
// @Summary  Decline an invitation to quote
// @Tags     distributions
// @Accept   json
// @Produce  json
// @Param    sow_id   path      string                            true  "Scope of work ID"
// @Param    decline  body      request.DeclineInvitationRequest  true  "Builder and reason"
// @Success  200      {object}  response.Envelope
// @Failure  404      {object}  response.Envelope
// @Failure  409      {object}  response.Envelope
// @Router   /scopes/{sow_id}/distributions/decline [patch]
func (h *DistributionHandler) DeclineInvitation(c *gin.Context) {
	var payload request.DeclineInvitationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	d, err := h.usecase.DeclineInvitation(c.Request.Context(), c.Param("sow_id"), payload.BuilderID, payload.Reason)
	if err != nil {
		respondError(c, h.log, err, mapDistributionError)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromDistribution(d)))
}

func mapDistributionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSoWID), errors.Is(err, usecase.ErrInvalidBuilderID),
		errors.Is(err, usecase.ErrInvalidHomeownerID), errors.Is(err, usecase.ErrInvalidBuilderList),
		errors.Is(err, usecase.ErrInvalidDueDate), errors.Is(err, usecase.ErrInvalidMaxQuotes):
		return invalidRequest(err.Error())
	case errors.Is(err, usecase.ErrSoWNotFound):
		return pkg.NewDomainErrorSimple("SOW_NOT_FOUND", "Scope of work not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvitationNotFound):
		return pkg.NewDomainErrorSimple("INVITATION_NOT_FOUND", "Builder was not invited to quote", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvitationAlreadyAnswered):
		return pkg.NewDomainErrorSimple("INVITATION_ALREADY_ANSWERED", "Invitation already answered", http.StatusConflict)
	default:
		return internalError(err)
	}
}
