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

// MilestonePaymentHandler handles payments against a selected quote's schedule.
type MilestonePaymentHandler struct {
	usecase usecase.IMilestonePaymentUseCase
	log     *logger.Logger
}

func NewMilestonePaymentHandler(uc usecase.IMilestonePaymentUseCase, log *logger.Logger) *MilestonePaymentHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &MilestonePaymentHandler{usecase: uc, log: log}
}

// PayMilestone godoc
// @Summary      Pay a milestone of a selected quote
// @Description  The amount is the milestone percentage of the quote total; each milestone is paid once.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                           true  "Quote ID"
// @Param        payment  body      request.MilestonePaymentRequest  true  "Milestone and Mercado Pago payload"
// @Success      201      {object}  response.Envelope
// @Failure      402      {object}  response.Envelope
// @Failure      409      {object}  response.Envelope
// @Router       /quotes/{id}/payments [post]
func (h *MilestonePaymentHandler) PayMilestone(c *gin.Context) {
	quoteID := c.Param("id")
	var payload request.MilestonePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[payment][handler] invalid payload", "quote_id", quoteID, "err", err)
		abortWith(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.PayMilestone(c.Request.Context(), quoteID, payload.Milestone, payload.MPPayload)
	if err != nil {
		h.log.Info("[payment][handler] payment failed", "quote_id", quoteID, "milestone", payload.Milestone, "err", err)
		respondError(c, h.log, err, mapPaymentError)
		return
	}
	h.log.Info("[payment][handler] payment created", "quote_id", quoteID, "payment_id", created.ID, "status", created.Status)
	c.JSON(http.StatusCreated, response.OK(response.FromMilestonePayment(created)))
}

// ListPayments godoc
// @Summary  List the milestone payments of a quote
// @Tags     payments
// @Produce  json
// @Param    id   path      string  true  "Quote ID"
// @Success  200  {object}  response.Envelope
// @Router   /quotes/{id}/payments [get]
func (h *MilestonePaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, mapPaymentError)
		return
	}
	c.JSON(http.StatusOK, response.OK(response.FromMilestonePayments(payments)))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentCurrencyNotSupported):
		return pkg.NewDomainErrorSimple("PAYMENT_CURRENCY_NOT_SUPPORTED", "Quote currency is not supported by the payment provider account", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMilestone):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_MILESTONE", "Milestone is not part of the quote's payment schedule", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotSelected):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_SELECTED", "Only a selected quote can be paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrMilestoneAlreadyPaid):
		return pkg.NewDomainErrorSimple("MILESTONE_ALREADY_PAID", "Milestone already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDenied):
		return pkg.NewDomainErrorSimple("PAYMENT_DENIED", "Payment denied by provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
