package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"buildbid/internal/domain/entities"
	"buildbid/internal/domain/quoting"
	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentMilestone        = errors.New("invalid payment milestone")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrQuoteNotSelected               = errors.New("quote not selected")
	ErrMilestoneAlreadyPaid           = errors.New("milestone already paid")
	ErrPaymentDenied                  = errors.New("payment denied by provider")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentCurrencyNotSupported    = errors.New("quote currency not supported by the payment provider")
)

// IMilestonePaymentUseCase pays the milestones of a selected quote's payment schedule.
//
//   - the amount is always derived from the stored quote, never from the payer
//   - each milestone is paid at most once
type IMilestonePaymentUseCase interface {
	PayMilestone(ctx context.Context, quoteID, milestone string, payload json.RawMessage) (entities.MilestonePayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.MilestonePayment, error)
}

type MilestonePaymentUseCase struct {
	repo      interfaces.IMilestonePaymentRepository
	quoteRepo interfaces.IQuoteRepository
	gateway   interfaces.IPaymentGateway
	log       *logger.Logger
	now       func() time.Time
}

var _ IMilestonePaymentUseCase = (*MilestonePaymentUseCase)(nil)

func NewMilestonePaymentUseCase(
	repo interfaces.IMilestonePaymentRepository,
	quoteRepo interfaces.IQuoteRepository,
	gateway interfaces.IPaymentGateway,
	log *logger.Logger,
) *MilestonePaymentUseCase {
	return &MilestonePaymentUseCase{repo: repo, quoteRepo: quoteRepo, gateway: gateway, log: loggerOrNop(log), now: utcNow}
}

func (u *MilestonePaymentUseCase) PayMilestone(ctx context.Context, quoteID, milestone string, payload json.RawMessage) (entities.MilestonePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.MilestonePayment{}, ErrInvalidQuoteID
	}
	milestone = strings.TrimSpace(milestone)
	if milestone == "" {
		return entities.MilestonePayment{}, ErrInvalidPaymentMilestone
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		return entities.MilestonePayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		u.log.Error("[payment][usecase] gateway not configured", "quote_id", quoteID)
		return entities.MilestonePayment{}, ErrPaymentGatewayNotConfigured
	}
	log := u.log.With("quote_id", quoteID, "milestone", milestone)

	q, err := u.quoteRepo.GetByID(ctx, quoteID)
	if err != nil {
		log.Error("[payment][usecase] failed loading quote", "err", err)
		return entities.MilestonePayment{}, err
	}
	if q.ID == "" {
		return entities.MilestonePayment{}, ErrQuoteNotFound
	}
	if q.Status != entities.QuoteStatusSelected {
		log.Info("[payment][usecase] quote not selected", "status", q.Status)
		return entities.MilestonePayment{}, ErrQuoteNotSelected
	}
	schedule, ok := findMilestone(q.Terms.PaymentSchedule, milestone)
	if !ok {
		return entities.MilestonePayment{}, ErrInvalidPaymentMilestone
	}

	paid, err := u.repo.ListByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.MilestonePayment{}, err
	}
	for _, p := range paid {
		if p.Milestone == schedule.Milestone {
			return entities.MilestonePayment{}, ErrMilestoneAlreadyPaid
		}
	}

	amount := quoting.Round2(q.TotalPrice * schedule.Percentage / 100)
	log.Info("[payment][usecase] calling payment gateway", "amount", amount, "currency", q.Currency)
	res, err := u.gateway.CreatePayment(ctx, interfaces.PaymentRequest{
		ExternalReference: quoteID + "#" + schedule.Milestone,
		Description:       fmt.Sprintf("Quote %s milestone %s", quoting.GenerateReference(q), schedule.Milestone),
		Amount:            amount,
		Currency:          q.Currency,
		Payload:           payload,
	})
	if err != nil {
		log.Error("[payment][usecase] payment gateway failed", "err", err)
		return entities.MilestonePayment{}, classifyGatewayError(err)
	}

	status := paymentStatus(res.ProviderStatus)
	if status == entities.PaymentStatusDenied {
		log.Warn("[payment][usecase] payment denied", "provider_payment_id", res.ProviderPaymentID)
		return entities.MilestonePayment{}, ErrPaymentDenied
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(res.Response, &parsed); err != nil {
		log.Warn("[payment][usecase] provider response unmarshal failed", "err", err)
	}

	p := entities.MilestonePayment{
		ID:                 res.ProviderPaymentID,
		QuoteID:            quoteID,
		Milestone:          schedule.Milestone,
		Percentage:         schedule.Percentage,
		Amount:             amount,
		Currency:           q.Currency,
		Date:               u.now(),
		Status:             status,
		ProviderPayloadRaw: res.Response,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.MilestonePayment{}, ErrMilestoneAlreadyPaid
		}
		log.Error("[payment][usecase] payment repository create failed", "payment_id", p.ID, "err", err)
		return entities.MilestonePayment{}, err
	}
	log.Info("[payment][usecase] milestone paid", "payment_id", created.ID, "status", created.Status)
	return created, nil
}

func (u *MilestonePaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.MilestonePayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func findMilestone(schedule []entities.PaymentMilestone, name string) (entities.PaymentMilestone, bool) {
	for _, m := range schedule {
		if strings.EqualFold(strings.TrimSpace(m.Milestone), name) {
			return m, true
		}
	}
	return entities.PaymentMilestone{}, false
}

func paymentStatus(provider string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	if errors.Is(err, interfaces.ErrUnsupportedCurrency) {
		return ErrPaymentCurrencyNotSupported
	}
	if errors.Is(err, interfaces.ErrInvalidPaymentRequest) {
		return ErrInvalidPaymentPayload
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\""), strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\""), strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
