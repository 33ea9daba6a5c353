package usecase

import (
	"context"
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
	ErrInvalidSoWID       = errors.New("invalid sow_id")
	ErrInvalidBuilderID   = errors.New("invalid builder_id")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
	ErrSoWNotFound        = errors.New("scope of work not found")
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrDuplicateQuote     = errors.New("builder already has a quote for this scope of work")
	ErrQuoteNotModifiable = errors.New("quote cannot be modified in its current status")
	ErrQuoteExpired       = errors.New("quote has expired")
	ErrQuoteSuperseded    = errors.New("quote has already been revised")
)

// ValidationFailedError carries every field level defect of a rejected quote.
type ValidationFailedError struct {
	Errors []quoting.ValidationError
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("quote validation failed with %d error(s)", len(e.Errors))
}

// SubmitQuoteResult is a persisted quote plus the non-blocking warnings it raised.
type SubmitQuoteResult struct {
	Quote    entities.Quote
	Warnings []string
}

// QuoteAnalysis is the derived report of a single quote.
type QuoteAnalysis struct {
	QuoteID         string                  `json:"quote_id"`
	Reference       string                  `json:"reference"`
	EffectiveStatus entities.QuoteStatus    `json:"effective_status"`
	Totals          quoting.BreakdownTotals `json:"totals"`
	Margins         quoting.Margins         `json:"margins"`
	CriticalPath    []string                `json:"critical_path"`
	Resources       quoting.ResourceSummary `json:"resources"`
	Warnings        []string                `json:"warnings"`
}

// IQuoteUseCase exposes the quote lifecycle.
//
//   - SubmitQuote validates before any I/O and only then checks the scope of work and
//     inserts the quote together with the builder claim.
//   - UpdateQuoteStatus enforces the transition table and the expiry overlay.
//   - CreateRevision writes a new version and leaves the previous one untouched.
type IQuoteUseCase interface {
	SubmitQuote(ctx context.Context, sowID, builderID string, in entities.QuoteInput) (SubmitQuoteResult, error)
	GetQuote(ctx context.Context, id string) (entities.Quote, error)
	GetQuotesForSoW(ctx context.Context, sowID string) ([]entities.Quote, error)
	GetBuilderQuotes(ctx context.Context, builderID, status string) ([]entities.Quote, error)
	UpdateQuoteStatus(ctx context.Context, id, status string) (entities.Quote, error)
	CreateRevision(ctx context.Context, id string, updates quoting.RevisionUpdates) (SubmitQuoteResult, error)
	AnalyzeQuote(ctx context.Context, id string) (QuoteAnalysis, error)
}

type QuoteUseCase struct {
	repo        interfaces.IQuoteRepository
	sowRepo     interfaces.IScopeOfWorkRepository
	invitations interfaces.IInvitationTracker
	metrics     interfaces.IMetricsRecorder
	log         *logger.Logger
	now         func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	sowRepo interfaces.IScopeOfWorkRepository,
	invitations interfaces.IInvitationTracker,
	metrics interfaces.IMetricsRecorder,
	log *logger.Logger,
) *QuoteUseCase {
	return &QuoteUseCase{
		repo:        repo,
		sowRepo:     sowRepo,
		invitations: invitations,
		metrics:     metricsOrNop(metrics),
		log:         loggerOrNop(log),
		now:         utcNow,
	}
}

func (u *QuoteUseCase) SubmitQuote(ctx context.Context, sowID, builderID string, in entities.QuoteInput) (SubmitQuoteResult, error) {
	now := u.now()
	draft := entities.NewQuote(sowID, builderID, in, now)
	log := u.log.With("quote_id", draft.ID, "sow_id", draft.SoWID, "builder_id", draft.BuilderID)

	if errs := quoting.ValidateQuote(draft, now); len(errs) > 0 {
		log.Info("[quote][usecase] submission rejected", "errors", len(errs))
		u.metrics.QuoteSubmitted(interfaces.OutcomeRejected)
		return SubmitQuoteResult{}, &ValidationFailedError{Errors: errs}
	}

	sow, err := u.sowRepo.GetByID(ctx, draft.SoWID)
	if err != nil {
		log.Error("[quote][usecase] failed loading scope of work", "err", err)
		u.metrics.QuoteSubmitted(interfaces.OutcomeError)
		return SubmitQuoteResult{}, err
	}
	if sow.ID == "" {
		u.metrics.QuoteSubmitted(interfaces.OutcomeNotFound)
		return SubmitQuoteResult{}, ErrSoWNotFound
	}

	submitted, err := quoting.UpdateStatus(draft, entities.QuoteStatusSubmitted, now)
	if err != nil {
		return SubmitQuoteResult{}, err
	}
	created, err := u.repo.Create(ctx, submitted)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			log.Info("[quote][usecase] duplicate submission")
			u.metrics.QuoteSubmitted(interfaces.OutcomeDuplicate)
			return SubmitQuoteResult{}, ErrDuplicateQuote
		}
		log.Error("[quote][usecase] failed writing quote", "err", err)
		u.metrics.QuoteSubmitted(interfaces.OutcomeError)
		return SubmitQuoteResult{}, err
	}

	u.markQuoted(ctx, created)
	u.metrics.QuoteSubmitted(interfaces.OutcomeAccepted)
	log.Info("[quote][usecase] quote submitted", "total_price", created.TotalPrice)
	return SubmitQuoteResult{Quote: created, Warnings: quoting.Warnings(created, now)}, nil
}

// markQuoted is best effort: the quote is already stored and is not rolled back.
func (u *QuoteUseCase) markQuoted(ctx context.Context, q entities.Quote) {
	if u.invitations == nil {
		return
	}
	if err := u.invitations.MarkQuoted(ctx, q.SoWID, q.BuilderID, q.ID); err != nil {
		u.log.Warn("[quote][usecase] failed updating invitation", "quote_id", q.ID, "sow_id", q.SoWID, "builder_id", q.BuilderID, "err", err)
	}
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) GetQuotesForSoW(ctx context.Context, sowID string) ([]entities.Quote, error) {
	sowID = strings.TrimSpace(sowID)
	if sowID == "" {
		return nil, ErrInvalidSoWID
	}
	return u.repo.ListBySoW(ctx, sowID)
}

func (u *QuoteUseCase) GetBuilderQuotes(ctx context.Context, builderID, status string) ([]entities.Quote, error) {
	builderID = strings.TrimSpace(builderID)
	if builderID == "" {
		return nil, ErrInvalidBuilderID
	}
	var filter entities.QuoteStatus
	if strings.TrimSpace(status) != "" {
		st, ok := entities.ParseQuoteStatus(status)
		if !ok {
			return nil, ErrInvalidQuoteStatus
		}
		filter = st
	}
	return u.repo.ListByBuilder(ctx, builderID, filter)
}

func (u *QuoteUseCase) UpdateQuoteStatus(ctx context.Context, id, status string) (entities.Quote, error) {
	target, ok := entities.ParseQuoteStatus(status)
	if !ok {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}

	now := u.now()
	if quoting.EffectiveStatus(q, now) == entities.QuoteStatusExpired {
		return entities.Quote{}, ErrQuoteExpired
	}
	if target == entities.QuoteStatusWithdrawn && !quoting.CanBeWithdrawn(q, now) {
		return entities.Quote{}, fmt.Errorf("%w: %s -> %s", quoting.ErrInvalidStatusTransition, q.Status, target)
	}
	updated, err := quoting.UpdateStatus(q, target, now)
	if err != nil {
		return entities.Quote{}, err
	}

	saved, err := u.repo.Update(ctx, updated)
	if err != nil {
		u.log.Error("[quote][usecase] failed updating status", "quote_id", q.ID, "err", err)
		return entities.Quote{}, err
	}
	u.metrics.QuoteStatusChanged(q.Status, saved.Status)
	u.log.Info("[quote][usecase] status updated", "quote_id", q.ID, "from", q.Status, "to", saved.Status)
	return saved, nil
}

func (u *QuoteUseCase) CreateRevision(ctx context.Context, id string, updates quoting.RevisionUpdates) (SubmitQuoteResult, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return SubmitQuoteResult{}, err
	}

	now := u.now()
	if !quoting.CanBeModified(q, now) {
		if quoting.IsExpired(q, now) {
			return SubmitQuoteResult{}, ErrQuoteExpired
		}
		return SubmitQuoteResult{}, ErrQuoteNotModifiable
	}

	rev := quoting.CreateRevision(q, updates, now)
	if errs := quoting.ValidateQuote(rev, now); len(errs) > 0 {
		return SubmitQuoteResult{}, &ValidationFailedError{Errors: errs}
	}

	created, err := u.repo.CreateRevision(ctx, rev)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			u.log.Info("[quote][usecase] revision of a superseded version", "quote_id", q.ID, "version", q.Version)
			return SubmitQuoteResult{}, ErrQuoteSuperseded
		}
		u.log.Error("[quote][usecase] failed writing revision", "quote_id", q.ID, "err", err)
		return SubmitQuoteResult{}, err
	}
	u.metrics.QuoteStatusChanged(q.Status, created.Status)
	u.log.Info("[quote][usecase] revision created", "quote_id", created.ID, "previous_id", q.ID, "version", created.Version)
	return SubmitQuoteResult{Quote: created, Warnings: quoting.Warnings(created, now)}, nil
}

func (u *QuoteUseCase) AnalyzeQuote(ctx context.Context, id string) (QuoteAnalysis, error) {
	q, err := u.GetQuote(ctx, id)
	if err != nil {
		return QuoteAnalysis{}, err
	}
	now := u.now()
	return QuoteAnalysis{
		QuoteID:         q.ID,
		Reference:       quoting.GenerateReference(q),
		EffectiveStatus: quoting.EffectiveStatus(q, now),
		Totals:          quoting.CalculateTotals(q.Breakdown),
		Margins:         quoting.CalculateMargins(q),
		CriticalPath:    quoting.CriticalPath(q),
		Resources:       quoting.SummarizeResources(q),
		Warnings:        quoting.Warnings(q, now),
	}, nil
}
