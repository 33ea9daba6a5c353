package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"buildbid/internal/domain/entities"
	"buildbid/internal/domain/quoting"
	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/usecase/interfaces"
)

var ErrNoQuotesFound = errors.New("no quotes found for scope of work")

// IQuoteComparisonUseCase ranks the competing quotes of one scope of work.
type IQuoteComparisonUseCase interface {
	CompareQuotes(ctx context.Context, sowID string) (quoting.Comparison, error)
}

type QuoteComparisonUseCase struct {
	repo    interfaces.IQuoteRepository
	sowRepo interfaces.IScopeOfWorkRepository
	metrics interfaces.IMetricsRecorder
	log     *logger.Logger
	now     func() time.Time
}

var _ IQuoteComparisonUseCase = (*QuoteComparisonUseCase)(nil)

func NewQuoteComparisonUseCase(
	repo interfaces.IQuoteRepository,
	sowRepo interfaces.IScopeOfWorkRepository,
	metrics interfaces.IMetricsRecorder,
	log *logger.Logger,
) *QuoteComparisonUseCase {
	return &QuoteComparisonUseCase{
		repo:    repo,
		sowRepo: sowRepo,
		metrics: metricsOrNop(metrics),
		log:     loggerOrNop(log),
		now:     utcNow,
	}
}

// CompareQuotes compares the latest version of every builder's quote. Withdrawn
// quotes take no part.
func (u *QuoteComparisonUseCase) CompareQuotes(ctx context.Context, sowID string) (quoting.Comparison, error) {
	sowID = strings.TrimSpace(sowID)
	if sowID == "" {
		return quoting.Comparison{}, ErrInvalidSoWID
	}

	sow, err := u.sowRepo.GetByID(ctx, sowID)
	if err != nil {
		u.metrics.QuotesCompared(interfaces.OutcomeError, 0)
		return quoting.Comparison{}, err
	}
	if sow.ID == "" {
		u.metrics.QuotesCompared(interfaces.OutcomeNotFound, 0)
		return quoting.Comparison{}, ErrSoWNotFound
	}

	all, err := u.repo.ListBySoW(ctx, sowID)
	if err != nil {
		u.log.Error("[comparison][usecase] failed listing quotes", "sow_id", sowID, "err", err)
		u.metrics.QuotesCompared(interfaces.OutcomeError, 0)
		return quoting.Comparison{}, err
	}

	quotes := latestActive(all)
	if len(quotes) == 0 {
		u.metrics.QuotesCompared(interfaces.OutcomeEmpty, 0)
		return quoting.Comparison{}, ErrNoQuotesFound
	}

	comparison := quoting.CompareQuotes(quotes, u.now())
	u.metrics.QuotesCompared(interfaces.OutcomeAccepted, len(quotes))
	u.log.Info("[comparison][usecase] quotes compared", "sow_id", sowID, "quotes", len(quotes), "stored_versions", len(all))
	return comparison, nil
}

// latestActive keeps the highest version per builder and drops builders whose
// latest version was withdrawn. The result is ordered by price.
func latestActive(quotes []entities.Quote) []entities.Quote {
	latest := map[string]int{}
	var order []string
	for i, q := range quotes {
		j, seen := latest[q.BuilderID]
		if !seen {
			order = append(order, q.BuilderID)
			latest[q.BuilderID] = i
			continue
		}
		if q.Version > quotes[j].Version {
			latest[q.BuilderID] = i
		}
	}

	out := make([]entities.Quote, 0, len(order))
	for _, builderID := range order {
		q := quotes[latest[builderID]]
		if q.Status == entities.QuoteStatusWithdrawn {
			continue
		}
		out = append(out, q)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalPrice < out[j].TotalPrice })
	return out
}
