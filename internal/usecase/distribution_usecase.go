package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"buildbid/internal/domain/entities"
	"buildbid/internal/infrastructure/logger"
	"buildbid/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidHomeownerID        = errors.New("invalid homeowner_id")
	ErrInvalidBuilderList        = errors.New("at least one builder must be invited")
	ErrInvalidDueDate            = errors.New("due date must be in the future")
	ErrInvalidMaxQuotes          = errors.New("max quotes must not be negative")
	ErrInvitationNotFound        = errors.New("builder was not invited to quote")
	ErrInvitationAlreadyAnswered = errors.New("invitation already answered")
)

// DistributeInput is a homeowner's request to invite builders to quote.
type DistributeInput struct {
	SoWID                 string
	HomeownerID           string
	BuilderIDs            []string
	DueDate               time.Time
	MaxQuotes             int
	AllowQuestions        bool
	RequireCertifications bool
	AnonymizeHomeowner    bool
}

// IDistributionUseCase tracks who was asked to quote and how they answered.
//
// Invitation slots move invited -> quoted | declined and never change afterwards.
type IDistributionUseCase interface {
	DistributeToBuilders(ctx context.Context, in DistributeInput) (entities.Distribution, error)
	DeclineInvitation(ctx context.Context, sowID, builderID, reason string) (entities.Distribution, error)
}

type DistributionUseCase struct {
	repo    interfaces.IDistributionRepository
	sowRepo interfaces.IScopeOfWorkRepository
	log     *logger.Logger
	now     func() time.Time
}

var (
	_ IDistributionUseCase          = (*DistributionUseCase)(nil)
	_ interfaces.IInvitationTracker = (*DistributionUseCase)(nil)
)

func NewDistributionUseCase(repo interfaces.IDistributionRepository, sowRepo interfaces.IScopeOfWorkRepository, log *logger.Logger) *DistributionUseCase {
	return &DistributionUseCase{repo: repo, sowRepo: sowRepo, log: loggerOrNop(log), now: utcNow}
}

func (u *DistributionUseCase) DistributeToBuilders(ctx context.Context, in DistributeInput) (entities.Distribution, error) {
	sowID := strings.TrimSpace(in.SoWID)
	if sowID == "" {
		return entities.Distribution{}, ErrInvalidSoWID
	}
	homeownerID := strings.TrimSpace(in.HomeownerID)
	if homeownerID == "" {
		return entities.Distribution{}, ErrInvalidHomeownerID
	}
	builders := uniqueIDs(in.BuilderIDs)
	if len(builders) == 0 {
		return entities.Distribution{}, ErrInvalidBuilderList
	}
	now := u.now()
	if !in.DueDate.After(now) {
		return entities.Distribution{}, ErrInvalidDueDate
	}
	if in.MaxQuotes < 0 {
		return entities.Distribution{}, ErrInvalidMaxQuotes
	}

	sow, err := u.sowRepo.GetByID(ctx, sowID)
	if err != nil {
		return entities.Distribution{}, err
	}
	if sow.ID == "" {
		return entities.Distribution{}, ErrSoWNotFound
	}

	maxQuotes := in.MaxQuotes
	if maxQuotes == 0 {
		maxQuotes = entities.DefaultMaxQuotes
	}
	responses := make([]entities.BuilderResponse, 0, len(builders))
	for _, b := range builders {
		responses = append(responses, entities.BuilderResponse{
			BuilderID: b,
			Status:    entities.InvitationStatusInvited,
			InvitedAt: now,
		})
	}

	d := entities.Distribution{
		ID:          uuid.NewString(),
		SoWID:       sowID,
		HomeownerID: homeownerID,
		Responses:   responses,
		Settings: entities.DistributionSettings{
			MaxQuotes:             maxQuotes,
			ResponseDeadline:      in.DueDate.UTC(),
			AllowQuestions:        in.AllowQuestions,
			RequireCertifications: in.RequireCertifications,
			AnonymizeHomeowner:    in.AnonymizeHomeowner,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	created, err := u.repo.Create(ctx, d)
	if err != nil {
		u.log.Error("[distribution][usecase] failed creating distribution", "sow_id", sowID, "err", err)
		return entities.Distribution{}, err
	}
	u.log.Info("[distribution][usecase] builders invited", "sow_id", sowID, "distribution_id", created.ID, "builders", len(builders))
	return created, nil
}

func (u *DistributionUseCase) DeclineInvitation(ctx context.Context, sowID, builderID, reason string) (entities.Distribution, error) {
	sowID = strings.TrimSpace(sowID)
	if sowID == "" {
		return entities.Distribution{}, ErrInvalidSoWID
	}
	builderID = strings.TrimSpace(builderID)
	if builderID == "" {
		return entities.Distribution{}, ErrInvalidBuilderID
	}

	d, slot, err := u.openInvitation(ctx, sowID, builderID)
	if err != nil {
		return entities.Distribution{}, err
	}
	return u.answer(ctx, d, slot, entities.InvitationStatusDeclined, "", strings.TrimSpace(reason))
}

// MarkQuoted answers the builder's open invitation with the submitted quote.
// Builders who quote without an invitation are ignored.
func (u *DistributionUseCase) MarkQuoted(ctx context.Context, sowID, builderID, quoteID string) error {
	d, slot, err := u.openInvitation(ctx, sowID, builderID)
	if errors.Is(err, ErrInvitationNotFound) || errors.Is(err, ErrInvitationAlreadyAnswered) {
		return nil
	}
	if err != nil {
		return err
	}
	_, err = u.answer(ctx, d, slot, entities.InvitationStatusQuoted, quoteID, "")
	return err
}

// openInvitation finds the builder's invited slot across the distributions of a
// scope of work.
func (u *DistributionUseCase) openInvitation(ctx context.Context, sowID, builderID string) (entities.Distribution, int, error) {
	distributions, err := u.repo.ListBySoW(ctx, sowID)
	if err != nil {
		return entities.Distribution{}, -1, err
	}
	answered := false
	for _, d := range distributions {
		slot, ok := d.Response(builderID)
		if !ok {
			continue
		}
		if d.Responses[slot].Status == entities.InvitationStatusInvited {
			return d, slot, nil
		}
		answered = true
	}
	if answered {
		return entities.Distribution{}, -1, ErrInvitationAlreadyAnswered
	}
	return entities.Distribution{}, -1, ErrInvitationNotFound
}

func (u *DistributionUseCase) answer(ctx context.Context, d entities.Distribution, slot int, status entities.InvitationStatus, quoteID, reason string) (entities.Distribution, error) {
	now := u.now()
	responses := make([]entities.BuilderResponse, len(d.Responses))
	copy(responses, d.Responses)
	responses[slot].Status = status
	responses[slot].QuoteID = quoteID
	responses[slot].Reason = reason
	responses[slot].RespondedAt = &now
	d.Responses = responses
	d.UpdatedAt = now

	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		u.log.Error("[distribution][usecase] failed recording answer", "distribution_id", d.ID, "builder_id", responses[slot].BuilderID, "err", err)
		return entities.Distribution{}, err
	}
	u.log.Info("[distribution][usecase] invitation answered", "distribution_id", d.ID, "builder_id", responses[slot].BuilderID, "status", status)
	return updated, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
