package request

import (
	"time"

	"buildbid/internal/usecase"
)

type DistributionSettingsRequest struct {
	MaxQuotes             int  `json:"max_quotes"`
	AllowQuestions        bool `json:"allow_questions"`
	RequireCertifications bool `json:"require_certifications"`
	AnonymizeHomeowner    bool `json:"anonymize_homeowner"`
}

// DistributionRequest invites builders to quote for the scope of work in the path.
type DistributionRequest struct {
	HomeownerID string                      `json:"homeowner_id" binding:"required"`
	BuilderIDs  []string                    `json:"builder_ids" binding:"required,min=1"`
	DueDate     time.Time                   `json:"due_date" binding:"required"`
	Settings    DistributionSettingsRequest `json:"settings"`
}

func (r DistributionRequest) ToInput(sowID string) usecase.DistributeInput {
	return usecase.DistributeInput{
		SoWID:                 sowID,
		HomeownerID:           r.HomeownerID,
		BuilderIDs:            r.BuilderIDs,
		DueDate:               r.DueDate,
		MaxQuotes:             r.Settings.MaxQuotes,
		AllowQuestions:        r.Settings.AllowQuestions,
		RequireCertifications: r.Settings.RequireCertifications,
		AnonymizeHomeowner:    r.Settings.AnonymizeHomeowner,
	}
}

type DeclineInvitationRequest struct {
	BuilderID string `json:"builder_id" binding:"required"`
	Reason    string `json:"reason"`
}
