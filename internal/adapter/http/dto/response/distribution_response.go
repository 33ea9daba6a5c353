package response

import "buildbid/internal/domain/entities"

type DistributionResponse struct {
	entities.Distribution
	Invited  int `json:"invited"`
	Quoted   int `json:"quoted"`
	Declined int `json:"declined"`
}

func FromDistribution(d entities.Distribution) DistributionResponse {
	res := DistributionResponse{Distribution: d}
	for _, r := range d.Responses {
		switch r.Status {
		case entities.InvitationStatusInvited:
			res.Invited++
		case entities.InvitationStatusQuoted:
			res.Quoted++
		case entities.InvitationStatusDeclined:
			res.Declined++
		}
	}
	return res
}
