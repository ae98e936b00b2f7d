package response

import (
	"campreserve/internal/usecase/queries"
)

type SiteAvailabilityResponse struct {
	CampsiteID              string `json:"campsite_id"`
	Label                   string `json:"label"`
	Powered                 bool   `json:"powered"`
	NightlyCents            int64  `json:"nightly_cents"`
	FullStayCents           *int64 `json:"full_stay_cents,omitempty"`
	ExtraAdultNightlyCents  *int64 `json:"extra_adult_nightly_cents,omitempty"`
	ExtraAdultFullStayCents *int64 `json:"extra_adult_full_stay_cents,omitempty"`
	IsBooked                bool   `json:"is_booked"`
}

func FromSiteAvailability(sites []*queries.SiteAvailabilityView) []*SiteAvailabilityResponse {
	res := make([]*SiteAvailabilityResponse, len(sites))
	for i, s := range sites {
		res[i] = &SiteAvailabilityResponse{
			CampsiteID:              s.CampsiteID.String(),
			Label:                   s.Label,
			Powered:                 s.Powered,
			NightlyCents:            s.NightlyCents,
			FullStayCents:           s.FullStayCents,
			ExtraAdultNightlyCents:  s.ExtraAdultNightlyCents,
			ExtraAdultFullStayCents: s.ExtraAdultFullStayCents,
			IsBooked:                s.IsBooked,
		}
	}
	return res
}
