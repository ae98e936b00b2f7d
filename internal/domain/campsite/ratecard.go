package campsite

// RateCard carries a campsite's pricing fields in cents. NightlyCents is
// always present; the full-stay and extra-adult fields are optional.
type RateCard struct {
	NightlyCents            int64
	FullStayCents           *int64
	ExtraAdultNightlyCents  *int64
	ExtraAdultFullStayCents *int64
}

// HasFullStayRate reports whether the site offers a full-stay package.
func (rc RateCard) HasFullStayRate() bool {
	return rc.FullStayCents != nil
}
