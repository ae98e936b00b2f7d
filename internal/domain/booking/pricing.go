package booking

import "campreserve/internal/domain/campsite"

// MinFullStayNights is the shortest stay eligible for a full-stay package
// rate.
const MinFullStayNights = 5

// PriceInput describes one priced stay. LockedBaseCents is set only when
// editing an existing booking whose base price must not move; extras are
// still recomputed from the current rate card.
type PriceInput struct {
	Nights          int
	Guests          Guests
	Rates           campsite.RateCard
	UseFullStay     bool
	LockedBaseCents *int64
}

// FullStayApplies reports whether the full-stay package is actually usable
// for this input: requested, offered by the site, and long enough.
func (in PriceInput) FullStayApplies() bool {
	return in.UseFullStay && in.Rates.HasFullStayRate() && in.Nights >= MinFullStayNights
}

// Price is the outcome of one calculation, base and extras kept apart so the
// base component can be persisted and later frozen on edit.
type Price struct {
	Base  Money
	Extra Money
}

func (p Price) Total() Money {
	return p.Base.Add(p.Extra)
}

// CalculatePrice is the single pricing implementation, used both for live
// quotes and for the value persisted at booking time. The stay is priced as
// base (nightly*nights or the full-stay package) plus a per-extra-adult fee;
// a locked base replaces the computed base but never the extras.
func CalculatePrice(in PriceInput) Price {
	nights := in.Nights
	if nights < 1 {
		nights = 1
	}

	var base, extraFee int64
	if in.FullStayApplies() {
		base = *in.Rates.FullStayCents
		if in.Rates.ExtraAdultFullStayCents != nil {
			extraFee = int64(in.Guests.ExtraAdults()) * *in.Rates.ExtraAdultFullStayCents
		}
	} else {
		base = in.Rates.NightlyCents * int64(nights)
		if in.Rates.ExtraAdultNightlyCents != nil {
			extraFee = int64(in.Guests.ExtraAdults()) * *in.Rates.ExtraAdultNightlyCents * int64(nights)
		}
	}

	if in.LockedBaseCents != nil {
		base = *in.LockedBaseCents
	}

	return Price{Base: NewMoney(base), Extra: NewMoney(extraFee)}
}
