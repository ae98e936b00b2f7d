package booking

import (
	"errors"

	"campreserve/internal/pkg/dateutil"
)

var (
	ErrInvalidStay    = errors.New("check-out date must be after check-in date")
	ErrNoAdults       = errors.New("at least one adult is required")
	ErrNegativeGuests = errors.New("guest counts cannot be negative")
	ErrNegativePrice  = errors.New("price cannot be negative")
)

// Stay is a validated half-open booking interval [checkIn, checkOut).
type Stay struct {
	interval dateutil.Interval
}

func NewStay(checkIn, checkOut dateutil.Date) (Stay, error) {
	in := dateutil.NewInterval(checkIn, checkOut)
	if in.IsEmpty() {
		return Stay{}, ErrInvalidStay
	}
	return Stay{interval: in}, nil
}

func (s Stay) Interval() dateutil.Interval { return s.interval }
func (s Stay) CheckIn() dateutil.Date      { return s.interval.Start }
func (s Stay) CheckOut() dateutil.Date     { return s.interval.End }
func (s Stay) Nights() int                 { return s.interval.Nights() }

// Guests carries headcounts. Children are informational only and never
// affect pricing.
type Guests struct {
	adults   int
	children int
}

func NewGuests(adults, children int) (Guests, error) {
	if adults < 1 {
		return Guests{}, ErrNoAdults
	}
	if children < 0 {
		return Guests{}, ErrNegativeGuests
	}
	return Guests{adults: adults, children: children}, nil
}

func (g Guests) Adults() int   { return g.adults }
func (g Guests) Children() int { return g.children }

// ExtraAdults returns the number of adults beyond the first.
func (g Guests) ExtraAdults() int {
	if g.adults <= 1 {
		return 0
	}
	return g.adults - 1
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}
