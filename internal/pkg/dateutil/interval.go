package dateutil

// Interval is a half-open date range [Start, End): Start is occupied, End is
// the first free date.
type Interval struct {
	Start Date
	End   Date
}

func NewInterval(start, end Date) Interval {
	return Interval{Start: start, End: end}
}

// IsEmpty reports whether the interval has no nights (End <= Start).
func (i Interval) IsEmpty() bool {
	return !i.End.After(i.Start)
}

// Overlaps reports whether two half-open intervals share at least one night.
// Touching boundaries (a.End == b.Start) never overlap: the checkout date is
// free for a new check-in.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Contains reports whether d falls inside the interval under half-open
// semantics.
func (i Interval) Contains(d Date) bool {
	return !d.Before(i.Start) && d.Before(i.End)
}

// Clamp intersects the interval with a bounding window. The result is empty
// when the two do not overlap.
func (i Interval) Clamp(window Interval) Interval {
	clamped := i
	if clamped.Start.Before(window.Start) {
		clamped.Start = window.Start
	}
	if clamped.End.After(window.End) {
		clamped.End = window.End
	}
	if clamped.IsEmpty() {
		return Interval{}
	}
	return clamped
}

// Nights returns the number of occupied nights, minimum 1 for any non-empty
// interval.
func (i Interval) Nights() int {
	n := i.Start.DaysUntil(i.End)
	if n < 1 {
		return 1
	}
	return n
}

// Dates returns every occupied date in order, End excluded.
func (i Interval) Dates() []Date {
	if i.IsEmpty() {
		return nil
	}
	dates := make([]Date, 0, i.Start.DaysUntil(i.End))
	for d := i.Start; d.Before(i.End); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}

func (i Interval) String() string {
	return "[" + i.Start.String() + "," + i.End.String() + ")"
}
