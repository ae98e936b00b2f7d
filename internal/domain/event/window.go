// Package event holds the reservation-window rule for an event. Events
// themselves are reference data managed outside this service; what the
// booking flow needs from the domain is where a stay may fall.
package event

import "campreserve/internal/pkg/dateutil"

// ShoulderDays is how far a stay may extend past the event window on each
// side, covering an early-arrival night and a late-departure night.
const ShoulderDays = 1

// ExtendedWindow widens the event window by the shoulder allowance on both
// ends. Occupancy reporting and booking placement share this rule.
func ExtendedWindow(start, end dateutil.Date) dateutil.Interval {
	return dateutil.NewInterval(start.AddDays(-ShoulderDays), end.AddDays(ShoulderDays))
}
