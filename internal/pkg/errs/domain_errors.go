package errs

import "errors"

// Sentinel errors shared across the usecase layers. Handlers map these to
// HTTP statuses; infra errors are translated into them at the usecase
// boundary so the original cause stays attached via Mark.
var (
	// Validation: client-correctable input problems. Never opens a transaction.
	ErrValidation      = errors.New("validation failed")
	ErrInvalidInterval = errors.New("check-out must be after check-in")

	// Conflict: the requested interval overlaps an active booking.
	ErrBookingConflict = errors.New("campsite unavailable for selected dates")

	// Not found
	ErrCampsiteNotFound   = errors.New("campsite not found")
	ErrCampgroundNotFound = errors.New("campground not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrUserNotFound       = errors.New("user not found")

	// Authorization
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// Auth surface
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Internal: store failure or unexpected error mid-transaction. Always
	// follows a rollback; the cause is preserved, never swallowed.
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
