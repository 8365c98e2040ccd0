package errs

import "errors"

// Sentinel errors shared by the usecase layer. Handlers map these onto
// HTTP statuses; nothing here is ever allowed to kill the process.
var (
	// Lookup errors
	ErrItemNotFound       = errors.New("item not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrSessionNotFound    = errors.New("calendar session not found")
	ErrOwnerNotRegistered = errors.New("item owner has no registered account")

	// Booking errors
	ErrDatesConflict = errors.New("dates conflict with an existing booking")
	ErrStaleState    = errors.New("booking is not in the expected state")
	ErrNotAllowed    = errors.New("actor is not allowed to perform this transition")

	// Validation errors
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrDateUnavailable  = errors.New("date is not selectable")

	// Operation errors
	ErrDeliveryFailed          = errors.New("notification delivery failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
