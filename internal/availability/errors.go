package availability

import "errors"

type Reason string

const (
	ReasonEmptyDateSelection   Reason = "EmptyDateSelection"
	ReasonInvalidDateRange     Reason = "InvalidDateRange"
	ReasonDateRangeOverlap     Reason = "DateRangeOverlap"
	ReasonGuestCountOutOfRange Reason = "GuestCountOutOfRange"
	ReasonDateInPast           Reason = "DateInPast"
)

// ValidationError reports a booking precondition the user can fix by
// changing the selection. It is never retryable.
type ValidationError struct {
	Reason  Reason
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var (
	ErrEmptyDateSelection   = &ValidationError{Reason: ReasonEmptyDateSelection, Message: "Please select both a start and an end date."}
	ErrInvalidDateRange     = &ValidationError{Reason: ReasonInvalidDateRange, Message: "The end date must be at least one night after the start date."}
	ErrDateRangeOverlap     = &ValidationError{Reason: ReasonDateRangeOverlap, Message: "You cannot overlap with existing bookings."}
	ErrGuestCountOutOfRange = &ValidationError{Reason: ReasonGuestCountOutOfRange, Message: "The number of guests is not allowed for this venue."}
	ErrDateInPast           = &ValidationError{Reason: ReasonDateInPast, Message: "The start date cannot be in the past."}
)

// ReasonOf extracts the validation reason from err, if it carries one.
func ReasonOf(err error) (Reason, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}
