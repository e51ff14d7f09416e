// File: services/availability/errors.go
package availability

import "fmt"

// Rejection reasons surfaced to the booking page. These are deliberately
// human-readable strings rather than machine codes; the UI shows them as-is.
const (
	ReasonLinkInactive  = "this booking link is no longer active"
	ReasonPastDate      = "cannot book a date in the past"
	ReasonDateExcluded  = "this date is not available for booking"
	ReasonNotInSchedule = "the requested time is not part of the schedule"
	ReasonAlreadyBooked = "this time slot is already booked"
)

// PolicyError signals an expected, frequent rejection (blackout, cutoff,
// past date, inactive link, conflict, insufficient notice). Callers treat it
// as normal control flow, not a server failure.
type PolicyError struct {
	Reason string
}

func (e *PolicyError) Error() string { return e.Reason }

// Reject builds a PolicyError with the given reason.
func Reject(reason string) *PolicyError {
	return &PolicyError{Reason: reason}
}

// RejectNotice builds the advance-notice rejection, naming the required lead
// time in hours.
func RejectNotice(advanceHours float64) *PolicyError {
	return &PolicyError{Reason: fmt.Sprintf("bookings require at least %g hours advance notice", advanceHours)}
}
