package booking

import "errors"

var (
	// ErrNoRecord is returned when a session slot holds no value. Malformed
	// stored JSON is logged and reported the same way.
	ErrNoRecord = errors.New("no record in session")

	// ErrNoBookingRecord is returned by flow operations that require a
	// booking record in the session. Handlers translate it into a redirect
	// back to the catalog.
	ErrNoBookingRecord = errors.New("no booking record found")

	// ErrNoQuestionnaire is returned when a wizard operation arrives for a
	// session with no questionnaire in progress.
	ErrNoQuestionnaire = errors.New("no questionnaire in progress")

	// ErrPaymentAlreadyRecorded guards the one-time payment augmentation of
	// the booking record.
	ErrPaymentAlreadyRecorded = errors.New("payment already recorded for this booking")

	// ErrMissingAppointment is returned when a questionnaire is started
	// without a chosen date and time.
	ErrMissingAppointment = errors.New("appointment date and time must be selected")
)
