package questionnaire

import "errors"

var (
	// ErrStepIncomplete is returned when forward navigation is attempted
	// before the current step's gate is satisfied.
	ErrStepIncomplete = errors.New("current step is incomplete")

	// ErrWrongStep is returned when an answer targets a step other than the
	// wizard's current one.
	ErrWrongStep = errors.New("answer does not belong to the current step")

	// ErrNotFinalStep is returned when completion is attempted before the
	// attestation step.
	ErrNotFinalStep = errors.New("wizard has not reached the final step")

	// ErrUnknownCondition is returned when a toggled condition is not in the
	// service's condition list.
	ErrUnknownCondition = errors.New("condition is not offered for this service")

	// ErrInvalidChoice is returned when a selected value is not one of the
	// offered options.
	ErrInvalidChoice = errors.New("value is not one of the offered options")
)
