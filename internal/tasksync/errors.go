package tasksync

import "errors"

// ErrValidation matches every local precondition failure.
var ErrValidation = errors.New("validation failed")

// ErrNotConfirmed is returned when a delete was not requested through
// RequestDelete.
var ErrNotConfirmed = errors.New("delete was not confirmed")

// ValidationError is a local precondition violation. It never reaches the
// network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
