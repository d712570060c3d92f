package util

import "errors"

var (
	ErrCourseNotFound   = errors.New("Course not found")
	ErrModuleNotFound   = errors.New("Module not found")
	ErrQuestionNotFound = errors.New("Question not found")
)

// ValidationError is a client input problem; Message is shown to the caller as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrModuleNotFound) ||
		errors.Is(err, ErrQuestionNotFound)
}
