package image

import (
	"errors"
	"strings"
)

var (
	ErrNotAnImage   = errors.New("file must be an image")
	ErrTooLarge     = errors.New("file must be smaller than 1 MB")
	ErrNotValidated = errors.New("upload has not been validated")
	ErrEmptyUpload  = errors.New("upload is empty")
)

// ValidationError reports every rule an upload broke.
// errors.Is matches ErrNotAnImage and ErrTooLarge.
type ValidationError struct {
	Reasons []error
}

func (e *ValidationError) Error() string {
	return "invalid image: " + strings.Join(e.Messages(), "; ")
}

func (e *ValidationError) Unwrap() []error {
	return e.Reasons
}

// Messages returns one message per broken rule.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		msgs[i] = r.Error()
	}
	return msgs
}
