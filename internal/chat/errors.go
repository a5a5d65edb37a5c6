package chat

import "errors"

var (
	// ErrEmptyMessage indicates a chat request with no message text.
	ErrEmptyMessage = errors.New("message is required")

	// ErrEmployeeNotFound indicates an unknown employee id.
	ErrEmployeeNotFound = errors.New("employee not found")
)
