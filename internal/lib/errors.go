package lib

import "fmt"

type wrappedError struct {
	parent error
	child  error
}

// WrapError joins two errors so that errors.Is matches both of them.
// The parent is usually a package level sentinel, the child carries the details.
func WrapError(parent error, child error) error {
	return &wrappedError{parent: parent, child: child}
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.parent, e.child)
}

func (e *wrappedError) Is(target error) bool {
	return e.parent == target
}

func (e *wrappedError) Unwrap() error {
	return e.child
}
