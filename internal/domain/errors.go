package domain

import "errors"

type ErrorKind string

const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindInvalidState    ErrorKind = "INVALID_STATE"
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
)

// Error is a client-facing failure. Message is safe to return to callers.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches another *Error of the same kind. A target without a message
// matches every error of its kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

var (
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrInvalidState    = &Error{Kind: KindInvalidState}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}

	ErrCartNotFound     = &Error{Kind: KindNotFound, Message: "Cart not found"}
	ErrCartItemNotFound = &Error{Kind: KindNotFound, Message: "Cart item not found"}
	ErrCartEmpty        = &Error{Kind: KindInvalidState, Message: "Cart is empty"}

	ErrQuantityOutOfRange = &Error{Kind: KindInvalidArgument, Message: "Quantity out of range"}
)

func InvalidArgument(msg string) error {
	return &Error{Kind: KindInvalidArgument, Message: msg}
}

// AsError extracts the first *Error in err's chain.
func AsError(err error) (*Error, bool) {
	var derr *Error
	if errors.As(err, &derr) {
		return derr, true
	}
	return nil, false
}
