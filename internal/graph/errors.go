package graph

import (
	"context"
	"errors"
	"log"

	"github.com/nikolayk812/cartql/internal/domain"
	"github.com/nikolayk812/cartql/internal/payment"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidState   = "INVALID_STATE"
	CodeBadUserInput   = "BAD_USER_INPUT"
	CodeBadRequest     = "BAD_REQUEST"
	CodeUnavailable    = "UNAVAILABLE"
	CodeInternal       = "INTERNAL"
	internalErrMessage = "internal error"
)

// queryError carries a client-safe message and a machine-readable code
// in the GraphQL error extensions.
type queryError struct {
	message string
	code    string
}

func (e *queryError) Error() string {
	return e.message
}

func (e *queryError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

var errMutationOverGET = &queryError{message: "mutations are not allowed over GET", code: CodeBadRequest}

// toQueryError exposes domain errors as they are and masks everything else.
func toQueryError(ctx context.Context, err error) error {
	if derr, ok := domain.AsError(err); ok {
		return &queryError{message: derr.Message, code: codeOf(derr.Kind)}
	}

	if errors.Is(err, payment.ErrProviderUnavailable) {
		return &queryError{message: payment.ErrProviderUnavailable.Error(), code: CodeUnavailable}
	}

	log.Printf("request %s: %v", requestID(ctx), err)

	return &queryError{message: internalErrMessage, code: CodeInternal}
}

func codeOf(kind domain.ErrorKind) string {
	switch kind {
	case domain.KindNotFound:
		return CodeNotFound
	case domain.KindInvalidState:
		return CodeInvalidState
	case domain.KindInvalidArgument:
		return CodeBadUserInput
	default:
		return CodeInternal
	}
}
