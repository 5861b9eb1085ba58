package errors

import (
	"github.com/Apurer/petstore-api/internal/shared/failure"
)

// CodeExtension names the extension member carrying the failure kind.
const CodeExtension = "code"

var kindTemplates = map[failure.Kind]ProblemDetail{
	failure.KindMissingField:          ErrValidation,
	failure.KindFieldTooLong:          ErrValidation,
	failure.KindMissingParameter:      ErrValidation,
	failure.KindInvalidParameter:      ErrValidation,
	failure.KindInvalidQuantity:       ErrValidation,
	failure.KindMissingFilePart:       ErrValidation,
	failure.KindEmptyFilename:         ErrValidation,
	failure.KindDuplicatePet:          ErrBusinessRule,
	failure.KindDuplicateUsername:     ErrBusinessRule,
	failure.KindInsufficientQuantity:  ErrBusinessRule,
	failure.KindInsufficientInventory: ErrBusinessRule,
	failure.KindNotFound:              ErrNotFound,
	failure.KindKeyNotFound:           ErrNotFound,
	failure.KindInvalidCredentials:    ErrUnauthorized,
	failure.KindIdempotencyConflict:   ErrConflict,
}

// FailureMapper converts a classified failure into a problem whose detail is the failure message.
// It is meant to be chained into a Responder.
func FailureMapper(err error) (ProblemDetail, bool) {
	kind, ok := failure.KindOf(err)
	if !ok {
		return ProblemDetail{}, false
	}
	template, ok := kindTemplates[kind]
	if !ok {
		template = ErrBadRequest
	}
	return template.WithDetail(failure.MessageOf(err)).WithExtension(CodeExtension, string(kind)), true
}
