// Package failure defines the typed error taxonomy shared by every bounded context.
// Transport adapters map a Kind to a status code; the Message is returned verbatim to clients.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a failure independently of the transport used to report it.
type Kind string

const (
	KindMissingField          Kind = "missing_field"
	KindFieldTooLong          Kind = "field_too_long"
	KindDuplicatePet          Kind = "duplicate_pet"
	KindNotFound              Kind = "not_found"
	KindMissingParameter      Kind = "missing_parameter"
	KindInvalidParameter      Kind = "invalid_parameter"
	KindKeyNotFound           Kind = "key_not_found"
	KindInsufficientQuantity  Kind = "insufficient_quantity"
	KindInsufficientInventory Kind = "insufficient_inventory"
	KindInvalidQuantity       Kind = "invalid_quantity"
	KindDuplicateUsername     Kind = "duplicate_username"
	KindInvalidCredentials    Kind = "invalid_credentials"
	KindMissingFilePart       Kind = "missing_file_part"
	KindEmptyFilename         Kind = "empty_filename"
	KindIdempotencyConflict   Kind = "idempotency_conflict"
)

// Error is a classified failure carrying the client-facing message.
type Error struct {
	Kind    Kind
	Message string
}

// New builds a classified failure.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds a classified failure with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// MissingField reports an absent required field using the wire name of the field.
func MissingField(field string) *Error {
	return Newf(KindMissingField, "Bad or missing data. Missing %s field", field)
}

// FieldTooLong reports a field exceeding its length limit. label is the capitalised field name.
func FieldTooLong(label string) *Error {
	return Newf(KindFieldTooLong, "Bad or missing data. %s too long", label)
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// Is matches another *Error with the same kind and message, so failures rebuilt
// after crossing a process boundary still compare equal to the package sentinels.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) || e == nil || other == nil {
		return false
	}
	return e.Kind == other.Kind && e.Message == other.Message
}

// KindOf extracts the failure kind from err, if any.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) && fe != nil {
		return fe.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// MessageOf returns the client-facing message when err is classified, otherwise err.Error().
func MessageOf(err error) string {
	var fe *Error
	if errors.As(err, &fe) && fe != nil {
		return fe.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
