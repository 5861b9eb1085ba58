package pets

import (
	"errors"

	"go.temporal.io/sdk/temporal"

	"github.com/Apurer/petstore-api/internal/shared/failure"
)

// EncodeFailure converts a classified failure into a non-retryable application error
// whose type is the failure kind. Unclassified errors are returned unchanged and stay retryable.
func EncodeFailure(err error) error {
	var fe *failure.Error
	if !errors.As(err, &fe) {
		return err
	}
	return temporal.NewNonRetryableApplicationError(fe.Message, string(fe.Kind), nil, fe.Message)
}

// DecodeFailure rebuilds a classified failure from an application error anywhere in err's chain.
func DecodeFailure(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) || appErr.Type() == "" {
		return err
	}
	var message string
	if appErr.HasDetails() {
		if detailsErr := appErr.Details(&message); detailsErr != nil {
			return err
		}
	}
	if message == "" {
		message = appErr.Message()
	}
	return failure.New(failure.Kind(appErr.Type()), message)
}
