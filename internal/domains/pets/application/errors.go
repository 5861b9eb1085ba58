package application

import (
	"fmt"

	"github.com/Apurer/petstore-api/internal/shared/failure"
)

// mapError leaves classified failures untouched so adapters can map them by kind,
// and annotates infrastructure errors with the failing operation.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := failure.KindOf(err); ok {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
