package application

import (
	"fmt"

	"github.com/Apurer/petstore-api/internal/shared/failure"
)

// mapError keeps classified failures as they are and annotates everything else with the operation.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := failure.KindOf(err); ok {
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
