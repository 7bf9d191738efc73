package service

import (
	"context"
	"errors"

	errs "github.com/umalmyha/salescrm/internal/errors"
)

// storeErr classifies storage failures - deadline means the store didn't
// answer in time and the caller may retry
func storeErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errs.NewStoreUnavailableErr(err)
	}
	return err
}
