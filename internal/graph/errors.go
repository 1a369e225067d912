package graph

import (
	"errors"

	"github.com/mattlgroff/people-api/internal/models"
	"github.com/mattlgroff/people-api/pkg/config"
	"github.com/mattlgroff/people-api/pkg/logger"
)

var errInternal = errors.New("internal server error")

// resolverError decides what a failed resolver reports to the client.
// Validation and not-found errors carry safe, intentional messages and pass
// through unchanged. Anything else is logged, and in release mode its
// message is replaced with an opaque one.
func resolverError(err error) error {
	if models.IsValidation(err) || models.IsNotFound(err) {
		return err
	}

	logger.WithError(err).Error("GraphQL resolver failed")

	if config.AppConfig != nil && config.AppConfig.IsRelease() {
		return errInternal
	}
	return err
}
