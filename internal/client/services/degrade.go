package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/clinicdesk/internal/client/api"
	"github.com/dmitrijs2005/clinicdesk/internal/logging"
)

func logDegraded(ctx context.Context, log logging.Logger, op string, err error) {
	args := []any{"op", op, "error", err}
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		args = append(args, "path", apiErr.Path, "status", apiErr.StatusCode, "request_id", apiErr.RequestID)
	}
	log.Warn(ctx, "read degraded to empty result", args...)
}

// orEmpty never returns nil; a JSON null body decodes to a nil slice.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
