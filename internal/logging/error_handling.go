package logging

import (
	"fmt"
	"log/slog"
)

// HandleDeferredError runs a deferred cleanup such as closing an exported file.
// A cleanup failure is logged, and becomes *originalErr only when nothing
// else has failed.
func HandleDeferredError(originalErr *error, deferredOp func() error, logger *slog.Logger, operation string) {
	if deferredOp == nil {
		return
	}

	if err := deferredOp(); err != nil {
		LogError(logger, "deferred operation failed", err,
			slog.String("operation", operation),
			slog.String("component", "deferred_cleanup"))

		if *originalErr == nil {
			*originalErr = fmt.Errorf("%s failed: %w", operation, err)
		}
	}
}
