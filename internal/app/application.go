package app

import (
	"log/slog"

	"innerspace.app/site/internal/appconf"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config appconf.Config
	Logger *slog.Logger
}
