package appconf

import (
	"errors"
	"fmt"
	"strings"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// DefaultImageHost serves the placeholder avatars shown on the page.
const DefaultImageHost = "picsum.photos"

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the --env flag to an Environment. Unknown values
// fall back to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

// Config holds all the configuration settings for the site server.
type Config struct {
	Port int
	Env  Environment
	// ImageHost is the placeholder image host, without scheme.
	ImageHost string
	// RateLimit is the number of requests per second allowed per client address.
	// Negative disables limiting.
	RateLimit int
	// GzipMinSize is the smallest response body, in bytes, that gets gzipped.
	GzipMinSize int
}

func Default() Config {
	return Config{
		Port:        4000,
		Env:         Development,
		ImageHost:   DefaultImageHost,
		RateLimit:   50,
		GzipMinSize: 1024,
	}
}

func (c Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range", c.Port))
	}
	host := strings.TrimSpace(c.ImageHost)
	if host == "" {
		errs = append(errs, errors.New("image host cannot be empty"))
	} else if strings.Contains(host, "/") {
		errs = append(errs, fmt.Errorf("image host %q must not contain a scheme or path", host))
	}
	if c.GzipMinSize < 0 {
		errs = append(errs, fmt.Errorf("gzip min size %d cannot be negative", c.GzipMinSize))
	}
	return errors.Join(errs...)
}

// DebugEnabled reports whether the debug content pages are mounted.
func (c Config) DebugEnabled() bool {
	return c.Env != Production
}
