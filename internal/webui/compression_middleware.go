package webui

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/klauspost/compress/gzip"
)

// compressedTypes are the bodies this site produces that are worth gzipping:
// the page, the stylesheet and the health/debug JSON.
var compressedTypes = []string{"text/html", "text/css", "application/json"}

// newCompressor gzips the site's text responses once they reach minSize bytes.
func newCompressor(minSize int) (func(http.Handler) http.HandlerFunc, error) {
	wrap, err := gzhttp.NewWrapper(
		gzhttp.MinSize(minSize),
		gzhttp.CompressionLevel(gzip.DefaultCompression),
		gzhttp.ContentTypes(compressedTypes),
	)
	if err != nil {
		return nil, fmt.Errorf("configure compression (min size %d): %w", minSize, err)
	}
	return wrap, nil
}
