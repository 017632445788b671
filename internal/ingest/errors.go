package ingest

import "errors"

// ErrUnsupportedFormat is returned for file extensions with no registered loader
var ErrUnsupportedFormat = errors.New("unsupported schema format")
