package output

import "errors"

// ErrUnsupportedFormat is returned when a report format name does not resolve
// to a registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")
