// CLAUDE:SUMMARY Sentinel errors for the capture service: invalid filename, not found, browser unavailable.
package capture

import "errors"

// ErrInvalidFilename is returned when a filename fails validation before
// any filesystem operation. Surfaced as HTTP 400.
var ErrInvalidFilename = errors.New("capture: invalid filename")

// ErrNotFound is returned when the named screenshot does not exist.
// Surfaced as HTTP 404.
var ErrNotFound = errors.New("capture: screenshot not found")

// ErrBrowserUnavailable is returned when no Chrome instance is running.
var ErrBrowserUnavailable = errors.New("capture: browser unavailable")
