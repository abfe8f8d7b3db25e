// CLAUDE:SUMMARY Sentinel errors for the audit service: invalid URL, not found, upstream failure.
package audit

import "errors"

// ErrInvalidURL is returned when the audited URL fails validation.
// Surfaced as HTTP 400.
var ErrInvalidURL = errors.New("audit: invalid url")

// ErrNotFound is returned when the requested audit does not exist.
// Surfaced as HTTP 404.
var ErrNotFound = errors.New("audit: not found")

// ErrUpstream wraps failures of collaborators the audit cannot proceed
// without. Surfaced as HTTP 500.
var ErrUpstream = errors.New("audit: upstream failure")
