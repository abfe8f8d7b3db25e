package score

import "errors"

// ErrMalformedReport is returned when a page-speed report has no audits
// collection at all. Partial reports (some audits missing) are not errors.
var ErrMalformedReport = errors.New("score: report has no audits collection")
