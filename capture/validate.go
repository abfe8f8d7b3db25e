// CLAUDE:SUMMARY Screenshot filename validation: rejects traversal sequences and anything outside the generated-name shape.
package capture

import (
	"fmt"
	"regexp"
	"strings"
)

const maxFilenameLen = 128

// filenamePattern matches the names this service generates: a "shot_"
// prefix, a UUID body, and a .png extension.
var filenamePattern = regexp.MustCompile(`^shot_[0-9a-f-]{36}\.png$`)

// validateFilename rejects path traversal and foreign names before any
// filesystem access. Everything the service serves was generated by it, so
// the shape check is exact rather than a denylist.
func validateFilename(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFilename)
	}
	if len(name) > maxFilenameLen {
		return fmt.Errorf("%w: name too long", ErrInvalidFilename)
	}
	if strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return fmt.Errorf("%w: path separators not allowed", ErrInvalidFilename)
	}
	if !filenamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	}
	return nil
}
