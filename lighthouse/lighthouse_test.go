package lighthouse

import (
	"errors"
	"testing"
	"time"
)

func TestRun_MissingBinaryIsUnavailable(t *testing.T) {
	// WHAT: A lighthouse binary that cannot be resolved fails with
	// ErrUnavailable before any process is spawned.
	// WHY: The pipeline treats this as "speed unmeasured", not as a crash.
	r := New(Config{Bin: "lighthouse-definitely-not-installed", Timeout: time.Second})
	_, err := r.Run(t.Context(), "https://example.com", ProfileMobile)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Run = %v, want ErrUnavailable", err)
	}
	if r.Available() {
		t.Error("Available() = true for a missing binary")
	}
}

func TestConfig_Defaults(t *testing.T) {
	// WHAT: Zero config resolves to the PATH binary and a 90s timeout.
	cfg := Config{}
	cfg.defaults()
	if cfg.Bin != "lighthouse" {
		t.Errorf("Bin = %q, want lighthouse", cfg.Bin)
	}
	if cfg.Timeout != 90*time.Second {
		t.Errorf("Timeout = %v, want 90s", cfg.Timeout)
	}
}
