// CLAUDE:SUMMARY Invokes the Lighthouse CLI for one URL and returns the raw JSON report.
// Package lighthouse invokes the Lighthouse CLI against one URL and returns
// the raw JSON report. Normalization of the report into the compact metric
// record lives in score.ExtractMetrics; this package only owns the process
// boundary.
package lighthouse

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"
)

// ErrUnavailable is returned when the lighthouse binary is not installed.
// The audit pipeline degrades to an absent speed record in that case.
var ErrUnavailable = errors.New("lighthouse: binary not found")

// Profile selects the emulated device for the audit run.
type Profile string

const (
	ProfileMobile  Profile = "mobile"
	ProfileDesktop Profile = "desktop"
)

// Config configures the runner.
type Config struct {
	// Bin is the lighthouse executable. Default: "lighthouse" on PATH.
	Bin string

	// Timeout bounds one audit run. Default: 90s.
	Timeout time.Duration

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.Bin == "" {
		c.Bin = "lighthouse"
	}
	if c.Timeout <= 0 {
		c.Timeout = 90 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Runner runs Lighthouse audits.
type Runner struct {
	cfg Config
}

// New creates a Runner.
func New(cfg Config) *Runner {
	cfg.defaults()
	return &Runner{cfg: cfg}
}

// Available reports whether the lighthouse binary can be resolved.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.cfg.Bin)
	return err == nil
}

// Run audits one URL and returns the raw JSON report bytes.
func (r *Runner) Run(ctx context.Context, url string, profile Profile) ([]byte, error) {
	if _, err := exec.LookPath(r.cfg.Bin); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, r.cfg.Bin)
	}

	runCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	args := []string{
		url,
		"--output=json",
		"--output-path=stdout",
		"--only-categories=performance",
		"--quiet",
		"--chrome-flags=--headless --no-sandbox --disable-gpu",
	}
	if profile == ProfileDesktop {
		args = append(args, "--preset=desktop")
	} else {
		args = append(args, "--form-factor=mobile")
	}

	cmd := exec.CommandContext(runCtx, r.cfg.Bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Run(); err != nil {
		if runCtx.Err() != nil {
			return nil, fmt.Errorf("lighthouse: %s timed out after %s", url, r.cfg.Timeout)
		}
		return nil, fmt.Errorf("lighthouse: %s: %w (%s)", url, err, firstLine(stderr.Bytes()))
	}

	r.cfg.Logger.Info("lighthouse: audit complete",
		"url", url, "profile", string(profile),
		"bytes", stdout.Len(), "elapsed", time.Since(start))

	return stdout.Bytes(), nil
}

func firstLine(b []byte) string {
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		b = b[:i]
	}
	if len(b) > 200 {
		b = b[:200]
	}
	return string(bytes.TrimSpace(b))
}
