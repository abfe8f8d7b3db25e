// CLAUDE:SUMMARY Audit orchestrator: parallel measurement fan-out, AI grading, scoring, persistence.
// Package audit orchestrates one storefront audit end to end: fetch the
// first page, fan out the measurements (Lighthouse, screenshots, in-page
// device metrics), obtain the AI verdicts, compute the composite score and
// persist the report.
//
// Only the page fetch is fatal. Every other collaborator may fail; the
// scoring engine substitutes documented defaults and the failure is
// reported as a warning on the result instead of blocking the audit.
package audit

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hazyhaar/shopscan/capture"
	"github.com/hazyhaar/shopscan/grader"
	"github.com/hazyhaar/shopscan/idgen"
	"github.com/hazyhaar/shopscan/lighthouse"
	"github.com/hazyhaar/shopscan/markup"
	"github.com/hazyhaar/shopscan/score"
)

// Report is one finished audit.
type Report struct {
	ID          string              `json:"id"`
	URL         string              `json:"url"`
	Platform    string              `json:"platform,omitempty"`
	Result      score.ScoreResult   `json:"result"`
	Insights    map[string][]string `json:"insights,omitempty"`
	Screenshots []string            `json:"screenshots,omitempty"`
	Warnings    []string            `json:"warnings,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// Config configures the audit service.
type Config struct {
	// RunTimeout bounds one full audit. Default: 5m.
	RunTimeout time.Duration

	Logger *slog.Logger
}

func (c *Config) defaults() {
	if c.RunTimeout <= 0 {
		c.RunTimeout = 5 * time.Minute
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Service runs audits.
type Service struct {
	cfg    Config
	store  *Store
	shots  *capture.Service
	lh     *lighthouse.Runner
	grader grader.Grader
	newID  idgen.Generator

	// fetchHTML is swappable in tests.
	fetchHTML func(ctx context.Context, url string) ([]byte, error)
}

// New creates the audit Service. store may be nil for an ephemeral service.
func New(store *Store, shots *capture.Service, lh *lighthouse.Runner, g grader.Grader, cfg Config) *Service {
	cfg.defaults()
	return &Service{
		cfg:       cfg,
		store:     store,
		shots:     shots,
		lh:        lh,
		grader:    g,
		newID:     idgen.Prefixed("aud_", idgen.UUIDv7()),
		fetchHTML: markup.Fetch,
	}
}

// Run audits one storefront URL and returns the persisted report.
func (s *Service) Run(ctx context.Context, rawURL string) (*Report, error) {
	target, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.RunTimeout)
	defer cancel()

	log := s.cfg.Logger
	start := time.Now()
	log.Info("audit: starting", "url", target)

	// The page itself is the one input the audit cannot proceed without.
	html, err := s.fetchHTML(runCtx, target)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch page: %v", ErrUpstream, err)
	}

	var (
		mu       sync.Mutex
		warnings []string
		lhm      *score.LighthouseMetrics
		cv       *score.CVMetrics
		captured []capture.Result
	)
	warn := func(format string, args ...any) {
		mu.Lock()
		warnings = append(warnings, fmt.Sprintf(format, args...))
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		raw, err := s.lh.Run(gctx, target, lighthouse.ProfileMobile)
		if err != nil {
			warn("lighthouse: %v", err)
			return nil
		}
		m, err := score.ExtractMetrics(raw)
		if err != nil {
			warn("lighthouse report: %v", err)
			return nil
		}
		mu.Lock()
		lhm = m
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		for _, vp := range []capture.Viewport{capture.DesktopViewport, capture.MobileViewport} {
			res, err := s.shots.Capture(gctx, capture.Request{URL: target, Viewport: vp})
			if err != nil {
				warn("capture %dx%d: %v", vp.Width, vp.Height, err)
				continue
			}
			mu.Lock()
			captured = append(captured, *res)
			mu.Unlock()
		}
		return nil
	})

	g.Go(func() error {
		m, err := s.shots.Measure(gctx, target, capture.MobileViewport)
		if err != nil {
			warn("device measurements: %v", err)
			return nil
		}
		mu.Lock()
		cv = m
		mu.Unlock()
		return nil
	})

	// Goroutines degrade to warnings rather than returning errors.
	_ = g.Wait()

	platform := markup.DetectPlatform(html)
	htmlMetrics, err := markup.Analyze(html)
	if err != nil {
		warn("markup analysis: %v", err)
	}

	graderOut := s.grade(runCtx, target, platform, html, captured, warn)

	result := score.CalculateScores(graderOut, score.Measured{
		Lighthouse: lhm,
		CV:         cv,
		HTML:       htmlMetrics,
	})

	rep := &Report{
		ID:        s.newID(),
		URL:       target,
		Platform:  platform,
		Result:    result,
		Warnings:  warnings,
		CreatedAt: time.Now().UTC(),
	}
	for _, shot := range captured {
		rep.Screenshots = append(rep.Screenshots, shot.Filename)
	}
	if len(graderOut) > 0 {
		rep.Insights = make(map[string][]string, len(graderOut))
		for cat, c := range graderOut {
			rep.Insights[cat] = c.Insights
		}
	}

	if s.store != nil {
		if err := s.store.Insert(runCtx, rep); err != nil {
			log.Error("audit: persist failed", "id", rep.ID, "error", err)
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("persist: %v", err))
		}
	}

	log.Info("audit: finished",
		"id", rep.ID, "url", target, "platform", platform,
		"total", result.TotalScore, "warnings", len(rep.Warnings),
		"elapsed", time.Since(start))
	return rep, nil
}

// grade calls the AI grader with the page content and captured screenshots.
// Grading failure degrades to a nil output: the composite then applies the
// per-category defaults.
func (s *Service) grade(ctx context.Context, target, platform string, html []byte, shots []capture.Result, warn func(string, ...any)) score.GraderOutput {
	in := grader.Input{URL: target, Platform: platform, HTML: html}
	for _, shot := range shots {
		data, err := os.ReadFile(shot.LocalPath)
		if err != nil {
			continue
		}
		in.Screenshots = append(in.Screenshots, data)
	}

	out, err := s.grader.Grade(ctx, in)
	if err != nil {
		warn("grading (%s): %v", s.grader.Name(), err)
		return nil
	}
	return out
}

func validateURL(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: url is required", ErrInvalidURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return u.String(), nil
}
