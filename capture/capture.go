// CLAUDE:SUMMARY Screenshot service: capture via headless Chrome, list/metadata/delete lifecycle on a local directory.
// Package capture owns the screenshot lifecycle of the audit service:
// capturing a storefront page in an emulated viewport, and listing,
// inspecting and deleting the resulting PNG files.
package capture

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/hazyhaar/shopscan/capture/internal/browser"
	"github.com/hazyhaar/shopscan/idgen"
)

// Viewport describes the emulated device for a capture.
type Viewport struct {
	Width  int  `json:"width"`
	Height int  `json:"height"`
	Mobile bool `json:"isMobile"`
}

// DesktopViewport and MobileViewport are the two profiles the audit
// pipeline captures with.
var (
	DesktopViewport = Viewport{Width: 1440, Height: 900}
	MobileViewport  = Viewport{Width: 390, Height: 844, Mobile: true}
)

// Request describes one capture.
type Request struct {
	URL      string        `json:"url"`
	FullPage bool          `json:"fullPage"`
	Viewport Viewport      `json:"viewport"`
	WaitFor  time.Duration `json:"-"`
}

// Result describes a stored screenshot.
type Result struct {
	Filename  string    `json:"filename"`
	LocalPath string    `json:"localPath"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	Viewport  Viewport  `json:"viewport"`
}

// Metadata describes a stored screenshot file.
type Metadata struct {
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
}

// BrowserConfig controls the managed Chrome instance.
type BrowserConfig struct {
	// Remote is a DevTools websocket URL. When set, the service connects to
	// an existing Chrome instead of launching one.
	Remote string `yaml:"remote"`

	// RecycleInterval restarts the browser periodically to cap memory drift.
	RecycleInterval time.Duration `yaml:"recycle_interval"`
}

// Config configures the capture service.
type Config struct {
	// Dir is the directory screenshots are stored in.
	Dir string `yaml:"dir"`

	// DefaultWait is the settle delay after load when a request does not
	// specify one.
	DefaultWait time.Duration `yaml:"default_wait"`

	Browser BrowserConfig `yaml:"browser"`

	Logger *slog.Logger `yaml:"-"`
}

func (c *Config) defaults() {
	if c.Dir == "" {
		c.Dir = "shots"
	}
	if c.DefaultWait <= 0 {
		c.DefaultWait = 2 * time.Second
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Service captures and manages screenshots.
type Service struct {
	cfg   Config
	mgr   *browser.Manager
	newID idgen.Generator
}

// New creates a capture Service. The browser is not launched until Start is
// called; before that, captures fail with ErrBrowserUnavailable while the
// list/metadata/delete operations work normally.
func New(cfg Config) (*Service, error) {
	cfg.defaults()
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("capture: create dir: %w", err)
	}
	mgr := browser.NewManager(browser.Config{
		RemoteURL:       cfg.Browser.Remote,
		RecycleInterval: cfg.Browser.RecycleInterval,
		Logger:          cfg.Logger,
	})
	return &Service{
		cfg:   cfg,
		mgr:   mgr,
		newID: idgen.Prefixed("shot_", idgen.UUIDv7()),
	}, nil
}

// Start launches (or connects to) the browser.
func (s *Service) Start(ctx context.Context) error {
	return s.mgr.Start(ctx)
}

// Close shuts the browser down.
func (s *Service) Close() error {
	return s.mgr.Close()
}

// Capture loads the URL in an emulated viewport and stores a PNG under the
// service directory.
func (s *Service) Capture(ctx context.Context, req Request) (*Result, error) {
	if s.mgr.Browser() == nil {
		return nil, ErrBrowserUnavailable
	}
	wait := req.WaitFor
	if wait <= 0 {
		wait = s.cfg.DefaultWait
	}
	vp := req.Viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = DesktopViewport
	}

	tab, err := browser.OpenTab(ctx, s.mgr, req.URL, browser.Viewport(vp), wait)
	if err != nil {
		return nil, err
	}
	defer tab.Close()

	data, err := tab.Screenshot(ctx, req.FullPage)
	if err != nil {
		return nil, err
	}

	name := s.newID() + ".png"
	path := filepath.Join(s.cfg.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("capture: write %s: %w", name, err)
	}

	s.cfg.Logger.Info("capture: stored screenshot",
		"url", req.URL, "file", name, "bytes", len(data), "fullPage", req.FullPage)

	return &Result{
		Filename:  name,
		LocalPath: path,
		Size:      int64(len(data)),
		CreatedAt: time.Now().UTC(),
		Viewport:  vp,
	}, nil
}

// List returns metadata for all stored screenshots, newest first.
func (s *Service) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("capture: read dir: %w", err)
	}
	out := make([]Metadata, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || validateFilename(e.Name()) != nil {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, fileMetadata(e.Name(), info))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ModifiedAt.After(out[j].ModifiedAt) })
	return out, nil
}

// Metadata returns size and timestamps for one screenshot.
func (s *Service) Metadata(name string) (*Metadata, error) {
	if err := validateFilename(name); err != nil {
		return nil, err
	}
	info, err := os.Stat(filepath.Join(s.cfg.Dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("capture: stat %s: %w", name, err)
	}
	md := fileMetadata(name, info)
	return &md, nil
}

// Delete removes one screenshot by name.
func (s *Service) Delete(name string) error {
	if err := validateFilename(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.cfg.Dir, name)); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return fmt.Errorf("capture: delete %s: %w", name, err)
	}
	s.cfg.Logger.Info("capture: deleted screenshot", "file", name)
	return nil
}

// Path resolves a validated screenshot name to its local path.
func (s *Service) Path(name string) (string, error) {
	if err := validateFilename(name); err != nil {
		return "", err
	}
	return filepath.Join(s.cfg.Dir, name), nil
}

func fileMetadata(name string, info os.FileInfo) Metadata {
	// Birth time is not portable; modification time stands in for both on
	// files this service writes exactly once.
	return Metadata{
		Filename:   name,
		Size:       info.Size(),
		CreatedAt:  info.ModTime().UTC(),
		ModifiedAt: info.ModTime().UTC(),
	}
}
