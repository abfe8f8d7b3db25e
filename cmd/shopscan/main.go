// CLAUDE:SUMMARY Entry point for the shopscan HTTP service — chi router, sqlite store, headless Chrome, optional MCP stdio.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	_ "modernc.org/sqlite"

	"github.com/hazyhaar/shopscan/audit"
	"github.com/hazyhaar/shopscan/capture"
	"github.com/hazyhaar/shopscan/dbopen"
	"github.com/hazyhaar/shopscan/grader"
	"github.com/hazyhaar/shopscan/lighthouse"
	"github.com/hazyhaar/shopscan/server"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		slog.Error("config", "error", err)
		os.Exit(1)
	}

	// Logging.
	var lvl slog.Level
	switch cfg.LogLevel {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	// Signal context.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Audit DB.
	db, err := dbopen.Open(cfg.DBPath, dbopen.WithMkdirAll(), dbopen.WithSchema(audit.Schema))
	if err != nil {
		slog.Error("audit db", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	store := audit.NewStore(db)

	// Screenshot service + browser. A missing Chrome is not fatal: audits
	// degrade to rule defaults and captures report the condition.
	shots, err := capture.New(capture.Config{
		Dir: cfg.ShotsDir,
		Browser: capture.BrowserConfig{
			Remote:          cfg.Browser.Remote,
			RecycleInterval: cfg.Browser.RecycleInterval,
		},
		Logger: logger,
	})
	if err != nil {
		slog.Error("capture service", "error", err)
		os.Exit(1)
	}
	if err := shots.Start(ctx); err != nil {
		slog.Warn("browser unavailable, captures disabled", "error", err)
	} else {
		defer shots.Close()
	}

	lh := lighthouse.New(lighthouse.Config{
		Bin:     cfg.Lighthouse.Bin,
		Timeout: cfg.Lighthouse.Timeout,
		Logger:  logger,
	})
	if !lh.Available() {
		slog.Warn("lighthouse binary not found, speed metrics will use defaults")
	}

	audits := audit.New(store, shots, lh, grader.Resolve(logger), audit.Config{
		RunTimeout: cfg.Audit.RunTimeout,
		Logger:     logger,
	})

	// Optional MCP stdio transport. Runs instead of warming a port for
	// agent clients that spawn the binary directly.
	if cfg.MCPTransport == "stdio" {
		mcpSrv := mcp.NewServer(&mcp.Implementation{
			Name:    "shopscan",
			Version: "1.0.0",
		}, nil)
		audits.RegisterMCP(mcpSrv)
		slog.Info("MCP stdio serving")
		if err := mcpSrv.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
			slog.Error("MCP stdio", "error", err)
			os.Exit(1)
		}
		return
	}

	// HTTP.
	handler := server.New(audits, store, shots, logger)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("shopscan listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "error", err)
	}
}
