package shield

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSecurityHeaders_SetOnEveryResponse(t *testing.T) {
	// WHAT: All configured headers appear on the response.
	h := SecurityHeaders(DefaultHeaders())(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestMaxBody_CapsReads(t *testing.T) {
	// WHAT: Reading a body past the cap fails inside the handler.
	// WHY: Oversized JSON must be rejected before it is buffered whole.
	var readErr error
	h := MaxBody(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		_, readErr = r.Body.Read(buf)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 64))))
	if readErr == nil {
		t.Error("expected read past cap to fail")
	}
}

func TestTraceID_HeaderAndLogger(t *testing.T) {
	// WHAT: Each request gets a trace ID header and a context logger.
	var sawLogger bool
	h := TraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = GetLogger(r.Context()) != nil
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Header().Get("X-Trace-ID") == "" {
		t.Error("missing X-Trace-ID header")
	}
	if !sawLogger {
		t.Error("context logger not set")
	}
}
