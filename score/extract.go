// CLAUDE:SUMMARY Normalizes a raw Lighthouse JSON report into the compact LighthouseMetrics record.
package score

import (
	"encoding/json"
	"fmt"
)

// Lighthouse audit identifiers consumed by the extractor.
const (
	auditLCP       = "largest-contentful-paint"
	auditCLS       = "cumulative-layout-shift"
	auditTBT       = "total-blocking-time"
	auditFCP       = "first-contentful-paint"
	auditSI        = "speed-index"
	auditTTI       = "interactive"
	auditRequests  = "network-requests"
	auditRedirects = "redirects"
	auditErrors    = "errors-in-console"
)

type rawAudit struct {
	NumericValue *float64 `json:"numericValue"`
	Details      *struct {
		Items []json.RawMessage `json:"items"`
	} `json:"details"`
}

type rawReport struct {
	Audits map[string]rawAudit `json:"audits"`
}

// numeric returns the audit's numericValue, or nil when the audit or its
// value is absent.
func (r *rawReport) numeric(key string) *float64 {
	a, ok := r.Audits[key]
	if !ok {
		return nil
	}
	return a.NumericValue
}

// itemCount returns the length of the audit's details item list, or nil
// when the audit has no detail list.
func (r *rawReport) itemCount(key string) *int {
	a, ok := r.Audits[key]
	if !ok || a.Details == nil {
		return nil
	}
	n := len(a.Details.Items)
	return &n
}

// ExtractMetrics converts a raw Lighthouse report into a LighthouseMetrics
// record. Timings reported in milliseconds are converted to seconds, except
// TBT which the speed formula thresholds in milliseconds. Audits absent
// from the report yield absent fields, never zero, so downstream scorers
// can tell "unmeasured" from "measured as zero". A report with no audits
// collection fails with ErrMalformedReport.
func ExtractMetrics(raw []byte) (*LighthouseMetrics, error) {
	var rep rawReport
	if err := json.Unmarshal(raw, &rep); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedReport, err)
	}
	if rep.Audits == nil {
		return nil, ErrMalformedReport
	}

	m := &LighthouseMetrics{}
	if v := rep.numeric(auditLCP); v != nil {
		m.LCP = *v / 1000
	}
	if v := rep.numeric(auditCLS); v != nil {
		m.CLS = *v
	}
	if v := rep.numeric(auditTBT); v != nil {
		m.TBT = *v
	}
	m.FCP = msToSeconds(rep.numeric(auditFCP))
	m.SI = msToSeconds(rep.numeric(auditSI))
	m.TTI = msToSeconds(rep.numeric(auditTTI))
	m.Requests = rep.itemCount(auditRequests)
	m.Redirects = rep.itemCount(auditRedirects)
	m.Errors = rep.itemCount(auditErrors)

	return m, nil
}

func msToSeconds(ms *float64) *float64 {
	if ms == nil {
		return nil
	}
	s := *ms / 1000
	return &s
}
