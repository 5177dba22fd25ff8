package client

import (
	"sync"
	"sync/atomic"
	"time"

	"api/internal/models"
	"api/internal/reporting"
)

// FetchFunc loads dashboard data for an interval. Nil bounds mean unbounded.
type FetchFunc func(after, before *time.Time) (models.DashboardResponse, error)

// DashboardWatcher refreshes the dashboard report as the selected range
// changes. Refreshes may overlap; only the most recently requested one is
// ever applied, so a slow response for an old range can never overwrite a
// newer one.
type DashboardWatcher struct {
	fetch FetchFunc
	now   func() time.Time

	generation atomic.Uint64

	mu     sync.Mutex
	report reporting.Report
	data   models.DashboardResponse

	// OnReport, when set, is called under no lock after each applied refresh.
	OnReport func(reporting.Report)
}

func NewDashboardWatcher(c *Client) *DashboardWatcher {
	return &DashboardWatcher{fetch: c.Dashboard, now: time.Now}
}

// Refresh loads the given range and applies it unless a newer Refresh was
// requested meanwhile. A superseded refresh returns nil even when its fetch
// failed; the error belongs to a range nobody is looking at anymore. It
// blocks for the duration of the fetch; callers wanting fire-and-forget run
// it in a goroutine.
func (w *DashboardWatcher) Refresh(key reporting.RangeKey) error {
	generation := w.generation.Add(1)

	after, before := reporting.Range(key, w.now())
	data, err := w.fetch(after, before)
	if err != nil {
		if generation != w.generation.Load() {
			return nil
		}
		return err
	}

	report := reporting.BuildReport(data.Reviews, data.Complaints)

	w.mu.Lock()
	if generation != w.generation.Load() {
		w.mu.Unlock()
		return nil
	}
	w.report = report
	w.data = data
	callback := w.OnReport
	w.mu.Unlock()

	if callback != nil {
		callback(report)
	}
	return nil
}

// Report returns the last applied report.
func (w *DashboardWatcher) Report() reporting.Report {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.report
}

// Data returns the raw reviews and complaints behind the last applied
// report, for tabular views that need more than the aggregates.
func (w *DashboardWatcher) Data() models.DashboardResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.data
}
