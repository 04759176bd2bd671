package testutil

import (
	"aocbuilder/lib/telemetry"
	"sync"
)

type Report struct {
	Level  string
	ID     string
	Params []any
}

// RecordingAPI is a telemetry.API that keeps every report in memory.
type RecordingAPI struct {
	mu      sync.Mutex
	reports []Report
}

var _ telemetry.API = (*RecordingAPI)(nil)

func (r *RecordingAPI) record(level, id string, params []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, Report{Level: level, ID: id, Params: params})
}

func (r *RecordingAPI) ReportBroken(id string, params ...any) {
	r.record("broken", id, params)
}

func (r *RecordingAPI) ReportWarning(id string, params ...any) {
	r.record("warning", id, params)
}

func (r *RecordingAPI) ReportDebug(id string, params ...any) {
	r.record("debug", id, params)
}

func (r *RecordingAPI) ReportCount(id string, count int64) {
	r.record("count", id, []any{count})
}

// IDs returns the ids reported at a level, in order.
func (r *RecordingAPI) IDs(level string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, report := range r.reports {
		if report.Level == level {
			out = append(out, report.ID)
		}
	}
	return out
}
