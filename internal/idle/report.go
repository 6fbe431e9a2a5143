package idle

import "time"

// Report is the JSON shape of one successful query, shared by the CLI and
// the HTTP surface.
type Report struct {
	Backend string `json:"backend"`
	IdleMS  int64  `json:"idle_ms"`
	Idle    string `json:"idle"`
}

// NewReport truncates d to whole milliseconds so both fields agree.
func NewReport(backend string, d time.Duration) Report {
	d = d.Truncate(time.Millisecond)
	return Report{Backend: backend, IdleMS: d.Milliseconds(), Idle: d.String()}
}
