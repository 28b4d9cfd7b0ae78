package observability

import (
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"
)

// Stats is a point in time view of the node activity, served as JSON by the
// debug server and logged by the heartbeat.
type Stats struct {
	Polls       uint64    `json:"polls"`
	PollErrors  uint64    `json:"poll_errors"`
	DingsSeen   uint64    `json:"dings_seen"`
	Submits     uint64    `json:"submits"`
	SubmitFails uint64    `json:"submit_fails"`
	LastPoll    time.Time `json:"last_poll"`
	AllocMemMb  uint64    `json:"alloc_mem_mb"`
	NumGC       uint32    `json:"num_gc"`
}

// Monitoring holds lock free counters updated by the poller and the service.
type Monitoring struct {
	log         *slog.Logger
	polls       atomic.Uint64
	pollErrors  atomic.Uint64
	dingsSeen   atomic.Uint64
	submits     atomic.Uint64
	submitFails atomic.Uint64
	lastPoll    atomic.Int64
}

func NewMonitoring(log *slog.Logger) *Monitoring {
	return &Monitoring{log: log}
}

// IncrPoll records a completed poll and the number of dings it returned.
func (m *Monitoring) IncrPoll(dings int, at time.Time) {
	m.polls.Add(1)
	m.dingsSeen.Store(uint64(dings))
	m.lastPoll.Store(at.UnixNano())
}

func (m *Monitoring) IncrPollError() {
	if n := m.pollErrors.Add(1); n%10 == 0 {
		m.log.Warn("Polling keeps failing", "poll_errors", n)
	}
}

func (m *Monitoring) IncrSubmit() {
	m.submits.Add(1)
}

func (m *Monitoring) IncrSubmitFail() {
	m.submitFails.Add(1)
}

func (m *Monitoring) Latest() Stats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	stats := Stats{
		Polls:       m.polls.Load(),
		PollErrors:  m.pollErrors.Load(),
		DingsSeen:   m.dingsSeen.Load(),
		Submits:     m.submits.Load(),
		SubmitFails: m.submitFails.Load(),
		AllocMemMb:  mem.Alloc / 1024 / 1024,
		NumGC:       mem.NumGC,
	}
	if nano := m.lastPoll.Load(); nano != 0 {
		stats.LastPoll = time.Unix(0, nano).UTC()
	}
	return stats
}

// LogAttrs returns the counters as slog attributes.
func (s Stats) LogAttrs() []any {
	return []any{
		"polls", s.Polls,
		"poll_errors", s.PollErrors,
		"dings", s.DingsSeen,
		"submits", s.Submits,
		"submit_fails", s.SubmitFails,
		"mem_mb", s.AllocMemMb,
	}
}
