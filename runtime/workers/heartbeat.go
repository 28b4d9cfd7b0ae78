package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"dinger/observability"

	"github.com/shirou/gopsutil/process"
)

const DefaultMetricInterval = 30 * time.Second

// HeartbeatWorker periodically logs process health with the poll counters.
type HeartbeatWorker struct {
	log        *slog.Logger
	monitoring *observability.Monitoring
	interval   time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, monitoring *observability.Monitoring, interval time.Duration) *HeartbeatWorker {
	if interval <= 0 {
		interval = DefaultMetricInterval
	}
	return &HeartbeatWorker{log: log, monitoring: monitoring, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	rss, cpu, status, err := selfStats(p)
	if err != nil {
		w.log.Error("Failed to collect self stats", "error", err)
		return
	}
	attrs := append([]any{"rss_mb", rss / 1024 / 1024, "cpu", cpu, "status", status},
		w.monitoring.Latest().LogAttrs()...)
	w.log.Info("Heartbeat", attrs...)
}

// selfStats returns memory, CPU and OS status of the given process.
func selfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}
	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
