package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

const defaultHeartbeatInterval = 30 * time.Second

// StatsSource is anything reporting pool stats.
type StatsSource interface {
	Stats() Stats
}

// HeartbeatWorker logs the pool load and the process footprint at a fixed interval.
type HeartbeatWorker struct {
	log      *slog.Logger
	pools    map[string]StatsSource
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, interval time.Duration, pools map[string]StatsSource) *HeartbeatWorker {
	if interval <= 0 {
		interval = defaultHeartbeatInterval
	}
	return &HeartbeatWorker{log: log, pools: pools, interval: interval}
}

// Run executes the main loop of the worker until ctx is cancelled.
func (w *HeartbeatWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	rss, cpu, err := selfStats(p)
	if err != nil {
		w.log.Debug("Failed to collect self stats", "err", err)
	}
	for name, pool := range w.pools {
		stats := pool.Stats()
		w.log.Info("Heartbeat",
			"pool", name,
			"notifiers", stats.Notifiers,
			"active", stats.Active,
			"pending", stats.Pending,
			"rss_bytes", rss,
			"cpu_percent", cpu)
	}
}

// selfStats retrieves memory and CPU usage for the given process.
func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
