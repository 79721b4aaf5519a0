package scanner

import (
	"runtime"

	"doppel/config"
	"doppel/logger"

	"github.com/shirou/gopsutil/v4/mem"
)

// adjustConcurrency clamps the default worker count on small-memory hosts.
// An explicit --concurrency always wins.
func adjustConcurrency(cfg *config.Config) {
	if cfg.ConcurrencySet {
		return
	}
	workers := runtime.NumCPU()
	if vm, err := mem.VirtualMemory(); err == nil {
		totalGB := vm.Total / (1024 * 1024 * 1024)
		switch {
		case totalGB <= 4:
			workers = min(workers, 2)
		case totalGB <= 8:
			workers = min(workers, 4)
		}
	} else {
		logger.Debugf("Memory probe failed: %v", err)
	}
	cfg.Concurrency = max(1, workers)
}
