package system

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Stats is a host snapshot attached to export performance reports.
type Stats struct {
	NumCPU     int
	CPUPercent float64
	MemUsedMB  uint64
	MemPercent float64
}

// Snapshot samples host CPU and memory usage. Failures degrade to
// zeroed fields; a missing stat must never fail an export.
func Snapshot() Stats {
	st := Stats{NumCPU: runtime.NumCPU()}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		st.CPUPercent = percents[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		st.MemUsedMB = vm.Used / (1024 * 1024)
		st.MemPercent = vm.UsedPercent
	}
	return st
}

// FindLatestRecording finds the most recent recording log in dir.
func FindLatestRecording(dir string) (string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var latestFile string
	var latestTime time.Time

	for _, f := range files {
		if f.IsDir() {
			continue
		}
		name := strings.ToLower(f.Name())
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(latestTime) {
			latestTime = info.ModTime()
			latestFile = filepath.Join(dir, f.Name())
		}
	}

	if latestFile == "" {
		return "", fmt.Errorf("no recording logs found in %s", dir)
	}

	return latestFile, nil
}
