package director

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GeneratePlanPath creates a timestamped plan filename inside dir.
func GeneratePlanPath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("plan_%s.yaml", timestamp))
}

// FindLatestPlan finds the most recent plan file in the given directory.
func FindLatestPlan(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read plans directory: %w", err)
	}

	var plans []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			plans = append(plans, filepath.Join(dir, entry.Name()))
		}
	}

	if len(plans) == 0 {
		return "", fmt.Errorf("no plan files found in %s", dir)
	}

	// Sort by modification time (newest first)
	sort.Slice(plans, func(i, j int) bool {
		infoI, _ := os.Stat(plans[i])
		infoJ, _ := os.Stat(plans[j])
		return infoI.ModTime().After(infoJ.ModTime())
	})

	return plans[0], nil
}
