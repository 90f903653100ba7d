package system

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFindLatestRecording(t *testing.T) {
	dir := t.TempDir()

	files := []string{
		filepath.Join(dir, "session_a.yaml"),
		filepath.Join(dir, "session_b.yml"),
		filepath.Join(dir, "notes.txt"), // ignored
	}
	for i, f := range files {
		if err := os.WriteFile(f, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		if err := os.Chtimes(f, modTime, modTime); err != nil {
			t.Fatal(err)
		}
	}

	latest, err := FindLatestRecording(dir)
	if err != nil {
		t.Fatalf("FindLatestRecording failed: %v", err)
	}
	if latest != files[1] {
		t.Errorf("expected %s, got %s", files[1], latest)
	}
}

func TestFindLatestRecordingEmptyDir(t *testing.T) {
	if _, err := FindLatestRecording(t.TempDir()); err == nil {
		t.Error("expected error for directory without recordings")
	}
}

func TestSnapshotNeverPanics(t *testing.T) {
	st := Snapshot()
	if st.NumCPU < 1 {
		t.Errorf("NumCPU = %d, want >= 1", st.NumCPU)
	}
}
