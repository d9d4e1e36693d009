package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pmcli/postmortem/internal/storage"
)

func TestDayPath(t *testing.T) {
	s := storage.FileStore{Root: "/data/pm"}
	day := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)
	want := filepath.Join("/data/pm", "2026", "03", "Daily Postmortem-2026-03-06.txt")
	if got := s.DayPath(day); got != want {
		t.Errorf("DayPath = %q, want %q", got, want)
	}
}

func TestReadDayAbsent(t *testing.T) {
	s := storage.FileStore{Root: t.TempDir()}
	day := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	text, ok, err := s.ReadDay(day)
	if err != nil {
		t.Fatalf("ReadDay on missing file: %v", err)
	}
	if ok {
		t.Error("ReadDay ok = true for missing file, want false")
	}
	if text != "" {
		t.Errorf("ReadDay text = %q, want empty", text)
	}
}

func TestReadDayPresent(t *testing.T) {
	s := storage.FileStore{Root: t.TempDir()}
	day := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	path := s.DayPath(day)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		t.Fatal(err)
	}
	content := "Start Time: 9:00am\nStop Time: 5:00pm\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	text, ok, err := s.ReadDay(day)
	if err != nil {
		t.Fatalf("ReadDay: %v", err)
	}
	if !ok {
		t.Fatal("ReadDay ok = false, want true")
	}
	if text != content {
		t.Errorf("ReadDay text = %q, want %q", text, content)
	}
}

func TestCreateDay(t *testing.T) {
	s := storage.FileStore{Root: t.TempDir()}
	day := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	path, created, err := s.CreateDay(day)
	if err != nil {
		t.Fatalf("CreateDay: %v", err)
	}
	if !created {
		t.Error("CreateDay created = false on first call, want true")
	}

	text, ok, err := s.ReadDay(day)
	if err != nil || !ok {
		t.Fatalf("ReadDay after create: ok=%v err=%v", ok, err)
	}
	if !strings.Contains(text, "Daily Postmortem 2026-03-06") {
		t.Errorf("template missing dated header: %q", text)
	}
	for _, label := range []string{"Arrival Time:", "Departure Time:", "Lunch/Breaks:"} {
		if !strings.Contains(text, label) {
			t.Errorf("template missing %q", label)
		}
	}

	// Second create must not overwrite.
	if err := os.WriteFile(path, []byte("edited"), 0o600); err != nil {
		t.Fatal(err)
	}
	path2, created, err := s.CreateDay(day)
	if err != nil {
		t.Fatalf("CreateDay (second): %v", err)
	}
	if created {
		t.Error("CreateDay created = true on existing file, want false")
	}
	if path2 != path {
		t.Errorf("CreateDay path = %q, want %q", path2, path)
	}
	text, _, _ = s.ReadDay(day)
	if text != "edited" {
		t.Errorf("existing report was overwritten: %q", text)
	}
}
