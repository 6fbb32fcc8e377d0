package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabled(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLoggingEnabled(t *testing.T) {
	chdir(t, t.TempDir())
	defer log.SetOutput(os.Stderr)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer f.Close()

	if log.Writer() == os.Stdout || log.Writer() == os.Stderr {
		t.Error("Log output must stay off the terminal")
	}

	log.Println("round started")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	chdir(t, t.TempDir())
	defer log.SetOutput(os.Stderr)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected non-nil log file")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected fresh log file, got %d bytes", info.Size())
	}
}
