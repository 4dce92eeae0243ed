package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewDiscardsByDefault(t *testing.T) {
	log, err := New(Options{})
	if err != nil {
		t.Fatal(err)
	}
	if log.Out != io.Discard {
		t.Error("default logger should discard output")
	}
}

func TestNewDebugWritesToStderr(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Options{Debug: true, Stderr: &buf})
	if err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v", log.GetLevel())
	}

	log.WithField("path", "/tmp/x").Debug("deleted")
	if !strings.Contains(buf.String(), "deleted") || !strings.Contains(buf.String(), "path=/tmp/x") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestNewFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "macmole.log")
	log, err := New(Options{File: file})
	if err != nil {
		t.Fatal(err)
	}

	log.Info("session started")

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Errorf("log file = %q", data)
	}
}
