package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesToWorkspaceLog(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp})
	if err != nil {
		t.Fatalf("Setup: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("IsReady: %v", err)
	}

	L().Info("measurement.started", "target", "bootes")
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(tmp, ".gopvac", "logs", "gopvac.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "measurement.started") {
		t.Fatalf("log missing record: %s", b)
	}

	if err := IsReady(); err == nil {
		t.Fatalf("expected not-ready after cleanup")
	}
}
