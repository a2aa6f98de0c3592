package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jwaters290/GoP-vs-Lambda-Vacuum-Constant/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(root, "gopvac.yaml"), []byte("seed: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root %q, got %q", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()

	f := NewFinder()
	_, err := f.FindRoot(tmp)
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestFindRoot_AcceptsFilePath(t *testing.T) {
	tmp := t.TempDir()
	cfg := filepath.Join(tmp, "gopvac.yaml")
	if err := os.WriteFile(cfg, []byte("seed: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(cfg)
	if err != nil {
		t.Fatalf("FindRoot error: %v", err)
	}
	if got != tmp {
		t.Fatalf("expected root %q, got %q", tmp, got)
	}
}

func TestFindRoot_EmptyStartDir(t *testing.T) {
	f := NewFinder()
	if _, err := f.FindRoot(""); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
