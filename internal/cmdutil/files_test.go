package cmdutil

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestRefuseOverwrite_AllowsMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.go")
	if err := RefuseOverwrite(p, []byte("x"), false); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestRefuseOverwrite_AllowsIdenticalContent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.go")
	if err := os.WriteFile(p, []byte("package x\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := RefuseOverwrite(p, []byte("package x\n"), false); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	same, err := Unchanged(p, []byte("package x\n"))
	if err != nil || !same {
		t.Fatalf("expected unchanged, got %v %v", same, err)
	}
}

func TestRefuseOverwrite_UsageErrorWhenDifferent(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.go")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	err := RefuseOverwrite(p, []byte("y"), false)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !IsUsage(err) {
		t.Fatalf("expected UsageError, got %T: %v", err, err)
	}
	if err := RefuseOverwrite(p, []byte("y"), true); err != nil {
		t.Fatalf("overwrite must allow replacement, got %v", err)
	}
}

func TestRefuseOverwrite_PropagatesReadErrors(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("chmod-based permission test is not portable on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	parent := t.TempDir()
	noAccess := filepath.Join(parent, "no-access")
	if err := os.MkdirAll(noAccess, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	p := filepath.Join(noAccess, "x.go")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.Chmod(noAccess, 0o000); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(noAccess, 0o700) })

	err := RefuseOverwrite(p, []byte("y"), false)
	if err == nil {
		t.Fatalf("expected error")
	}
	if IsUsage(err) {
		t.Fatalf("expected non-usage error, got %T: %v", err, err)
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected non-not-exist error, got %v", err)
	}
}
