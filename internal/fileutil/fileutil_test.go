package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/flock"
)

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	dst := filepath.Join(dir, "nested", "out.html")

	if err := WriteAtomic(dst, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteAtomic(dst, []byte("second"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("content mismatch: got %q", got)
	}
	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("mode = %o, want 600", info.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(dst))
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("temp file left behind: %s", e.Name())
		}
	}
}

func TestTryWriteLocked(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "cloud.html")
	if err := TryWriteLocked(dst, []byte("<html></html>"), 0o644, time.Second); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<html></html>" {
		t.Fatalf("content mismatch: got %q", got)
	}
	if _, err := os.Stat(dst + LockSuffix); err != nil {
		t.Fatalf("expected lock file: %v", err)
	}
}

func TestTryWriteLockedTimesOut(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "cloud.html")
	holder := flock.New(dst + LockSuffix)
	if err := holder.Lock(); err != nil {
		t.Fatal(err)
	}
	defer holder.Unlock()

	err := TryWriteLocked(dst, []byte("x"), 0o644, 100*time.Millisecond)
	if err == nil {
		t.Fatal("expected timeout error while lock is held")
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Fatalf("target should not exist, stat err = %v", statErr)
	}
}
