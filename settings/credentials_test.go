package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isolateStore(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	return dir
}

func TestSetAndGetAPIKey(t *testing.T) {
	isolateStore(t)

	if err := SetAPIKey("abc123def456"); err != nil {
		t.Fatalf("SetAPIKey() error: %v", err)
	}
	if got := APIKey(); got != "abc123def456" {
		t.Fatalf("APIKey() = %q", got)
	}
}

func TestSetBlankAPIKeyRejected(t *testing.T) {
	isolateStore(t)

	if err := SetAPIKey("   "); err == nil {
		t.Fatal("SetAPIKey(blank) should fail")
	}
	if got := APIKey(); got != "" {
		t.Fatalf("blank key was stored: %q", got)
	}
}

func TestFilePermissions(t *testing.T) {
	dir := isolateStore(t)

	if err := SetAPIKey("abc123def456"); err != nil {
		t.Fatalf("SetAPIKey() error: %v", err)
	}

	path := filepath.Join(dir, dataDirName, fileName)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("os.Stat() error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Fatalf("auth.json permissions = %o, want 0600", perm)
	}
}

func TestLoadCorruptStore(t *testing.T) {
	dir := isolateStore(t)

	storeDir := filepath.Join(dir, dataDirName)
	if err := os.MkdirAll(storeDir, 0700); err != nil {
		t.Fatalf("os.MkdirAll() error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(storeDir, fileName), []byte("{not json"), 0600); err != nil {
		t.Fatalf("os.WriteFile() error: %v", err)
	}

	if got := APIKey(); got != "" {
		t.Fatalf("corrupt store yielded a key: %q", got)
	}
}

func TestRemove(t *testing.T) {
	isolateStore(t)

	if err := SetAPIKey("abc123def456"); err != nil {
		t.Fatalf("SetAPIKey() error: %v", err)
	}
	if err := Remove(); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if got := APIKey(); got != "" {
		t.Fatalf("key survived Remove(): %q", got)
	}

	// Removing an already-missing store is fine.
	if err := Remove(); err != nil {
		t.Fatalf("second Remove() error: %v", err)
	}
}

func TestMaskKey(t *testing.T) {
	if got := MaskKey("short"); got != "****" {
		t.Fatalf("MaskKey(short) = %q", got)
	}
	got := MaskKey("abcd1234wxyz")
	if !strings.HasPrefix(got, "abcd") || !strings.HasSuffix(got, "wxyz") || strings.Contains(got, "1234") {
		t.Fatalf("MaskKey() = %q", got)
	}
}
