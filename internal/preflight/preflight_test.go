package preflight

import (
	"os"
	"path/filepath"
	"testing"

	"mazecache/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("temp dir should pass, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("a missing directory must fail the check")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("a plain file must fail the check")
	}
}

func TestCheckDiskSpace_IsOptional(t *testing.T) {
	result := CheckDiskSpace("test", t.TempDir())
	if !result.Optional {
		t.Fatal("disk space check must be optional")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckBindAddress(t *testing.T) {
	cases := []struct {
		bind string
		pass bool
	}{
		{"", true},
		{"127.0.0.1:0", true},
		{"127.0.0.1:7474", true},
		{":7474", true},
		{"no-port-here", false},
		{"127.0.0.1:notaport", false},
	}
	for _, tc := range cases {
		result := CheckBindAddress("test", tc.bind)
		if result.Passed != tc.pass {
			t.Fatalf("CheckBindAddress(%q) passed=%v, want %v (%s)", tc.bind, result.Passed, tc.pass, result.Detail)
		}
	}
}

func TestRunAndFirstFailure(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.APIBind = "127.0.0.1:0"

	// Directories do not exist yet, so the required checks fail.
	results := Run(&cfg)
	if len(results) != 4 {
		t.Fatalf("expected 4 checks, got %d", len(results))
	}
	failed := FirstFailure(results)
	if failed == nil || failed.Name != "Data directory" {
		t.Fatalf("expected data directory failure first, got %+v", failed)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if failed := FirstFailure(Run(&cfg)); failed != nil {
		t.Fatalf("expected clean run, got failure %+v", failed)
	}
}
