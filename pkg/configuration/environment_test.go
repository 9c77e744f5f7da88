package configuration

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv_LoadsExistingFiles(t *testing.T) {
	tmp := t.TempDir()

	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "CLAIMDESK_TEST_ENV_LOAD=ok\n")

	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	_ = os.Unsetenv("CLAIMDESK_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 env file loaded, got %d", n)
	}
	if got := os.Getenv("CLAIMDESK_TEST_ENV_LOAD"); got != "ok" {
		t.Fatalf("expected env var loaded, got %q", got)
	}
}

func TestLoadEnv_NoFiles(t *testing.T) {
	tmp := t.TempDir()

	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	n, err := LoadEnv([]string{".env", ".env.local"})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 env files loaded, got %d", n)
	}
}

func TestRateLimitOptions_Validate(t *testing.T) {
	cases := []struct {
		name    string
		opts    RateLimitOptions
		wantErr bool
	}{
		{"defaults", RateLimitOptions{GlobalRPS: 1000, Storage: "memory"}, false},
		{"negative rps", RateLimitOptions{GlobalRPS: -1, Storage: "memory"}, true},
		{"bad storage", RateLimitOptions{GlobalRPS: 10, Storage: "etcd"}, true},
		{"redis without url", RateLimitOptions{GlobalRPS: 10, Storage: "redis"}, true},
		{"redis with url", RateLimitOptions{GlobalRPS: 10, Storage: "redis", RedisURL: "redis://localhost:6379"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opts.Validate()
			if tc.wantErr && err == nil {
				t.Fatalf("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
