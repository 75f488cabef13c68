package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHostKeyPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := hostKeyPath("")
	if err != nil {
		t.Fatalf("hostKeyPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".arcade", "tetris_host_key"); got != want {
		t.Errorf("hostKeyPath(\"\") = %q, want %q", got, want)
	}

	if got, _ := hostKeyPath("/etc/key"); got != "/etc/key" {
		t.Errorf("hostKeyPath(custom) = %q", got)
	}
}

func TestNewSSHServer(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}

	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("host key not generated: %v", err)
	}
	if srv.store == nil {
		t.Error("store should be open")
	}
	if srv.Active() != 0 {
		t.Errorf("Active() = %d, want 0", srv.Active())
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q", srv.Addr())
	}

	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}
