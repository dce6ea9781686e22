package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Renderer.Attempts != 3 {
		t.Errorf("expected 3 render attempts, got %d", cfg.Renderer.Attempts)
	}
	if cfg.Wizard.SessionTTL != 2*time.Hour {
		t.Errorf("expected 2h session TTL, got %s", cfg.Wizard.SessionTTL)
	}
	if cfg.Uploads.MaxBytes != 50<<20 {
		t.Errorf("expected 50MB upload cap, got %d", cfg.Uploads.MaxBytes)
	}
}

func TestListenAddr(t *testing.T) {
	cfg := &Config{Server: ServerCfg{Host: "127.0.0.1", Port: "9000"}}
	if got := cfg.ListenAddr(); got != "127.0.0.1:9000" {
		t.Errorf("expected 127.0.0.1:9000, got %s", got)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("loads from config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		configContent := `
server:
  port: "9999"
renderer:
  url: "http://render.internal:9400"
  attempts: 5
`
		if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		mgr, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}

		cfg := mgr.Get()
		if cfg.Server.Port != "9999" {
			t.Errorf("expected port 9999, got %s", cfg.Server.Port)
		}
		if cfg.Renderer.URL != "http://render.internal:9400" {
			t.Errorf("unexpected renderer URL %s", cfg.Renderer.URL)
		}
		if cfg.Renderer.Attempts != 5 {
			t.Errorf("expected 5 attempts, got %d", cfg.Renderer.Attempts)
		}
	})

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		mgr, err := NewManager("")
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}
		if mgr.Get().Server.Port == "" {
			t.Error("expected default port to be set")
		}
	})

	t.Run("duration values parse from strings", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		configContent := `
wizard:
  session_ttl: 30m
renderer:
  delay: 250ms
`
		if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
			t.Fatalf("failed to write config file: %v", err)
		}

		mgr, err := NewManager(configFile)
		if err != nil {
			t.Fatalf("failed to create manager: %v", err)
		}

		cfg := mgr.Get()
		if cfg.Wizard.SessionTTL != 30*time.Minute {
			t.Errorf("expected 30m TTL, got %s", cfg.Wizard.SessionTTL)
		}
		if cfg.Renderer.Delay != 250*time.Millisecond {
			t.Errorf("expected 250ms delay, got %s", cfg.Renderer.Delay)
		}
	})
}

func TestManager_OnChange(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("server:\n  port: \"8080\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	mgr.OnChange(func(cfg *Config) {})
	mgr.OnChange(func(cfg *Config) {})

	mgr.mu.RLock()
	if len(mgr.callbacks) != 2 {
		t.Errorf("expected 2 callbacks, got %d", len(mgr.callbacks))
	}
	mgr.mu.RUnlock()
}

func TestManager_Get_ThreadSafe(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("server:\n  port: \"8080\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				cfg := mgr.Get()
				_ = cfg.Server.Port
			}
			done <- struct{}{}
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestManager_WatchConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configFile, []byte("server:\n  port: \"8080\"\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	mgr, err := NewManager(configFile)
	if err != nil {
		t.Fatalf("failed to create manager: %v", err)
	}

	var callbackCount atomic.Int32
	var lastPort atomic.Value

	mgr.OnChange(func(cfg *Config) {
		callbackCount.Add(1)
		lastPort.Store(cfg.Server.Port)
	})

	mgr.WatchConfig()

	// Give fsnotify time to set up the watcher
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(configFile, []byte("server:\n  port: \"9001\"\n"), 0644); err != nil {
		t.Fatalf("failed to write updated config file: %v", err)
	}

	// Wait for the watcher to detect the change (fsnotify is async)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if callbackCount.Load() > 0 {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}

	if callbackCount.Load() == 0 {
		t.Error("callback was not invoked after config file change")
	}

	if mgr.Get().Server.Port != "9001" {
		t.Errorf("config not updated: expected port 9001, got %s", mgr.Get().Server.Port)
	}
	if v := lastPort.Load(); v != "9001" {
		t.Errorf("callback received wrong value: expected 9001, got %v", v)
	}
}

func TestWriteDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("failed to write default config: %v", err)
	}

	mgr, err := NewManager(path)
	if err != nil {
		t.Fatalf("written default config did not load: %v", err)
	}
	if mgr.Get().Renderer.URL == "" {
		t.Error("expected renderer URL in written defaults")
	}
}
