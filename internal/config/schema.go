package config

import (
	"net"
	"time"
)

// Config holds forge configuration.
// Loaded from ./config.yaml or ~/.forge/config.yaml.
type Config struct {
	Server   ServerCfg   `mapstructure:"server" yaml:"server"`
	Presets  PresetsCfg  `mapstructure:"presets" yaml:"presets"`
	Uploads  UploadsCfg  `mapstructure:"uploads" yaml:"uploads"`
	Renderer RendererCfg `mapstructure:"renderer" yaml:"renderer"`
	Wizard   WizardCfg   `mapstructure:"wizard" yaml:"wizard"`
}

// ServerCfg configures the HTTP listener.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// PresetsCfg configures the design preset store.
type PresetsCfg struct {
	// Dir is an optional directory of preset JSON files that override
	// or extend the built-in presets. Empty means built-ins only.
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// UploadsCfg configures file uploads (logos, manuscripts).
type UploadsCfg struct {
	Dir      string `mapstructure:"dir" yaml:"dir"`
	MaxBytes int64  `mapstructure:"max_bytes" yaml:"max_bytes"`
}

// RendererCfg configures the PDF render service client.
type RendererCfg struct {
	URL      string        `mapstructure:"url" yaml:"url"`
	Attempts uint          `mapstructure:"attempts" yaml:"attempts"`
	Delay    time.Duration `mapstructure:"delay" yaml:"delay"`
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

// WizardCfg configures wizard sessions.
type WizardCfg struct {
	// SessionTTL is how long an idle session survives before pruning.
	SessionTTL time.Duration `mapstructure:"session_ttl" yaml:"session_ttl"`
}

// ListenAddr returns the host:port the server should bind.
func (c *Config) ListenAddr() string {
	return net.JoinHostPort(c.Server.Host, c.Server.Port)
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerCfg{
			Host: "0.0.0.0",
			Port: "8080",
		},
		Presets: PresetsCfg{
			Dir: "",
		},
		Uploads: UploadsCfg{
			Dir:      "uploads",
			MaxBytes: 50 << 20,
		},
		Renderer: RendererCfg{
			URL:      "http://localhost:9400",
			Attempts: 3,
			Delay:    time.Second,
			Timeout:  2 * time.Minute,
		},
		Wizard: WizardCfg{
			SessionTTL: 2 * time.Hour,
		},
	}
}
