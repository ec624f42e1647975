package staticfs

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds everything the server needs to know at startup.
// There is no global state: a Config is built once, validated and
// passed down to the handler and server explicitly.
type Config struct {
	// Port is the TCP port to listen on, on all interfaces.
	// Default: 8080.
	Port int `toml:"port"`

	// Root is the directory tree to expose. Every request path is
	// resolved relative to it and can not escape it.
	// Default: /workspace.
	Root string `toml:"root"`

	// MimeTypes are additional extension to mime-type mappings
	// which take precedence over the default table, e.g.
	// `.webmanifest -> application/manifest+json`.
	MimeTypes map[string]string `toml:"mime_types"`
}

// DefaultConfig mirrors the fixed setup the server historically
// ran with: port 8080, /workspace as the root and the two
// mime-type overrides for web manifests and svg images.
func DefaultConfig() Config {
	return Config{
		Port: 8080,
		Root: "/workspace",
		MimeTypes: map[string]string{
			".webmanifest": "application/manifest+json",
			".svg":         "image/svg+xml",
		},
	}
}

// LoadConfig reads a TOML config file on top of the defaults, so
// a file only has to state what it wants to change.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return ErrInvalidPort
	}
	if c.Root == "" {
		return ErrMissingRoot
	}
	for ext := range c.MimeTypes {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q", ErrInvalidExt, ext)
		}
	}
	return nil
}

// Addr returns the listen address in the form net.Listen expects.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// URL returns the address the served tree is reachable at from
// the local machine.
func (c Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}
