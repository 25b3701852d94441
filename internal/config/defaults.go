package config

import (
	"time"

	"github.com/ziadkadry99/landing/internal/content"
)

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = ".landing.yml"

// DefaultAssets are glob patterns copied into the output by default.
var DefaultAssets = []string{
	"images/**",
	"files/**",
	"fonts/**",
	"favicon.ico",
}

// DefaultExcludes are glob patterns never copied into the output.
var DefaultExcludes = []string{
	".git/**",
	"node_modules/**",
	"**/.DS_Store",
	"*.psd",
}

// DefaultConfig returns a Config with sensible defaults. The pattern slices
// are copies, so callers may modify them freely.
func DefaultConfig() *Config {
	return &Config{
		Content:      content.DefaultSource,
		OutputDir:    "public",
		Assets:       append([]string(nil), DefaultAssets...),
		Exclude:      append([]string(nil), DefaultExcludes...),
		FetchTimeout: 10 * time.Second,
		Server: ServerConfig{
			Port:  8080,
			Watch: true,
		},
	}
}
