package config

import "time"

// Config is the top-level landing configuration, corresponding to .landing.yml.
type Config struct {
	Content      string        `yaml:"content" koanf:"content"`
	BaseURL      string        `yaml:"base_url" koanf:"base_url"`
	Shell        string        `yaml:"shell" koanf:"shell"`
	OutputDir    string        `yaml:"output_dir" koanf:"output_dir"`
	Assets       []string      `yaml:"assets" koanf:"assets"`
	Exclude      []string      `yaml:"exclude" koanf:"exclude"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" koanf:"fetch_timeout"`
	Render       RenderConfig  `yaml:"render" koanf:"render"`
	Server       ServerConfig  `yaml:"server" koanf:"server"`
}

// RenderConfig controls how document text is turned into markup.
type RenderConfig struct {
	EscapeHTML bool `yaml:"escape_html" koanf:"escape_html"`
	Markdown    bool `yaml:"markdown" koanf:"markdown"`
}

// ServerConfig holds settings for `landing serve`.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all" koanf:"allow_all"`
	Watch    bool `yaml:"watch" koanf:"watch"`
}
