package cmd

import (
	"fmt"

	"github.com/ziadkadry99/landing/internal/config"
	"github.com/ziadkadry99/landing/internal/content"
	"github.com/ziadkadry99/landing/internal/interact"
	"github.com/ziadkadry99/landing/internal/page"
	"github.com/ziadkadry99/landing/internal/progress"
	"github.com/ziadkadry99/landing/internal/render"
	"github.com/ziadkadry99/landing/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `landing init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// createLoaderFromConfig resolves the content source. With a base_url set,
// relative sources are fetched from that site.
func createLoaderFromConfig(cfg *config.Config) (content.Loader, error) {
	if cfg.BaseURL != "" {
		return content.NewHTTPLoader(cfg.BaseURL, cfg.Content, cfg.FetchTimeout)
	}
	return content.NewLoader(cfg.Content, cfg.FetchTimeout)
}

// createBootstrapperFromConfig wires the loader, sections and binder.
func createBootstrapperFromConfig(cfg *config.Config) (*page.Bootstrapper, error) {
	loader, err := createLoaderFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	sections, err := render.New(render.Options{
		EscapeHTML: cfg.Render.EscapeHTML,
		Markdown:   cfg.Render.Markdown,
	})
	if err != nil {
		return nil, err
	}
	return page.New(loader, sections, interact.NewBinder(), logger), nil
}

// createGeneratorFromConfig returns a generator writing to outputDir.
func createGeneratorFromConfig(cfg *config.Config, outputDir string, rep progress.Reporter) (*site.Generator, error) {
	pages, err := createBootstrapperFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &site.Generator{
		Pages:     pages,
		ShellPath: cfg.Shell,
		SourceDir: ".",
		OutputDir: outputDir,
		Assets:    cfg.Assets,
		Exclude:   cfg.Exclude,
		Reporter:  rep,
		Logger:    logger,
	}, nil
}
