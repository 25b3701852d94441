package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/landing/internal/content"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and writes a starter content document if none exists yet.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to landing! Let's set up your page.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Who the page is about.
	namePrompt := promptui.Prompt{
		Label:    "Your name",
		Validate: notEmpty,
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}

	titlePrompt := promptui.Prompt{
		Label:   "Job title",
		Default: "Software Engineer",
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("job title: %w", err)
	}

	// 2. Content source.
	contentPrompt := promptui.Prompt{
		Label:    "Content document (path or URL)",
		Default:  cfg.Content,
		Validate: notEmpty,
	}
	cfg.Content, err = contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the built page",
		Default: cfg.OutputDir,
	}
	cfg.OutputDir, err = outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Description format.
	formatPrompt := promptui.Select{
		Label: "Descriptions are written in",
		Items: []string{
			"plain text",
			"markdown",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("description format: %w", err)
	}
	cfg.Render.Markdown = formatIdx == 1

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}
	fmt.Printf("\nConfiguration saved to %s\n", path)

	if isURL(cfg.Content) {
		return cfg, nil
	}
	if _, err := os.Stat(cfg.Content); err == nil {
		fmt.Printf("Keeping existing %s\n", cfg.Content)
		return cfg, nil
	}
	if err := content.WriteJSON(cfg.Content, content.Starter(name, title), false); err != nil {
		return nil, err
	}
	fmt.Printf("Starter content written to %s\n", cfg.Content)

	return cfg, nil
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value is required")
	}
	return nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
