package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/landing/internal/site"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content document and the rendered page",
	Long: `Loads and validates the content document, renders it into the page shell
and reports section counts and in-page links whose target does not exist.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	pages, err := createBootstrapperFromConfig(cfg)
	if err != nil {
		return err
	}
	shell, err := site.LoadShell(cfg.Shell)
	if err != nil {
		return err
	}

	_, res, err := pages.RenderPage(cmd.Context(), strings.NewReader(shell))
	if err != nil {
		return fmt.Errorf("checking %s: %w", cfg.Content, err)
	}

	doc := res.Document
	fmt.Printf("Content: %s\n", cfg.Content)
	fmt.Printf("  Menu items:   %d\n", len(doc.Navigation.Menu))
	fmt.Printf("  Skills:       %d\n", len(doc.Skills))
	fmt.Printf("  Projects:     %d\n", len(doc.Projects))
	fmt.Printf("  Social links: %d\n", len(doc.Footer.Social))

	var dangling []string
	for _, a := range res.Binding.Anchors() {
		if !a.Found {
			dangling = append(dangling, a.Href)
		}
	}
	if len(dangling) > 0 {
		for _, href := range dangling {
			fmt.Printf("  ✗ link %s has no target\n", href)
		}
		return fmt.Errorf("%d in-page link(s) point nowhere", len(dangling))
	}

	fmt.Printf("  ✓ %d in-page links resolve\n", len(res.Binding.Anchors()))
	return nil
}
