package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/landing/internal/progress"
	"github.com/ziadkadry99/landing/internal/server"
	"github.com/ziadkadry99/landing/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the page locally with live reload",
	Long: `Builds the page, then serves it. The index is rendered from the content
document on every request; with --watch, file changes trigger a rebuild and
connected browsers reload.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port for the local server (defaults to server.port from config)")
	serveCmd.Flags().Bool("watch", true, "rebuild and reload on file changes")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("watch") {
		cfg.Server.Watch, _ = cmd.Flags().GetBool("watch")
	}

	gen, err := createGeneratorFromConfig(cfg, cfg.OutputDir, progress.Nop{})
	if err != nil {
		return err
	}
	shell, err := site.LoadShell(cfg.Shell)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := gen.Generate(ctx)
	if err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	hub := site.NewHub(logger)
	hub.SetBuildID(b.ID)

	srv := server.New(server.Config{
		Port:     cfg.Server.Port,
		Dir:      cfg.OutputDir,
		AllowAll: cfg.Server.AllowAll,
	}, gen.Pages, shell, hub, logger)

	if cfg.Server.Watch {
		w := &site.Watcher{
			Roots:  []string{"."},
			Ignore: []string{cfg.OutputDir},
			Logger: logger,
			OnChange: func(ctx context.Context) {
				b, err := gen.Generate(ctx)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Rebuild failed: %v\n", err)
					return
				}
				fmt.Fprintln(os.Stderr, "Page rebuilt.")
				hub.Broadcast(b.ID)
			},
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				logger.Error("watcher stopped", zap.Error(err))
			}
		}()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		srv.Shutdown(context.Background())
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	if open, _ := cmd.Flags().GetBool("open"); open {
		go openBrowser(url)
	}

	fmt.Fprintf(os.Stderr, "landing %s serving at %s\n", resolvedVersion(), url)
	fmt.Fprintf(os.Stderr, "  Content: %s\n", cfg.Content)
	fmt.Fprintf(os.Stderr, "  Output:  %s\n", cfg.OutputDir)
	if cfg.Server.Watch {
		fmt.Fprintln(os.Stderr, "  Watching for changes")
	}
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
