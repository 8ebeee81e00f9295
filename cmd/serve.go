package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/reprogrammability/tutorsite/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it locally",
	Long: `Builds the rebuilt site and serves the output directory over HTTP. With
--watch the content directory is watched and every change rebuilds the
site and reloads connected browsers.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port for the local server (defaults to serve.port)")
	serveCmd.Flags().Bool("watch", false, "rebuild and live-reload on content changes")
	serveCmd.Flags().Bool("open", false, "open the browser after starting")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Serve.Port
	}
	watch, _ := cmd.Flags().GetBool("watch")
	openBrowser, _ := cmd.Flags().GetBool("open")

	g, err := newGenerator(cfg, cfg.OutputDir)
	if err != nil {
		return err
	}
	g.LiveReload = watch
	n, err := g.Generate()
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Static site generated: %s (%d pages)\n", cfg.OutputDir, n)

	srv := server.New(server.Config{Port: port, Dir: cfg.OutputDir, BasePath: cfg.BasePath})

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if watch {
		var rebuilding sync.Mutex
		go func() {
			err := server.Watch(ctx, cfg.ContentDir, server.DefaultDebounce, func() {
				rebuilding.Lock()
				defer rebuilding.Unlock()
				if _, err := g.Generate(); err != nil {
					log.Printf("serve: rebuild failed: %v", err)
					return
				}
				clients := srv.Reload()
				if verbose {
					log.Printf("serve: rebuilt site, reloaded %d clients", clients)
				}
			})
			if err != nil {
				log.Printf("serve: watch stopped: %v", err)
			}
		}()
	}

	url := fmt.Sprintf("http://localhost:%d%s/", port, strings.TrimRight(cfg.BasePath, "/"))
	fmt.Fprintf(cmd.OutOrStdout(), "Serving at %s (press Ctrl+C to stop)\n", url)
	if openBrowser {
		server.OpenBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
