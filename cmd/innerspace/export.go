package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"innerspace.app/site/internal/landing"
	"innerspace.app/site/internal/logging"
	"innerspace.app/site/internal/webui"
)

// exportLinks point at sibling files so the export works from any static host.
var exportLinks = landing.Links{
	Home:       "index.html",
	MenuOpen:   "menu.html",
	MenuClosed: "closed.html",
	Stylesheet: "static/styles.css",
}

func exportCmd(v *viper.Viper) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the landing page as static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromViper(v)
			if err != nil {
				return err
			}
			logger := logging.ForEnvironment(cmd.OutOrStdout(), cfg.Env)
			return exportSite(out, cfg.ImageHost, logger)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	return cmd
}

// exportSite writes index.html (first load), menu.html (menu open),
// closed.html (menu closed after a click) and the stylesheet into dir.
func exportSite(dir, imageHost string, logger *slog.Logger) error {
	start := time.Now()

	if err := os.MkdirAll(filepath.Join(dir, "static"), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	home := landing.NewPage(landing.MenuClosed, exportLinks, imageHost)
	pages := map[string]landing.Page{
		exportLinks.Home:       home,
		exportLinks.MenuOpen:   home.Toggle(),
		exportLinks.MenuClosed: home.Settled(),
	}
	for name, page := range pages {
		body, err := page.HTML()
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dir, name), body, logger); err != nil {
			return err
		}
	}

	css, err := fs.ReadFile(webui.StaticFS, "static/styles.css")
	if err != nil {
		return fmt.Errorf("read embedded stylesheet: %w", err)
	}
	if err := writeFile(filepath.Join(dir, exportLinks.Stylesheet), css, logger); err != nil {
		return err
	}

	logging.LogOperation(logger, "site_exported",
		slog.String("out", dir),
		slog.Int("files", len(pages)+1),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func writeFile(path string, data []byte, logger *slog.Logger) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close "+filepath.Base(path))

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
