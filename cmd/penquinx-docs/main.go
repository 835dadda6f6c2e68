// Command penquinx-docs inspects a PenquinX documentation site: it checks the
// reading order and carousels, and prints orders, breadcrumbs and page lists.
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/penquinx/docsite/carousel"
	"github.com/penquinx/docsite/content"
	"github.com/penquinx/docsite/docs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "penquinx-docs",
	Short:         "Inspect a PenquinX documentation site",
	Long:          "penquinx-docs loads a site folder the same way the server does and reports on its documents, reading order and carousels.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	rootDir string
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "root", "r", envOr("PENQUINX_ROOT", "."), "Root of web site")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log while loading")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// loaded is a site folder as the server sees it.
type loaded struct {
	cfg      *content.Config
	lib      *content.Library
	nav      *docs.Navigator
	sections []carousel.Section
}

func load() (*loaded, error) {
	logger := zap.NewNop()
	if verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
	}
	root := os.DirFS(rootDir)
	cfg, err := content.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	sub, err := fs.Sub(root, "docs")
	if err != nil {
		return nil, err
	}
	lib, err := content.New(sub, logger)
	if err != nil {
		return nil, err
	}
	sections, err := carousel.LoadSections(root, cfg.BasePath)
	if err != nil {
		return nil, err
	}
	return &loaded{
		cfg:      cfg,
		lib:      lib,
		nav:      docs.New(lib, docs.WithMeta(lib), docs.WithBasePath(cfg.BasePath), docs.WithLogger(logger)),
		sections: sections,
	}, nil
}
