package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"
	"github.com/joho/godotenv"
	"github.com/penquinx/docsite/content"
	"github.com/penquinx/docsite/web"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// main is where it all begins.
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of web site.")
		fWatch             = flag.Bool("watch", false, "Reload documents when they change.")
		fVerbose           = flag.Bool("verbose", false, "Log debug messages.")
	)
	// values in .env become defaults for the environment; a missing file is fine
	_ = godotenv.Load()
	flag.Parse()
	flagenv.Prefix = "PENQUINX_"
	flagenv.Parse()

	logger, err := newLogger(*fVerbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cannot create logger: %s\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Setup groupcache with no peers
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	// Load the site
	s, err := newSite(os.DirFS(*fRoot), siteOptions{
		Logger:  logger,
		Metrics: web.NewMetrics("penquinx"),
		Cache:   !*fWatch,
	})
	if err != nil {
		logger.Error("Cannot load site", zap.String("root", *fRoot), zap.Error(err))
		os.Exit(2)
	}
	logger.Info("Loaded site",
		zap.String("root", *fRoot),
		zap.String("basePath", s.cfg.BasePath),
		zap.Int("pages", len(s.lib.Keys())),
		zap.String("templates", s.tpl.DefinedTemplates()))

	if *fWatch {
		w, err := content.Watch(s.lib, filepath.Join(*fRoot, docsFolder), content.DefaultDebounce, s.reloaded)
		if err != nil {
			logger.Error("Cannot watch content", zap.Error(err))
			os.Exit(3)
		}
		defer w.Close()
	}

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		Handler:           s.routes(),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			logger.Error("HTTP server Shutdown", zap.Error(err))
		}
	}()

	// Listen for requests
	logger.Info("Listening for requests", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("HTTP server", zap.Error(err))
	} else {
		logger.Info("Goodbye.")
	}
}

// newLogger returns a production logger, at debug level when verbose is set.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
