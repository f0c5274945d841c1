package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/yourusername/video-downloader-go/internal/app"
	"github.com/yourusername/video-downloader-go/internal/domain"
	"github.com/yourusername/video-downloader-go/internal/infrastructure"
	"github.com/yourusername/video-downloader-go/internal/ui"
	"github.com/yourusername/video-downloader-go/pkg/logger"
)

var (
	outputDir string
	logLevel  string

	rootCmd = &cobra.Command{
		Use:           "video-downloader",
		Short:         "Interactive downloader for social media videos",
		Long:          `An interactive command-line tool for downloading videos from YouTube, Instagram, Facebook, Twitter/X and Pinterest via yt-dlp.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory downloads are written to")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return err
	}
	if outputDir != "" {
		cfg.Download.OutputDir = outputDir
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log, err := logger.New(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	console := ui.NewConsole()
	reporter := ui.NewProgressReporter(os.Stdout)
	extractor := infrastructure.NewYTDLP(cfg.Extractor.Binary, log)
	notifier := infrastructure.NewNotifier(cfg.Notification, log)

	session, err := app.NewSession(cfg, domain.DefaultCatalog(), extractor, console, notifier, reporter.Handle, log)
	if err != nil {
		return err
	}

	// Ctrl-C anywhere is a graceful exit, not an error.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Println("\n\n⚠  Operation cancelled by user. Goodbye!")
		os.Exit(0)
	}()

	return session.Run(cmd.Context())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Unexpected error: %v\n", err)
		os.Exit(1)
	}
}
