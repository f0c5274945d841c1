package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/yourusername/video-downloader-go/internal/domain"
)

// Outcome classifies a single download attempt.
type Outcome int

const (
	OutcomeFailed Outcome = iota
	OutcomeCancelled
	OutcomeSuccess
)

// Notifier is told about completed downloads so it can raise a desktop
// notification. Implementations must never surface errors to the user.
type Notifier interface {
	DownloadCompleted(title string)
}

// Session drives one interactive run of the program: menu, URL prompt,
// platform cross-check, download orchestration and the trailing statistics.
type Session struct {
	cfg       *domain.Config
	catalog   *domain.Catalog
	extractor domain.Extractor
	presenter domain.Presenter
	notifier  Notifier
	progress  domain.ProgressFunc
	history   *domain.History
	logger    *zap.Logger
}

// NewSession wires a session and creates the output directory if absent.
func NewSession(
	cfg *domain.Config,
	catalog *domain.Catalog,
	extractor domain.Extractor,
	presenter domain.Presenter,
	notifier Notifier,
	progress domain.ProgressFunc,
	log *zap.Logger,
) (*Session, error) {
	if err := os.MkdirAll(cfg.Download.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if progress == nil {
		progress = func(domain.Progress) {}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		cfg:       cfg,
		catalog:   catalog,
		extractor: extractor,
		presenter: presenter,
		notifier:  notifier,
		progress:  progress,
		history:   domain.NewHistory(),
		logger:    log,
	}, nil
}

// History exposes the session history for statistics rendering and tests.
func (s *Session) History() *domain.History {
	return s.history
}

// Run executes the application loop until the user exits.
func (s *Session) Run(ctx context.Context) error {
	s.presenter.Banner()

	for {
		s.presenter.Menu(s.catalog)

		keys := append([]string{domain.ExitKey}, s.catalog.Keys()...)
		choice := s.presenter.SelectPlatform(keys, s.catalog.Keys()[0])
		if choice == domain.ExitKey {
			s.finish()
			return nil
		}

		platform, ok := s.catalog.Get(choice)
		if !ok {
			continue
		}

		s.presenter.Guide(platform)

		url := strings.TrimSpace(s.presenter.AskURL())
		if url == "" {
			s.presenter.Notice("URL cannot be empty!")
			continue
		}

		// Detection compares names only; a confirmed mismatch proceeds with
		// the selected platform's options.
		if detected := s.catalog.Detect(url); detected != nil && detected.Name != platform.Name {
			if !s.presenter.ConfirmMismatch(detected.Name, platform.Name) {
				continue
			}
		}

		s.Download(ctx, url, platform)

		if !s.presenter.ConfirmContinue() {
			s.finish()
			return nil
		}
	}
}

// Download runs one probe/confirm/fetch attempt. Every extractor error is
// caught here and rendered; nothing propagates past this call.
func (s *Session) Download(ctx context.Context, url string, platform *domain.PlatformConfig) Outcome {
	opts := s.fetchOptions(platform)

	stop := s.presenter.Working("Fetching video information...")
	info, err := s.extractor.Probe(ctx, url, opts)
	stop()
	if err != nil {
		s.logger.Warn("probe failed", zap.String("url", url), zap.Error(err))
		s.presenter.Failure(err.Error())
		return OutcomeFailed
	}

	s.presenter.VideoInfo(info)
	if !s.presenter.ConfirmDownload() {
		s.presenter.Notice("Download cancelled by user")
		return OutcomeCancelled
	}

	if err := s.extractor.Fetch(ctx, url, opts, s.progress); err != nil {
		s.logger.Warn("fetch failed", zap.String("url", url), zap.Error(err))
		s.presenter.Failure(err.Error())
		return OutcomeFailed
	}

	filename := info.Filename
	if filename == "" {
		filename = fallbackFilename(info)
	}
	s.presenter.Success(filepath.Join(s.cfg.Download.OutputDir, filepath.Base(filename)))

	title := info.Title
	if title == "" {
		title = "Unknown"
	}
	s.history.Add(title)
	s.logger.Info("download completed", zap.String("title", title))

	if s.notifier != nil {
		s.notifier.DownloadCompleted(title)
	}

	return OutcomeSuccess
}

// fetchOptions builds the per-attempt extractor configuration.
func (s *Session) fetchOptions(platform *domain.PlatformConfig) domain.FetchOptions {
	format := platform.FormatPreference
	if format == "" {
		format = domain.FormatBest
	}
	return domain.FetchOptions{
		OutputTemplate: filepath.Join(s.cfg.Download.OutputDir, "%(title)s.%(ext)s"),
		Format:         format,
		SkipCertVerify: s.cfg.Extractor.SkipCertVerify,
		UserAgent:      s.cfg.Extractor.UserAgent,
	}
}

func (s *Session) finish() {
	if s.history.Len() > 0 {
		s.presenter.Statistics(s.history.Titles())
	}
	s.presenter.Farewell()
}

func fallbackFilename(info *domain.VideoInfo) string {
	title := info.Title
	if title == "" {
		title = "video"
	}
	ext := info.Ext
	if ext == "" {
		ext = "mp4"
	}
	return sanitizeFilename(title) + "." + ext
}

// sanitizeFilename replaces path separators and other characters that are
// unsafe in filenames.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		"\x00", "_",
	)
	return replacer.Replace(name)
}
