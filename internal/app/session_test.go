package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/video-downloader-go/internal/domain"
)

// mockExtractor implements domain.Extractor for testing
type mockExtractor struct {
	info     *domain.VideoInfo
	probeErr error
	fetchErr error

	probeCalls int
	fetchCalls int
	lastURL    string
	lastOpts   domain.FetchOptions
}

func (m *mockExtractor) Probe(_ context.Context, url string, opts domain.FetchOptions) (*domain.VideoInfo, error) {
	m.probeCalls++
	m.lastURL = url
	m.lastOpts = opts
	if m.probeErr != nil {
		return nil, m.probeErr
	}
	return m.info, nil
}

func (m *mockExtractor) Fetch(_ context.Context, url string, opts domain.FetchOptions, progress domain.ProgressFunc) error {
	m.fetchCalls++
	m.lastURL = url
	m.lastOpts = opts
	if m.fetchErr != nil {
		return m.fetchErr
	}
	if progress != nil {
		progress(domain.Progress{Status: domain.ProgressDownloading, DownloadedBytes: 512, TotalBytes: 1024})
		progress(domain.Progress{Status: domain.ProgressDownloading, DownloadedBytes: 1024, TotalBytes: 1024})
		progress(domain.Progress{Status: domain.ProgressFinished})
	}
	return nil
}

// mockPresenter implements domain.Presenter with scripted answers
type mockPresenter struct {
	selections      []string
	urls            []string
	confirmDownload []bool
	confirmMismatch []bool
	confirmContinue []bool

	banners    int
	menus      int
	guides     int
	infosShown int
	farewells  int

	failures    []string
	successes   []string
	notices     []string
	statsShown  [][]string
	mismatches  [][2]string
}

func (m *mockPresenter) Banner()                      { m.banners++ }
func (m *mockPresenter) Menu(*domain.Catalog)         { m.menus++ }
func (m *mockPresenter) Guide(*domain.PlatformConfig) { m.guides++ }
func (m *mockPresenter) VideoInfo(*domain.VideoInfo)  { m.infosShown++ }
func (m *mockPresenter) Success(path string)          { m.successes = append(m.successes, path) }
func (m *mockPresenter) Failure(message string)       { m.failures = append(m.failures, message) }
func (m *mockPresenter) Statistics(titles []string)   { m.statsShown = append(m.statsShown, titles) }
func (m *mockPresenter) Farewell()                    { m.farewells++ }
func (m *mockPresenter) Notice(message string)        { m.notices = append(m.notices, message) }
func (m *mockPresenter) Working(string) func()        { return func() {} }

func (m *mockPresenter) SelectPlatform([]string, string) string { return popString(&m.selections) }
func (m *mockPresenter) AskURL() string                         { return popString(&m.urls) }
func (m *mockPresenter) ConfirmDownload() bool                  { return popBool(&m.confirmDownload) }
func (m *mockPresenter) ConfirmContinue() bool                  { return popBool(&m.confirmContinue) }

func (m *mockPresenter) ConfirmMismatch(detected, selected string) bool {
	m.mismatches = append(m.mismatches, [2]string{detected, selected})
	return popBool(&m.confirmMismatch)
}

func popString(q *[]string) string {
	if len(*q) == 0 {
		return ""
	}
	head := (*q)[0]
	*q = (*q)[1:]
	return head
}

func popBool(q *[]bool) bool {
	if len(*q) == 0 {
		return false
	}
	head := (*q)[0]
	*q = (*q)[1:]
	return head
}

// mockNotifier implements Notifier
type mockNotifier struct {
	completed []string
}

func (m *mockNotifier) DownloadCompleted(title string) {
	m.completed = append(m.completed, title)
}

func newTestSession(t *testing.T, extractor *mockExtractor, presenter *mockPresenter) (*Session, *mockNotifier) {
	t.Helper()

	cfg := domain.DefaultConfig()
	cfg.Download.OutputDir = filepath.Join(t.TempDir(), "out")
	notifier := &mockNotifier{}

	session, err := NewSession(cfg, domain.DefaultCatalog(), extractor, presenter, notifier, nil, nil)
	require.NoError(t, err)
	return session, notifier
}

func sampleInfo() *domain.VideoInfo {
	return &domain.VideoInfo{
		ID:         "abc123",
		Title:      "Never Gonna Give You Up",
		Uploader:   "Rick Astley",
		Duration:   213,
		ViewCount:  1000000,
		FileSize:   10485760,
		UploadDate: "2009-10-25",
		Ext:        "mp4",
		Filename:   "Never Gonna Give You Up.mp4",
	}
}

func youtubePlatform(t *testing.T) *domain.PlatformConfig {
	t.Helper()
	platform, ok := domain.DefaultCatalog().Get("1")
	require.True(t, ok)
	return platform
}

func TestNewSession_CreatesOutputDir(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Download.OutputDir = filepath.Join(t.TempDir(), "nested", "downloads")

	_, err := NewSession(cfg, domain.DefaultCatalog(), &mockExtractor{}, &mockPresenter{}, nil, nil, nil)
	require.NoError(t, err)

	stat, err := os.Stat(cfg.Download.OutputDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestDownload_ProbeFailure(t *testing.T) {
	extractor := &mockExtractor{probeErr: errors.New("video is private")}
	presenter := &mockPresenter{}
	session, notifier := newTestSession(t, extractor, presenter)

	outcome := session.Download(context.Background(), "https://youtu.be/x", youtubePlatform(t))

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Len(t, presenter.failures, 1)
	assert.Contains(t, presenter.failures[0], "video is private")
	assert.Equal(t, 0, extractor.fetchCalls)
	assert.Equal(t, 0, session.History().Len())
	assert.Empty(t, notifier.completed)
}

func TestDownload_DeclinedConfirmation(t *testing.T) {
	extractor := &mockExtractor{info: sampleInfo()}
	presenter := &mockPresenter{confirmDownload: []bool{false}}
	session, _ := newTestSession(t, extractor, presenter)

	outcome := session.Download(context.Background(), "https://youtu.be/x", youtubePlatform(t))

	assert.Equal(t, OutcomeCancelled, outcome)
	assert.Equal(t, 1, presenter.infosShown)
	assert.Equal(t, 0, extractor.fetchCalls)
	assert.Equal(t, 0, session.History().Len())
	assert.Empty(t, presenter.failures)
}

func TestDownload_Success(t *testing.T) {
	extractor := &mockExtractor{info: sampleInfo()}
	presenter := &mockPresenter{confirmDownload: []bool{true}}
	session, notifier := newTestSession(t, extractor, presenter)

	outcome := session.Download(context.Background(), "https://youtu.be/x", youtubePlatform(t))

	assert.Equal(t, OutcomeSuccess, outcome)
	assert.Equal(t, 1, extractor.probeCalls)
	assert.Equal(t, 1, extractor.fetchCalls)

	require.Equal(t, 1, session.History().Len())
	assert.Equal(t, "Never Gonna Give You Up", session.History().Titles()[0])
	assert.Equal(t, []string{"Never Gonna Give You Up"}, notifier.completed)

	require.Len(t, presenter.successes, 1)
	assert.Equal(t, filepath.Join(session.cfg.Download.OutputDir, "Never Gonna Give You Up.mp4"), presenter.successes[0])

	// Same options for probe and fetch, built from the selected platform.
	assert.Equal(t, youtubePlatform(t).FormatPreference, extractor.lastOpts.Format)
	assert.Equal(t, filepath.Join(session.cfg.Download.OutputDir, "%(title)s.%(ext)s"), extractor.lastOpts.OutputTemplate)
	assert.True(t, extractor.lastOpts.SkipCertVerify)
	assert.NotEmpty(t, extractor.lastOpts.UserAgent)
}

func TestDownload_FetchFailure(t *testing.T) {
	extractor := &mockExtractor{info: sampleInfo(), fetchErr: errors.New("network unreachable")}
	presenter := &mockPresenter{confirmDownload: []bool{true}}
	session, notifier := newTestSession(t, extractor, presenter)

	outcome := session.Download(context.Background(), "https://youtu.be/x", youtubePlatform(t))

	assert.Equal(t, OutcomeFailed, outcome)
	assert.Len(t, presenter.failures, 1)
	assert.Equal(t, 0, session.History().Len())
	assert.Empty(t, notifier.completed)
}

func TestDownload_MissingTitleFallsBack(t *testing.T) {
	info := sampleInfo()
	info.Title = ""
	info.Filename = ""
	extractor := &mockExtractor{info: info}
	presenter := &mockPresenter{confirmDownload: []bool{true}}
	session, _ := newTestSession(t, extractor, presenter)

	outcome := session.Download(context.Background(), "https://youtu.be/x", youtubePlatform(t))

	assert.Equal(t, OutcomeSuccess, outcome)
	assert.Equal(t, []string{"Unknown"}, session.History().Titles())
	require.Len(t, presenter.successes, 1)
	assert.Equal(t, filepath.Join(session.cfg.Download.OutputDir, "video.mp4"), presenter.successes[0])
}

func TestDownload_SanitizesFallbackFilename(t *testing.T) {
	info := sampleInfo()
	info.Title = "a/b:c"
	info.Filename = ""
	extractor := &mockExtractor{info: info}
	presenter := &mockPresenter{confirmDownload: []bool{true}}
	session, _ := newTestSession(t, extractor, presenter)

	session.Download(context.Background(), "https://youtu.be/x", youtubePlatform(t))

	require.Len(t, presenter.successes, 1)
	assert.Equal(t, filepath.Join(session.cfg.Download.OutputDir, "a_b_c.mp4"), presenter.successes[0])
}

func TestRun_ExitWithoutDownloadsSkipsStatistics(t *testing.T) {
	presenter := &mockPresenter{selections: []string{"0"}}
	session, _ := newTestSession(t, &mockExtractor{}, presenter)

	err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, presenter.banners)
	assert.Equal(t, 1, presenter.menus)
	assert.Empty(t, presenter.statsShown)
	assert.Equal(t, 1, presenter.farewells)
}

func TestRun_EmptyURLReturnsToMenu(t *testing.T) {
	extractor := &mockExtractor{}
	presenter := &mockPresenter{
		selections: []string{"1", "0"},
		urls:       []string{"   "},
	}
	session, _ := newTestSession(t, extractor, presenter)

	err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, extractor.probeCalls)
	assert.Equal(t, 2, presenter.menus)
	require.NotEmpty(t, presenter.notices)
	assert.Contains(t, presenter.notices[0], "URL cannot be empty")
}

func TestRun_MismatchDeclinedReturnsToMenu(t *testing.T) {
	extractor := &mockExtractor{}
	presenter := &mockPresenter{
		selections:      []string{"1", "0"},
		urls:            []string{"https://www.instagram.com/reel/XYZ/"},
		confirmMismatch: []bool{false},
	}
	session, _ := newTestSession(t, extractor, presenter)

	err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, extractor.probeCalls)
	require.Len(t, presenter.mismatches, 1)
	assert.Equal(t, [2]string{"Instagram", "YouTube"}, presenter.mismatches[0])
}

func TestRun_MismatchAcceptedUsesSelectedPlatform(t *testing.T) {
	extractor := &mockExtractor{info: sampleInfo()}
	presenter := &mockPresenter{
		selections:      []string{"1"},
		urls:            []string{"https://www.instagram.com/reel/XYZ/"},
		confirmMismatch: []bool{true},
		confirmDownload: []bool{true},
		confirmContinue: []bool{false},
	}
	session, _ := newTestSession(t, extractor, presenter)

	err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, extractor.probeCalls)
	// Permissive by design: the selected platform's format wins.
	assert.Equal(t, youtubePlatform(t).FormatPreference, extractor.lastOpts.Format)
}

func TestRun_MatchingPlatformSkipsMismatchPrompt(t *testing.T) {
	extractor := &mockExtractor{info: sampleInfo()}
	presenter := &mockPresenter{
		selections:      []string{"1"},
		urls:            []string{"https://youtu.be/dQw4w9WgXcQ"},
		confirmDownload: []bool{true},
		confirmContinue: []bool{false},
	}
	session, _ := newTestSession(t, extractor, presenter)

	err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, presenter.mismatches)
	assert.Equal(t, 1, extractor.fetchCalls)
}

func TestRun_StatisticsShownOnceAfterSuccess(t *testing.T) {
	extractor := &mockExtractor{info: sampleInfo()}
	presenter := &mockPresenter{
		selections:      []string{"1"},
		urls:            []string{"https://youtu.be/dQw4w9WgXcQ"},
		confirmDownload: []bool{true},
		confirmContinue: []bool{false},
	}
	session, _ := newTestSession(t, extractor, presenter)

	err := session.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, presenter.statsShown, 1)
	assert.Equal(t, []string{"Never Gonna Give You Up"}, presenter.statsShown[0])
	assert.Equal(t, 1, presenter.farewells)
}

func TestRun_ExitKeyAfterSuccessShowsStatisticsOnce(t *testing.T) {
	extractor := &mockExtractor{info: sampleInfo()}
	presenter := &mockPresenter{
		selections:      []string{"1", "0"},
		urls:            []string{"https://youtu.be/dQw4w9WgXcQ"},
		confirmDownload: []bool{true},
		confirmContinue: []bool{true},
	}
	session, _ := newTestSession(t, extractor, presenter)

	err := session.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, presenter.statsShown, 1)
	assert.Equal(t, []string{"Never Gonna Give You Up"}, presenter.statsShown[0])
	assert.Equal(t, 1, presenter.farewells)
}

func TestRun_FailedAttemptKeepsLoopAlive(t *testing.T) {
	extractor := &mockExtractor{probeErr: errors.New("unsupported URL")}
	presenter := &mockPresenter{
		selections:      []string{"2", "0"},
		urls:            []string{"https://www.instagram.com/reel/XYZ/"},
		confirmContinue: []bool{true},
	}
	session, _ := newTestSession(t, extractor, presenter)

	err := session.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, presenter.failures, 1)
	assert.Equal(t, 2, presenter.menus)
	assert.Empty(t, presenter.statsShown)
}
