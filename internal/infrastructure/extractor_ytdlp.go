package infrastructure

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/yourusername/video-downloader-go/internal/domain"
)

// progressPrefix tags the stdout lines we emit through yt-dlp's progress
// template so they can be told apart from everything else it prints.
const progressPrefix = "VDL-PROGRESS"

// progressTemplate makes yt-dlp print one machine-parseable line per progress
// tick: prefix|downloaded|total|estimate. Unknown fields come through as "NA".
const progressTemplate = "download:" + progressPrefix +
	"|%(progress.downloaded_bytes)s|%(progress.total_bytes)s|%(progress.total_bytes_estimate)s"

// YTDLP implements domain.Extractor by invoking the yt-dlp binary.
type YTDLP struct {
	binary string
	logger *zap.Logger
}

// NewYTDLP creates an extractor around the given yt-dlp binary.
func NewYTDLP(binary string, log *zap.Logger) *YTDLP {
	if log == nil {
		log = zap.NewNop()
	}
	return &YTDLP{binary: binary, logger: log}
}

// Probe fetches the info JSON for a URL without transferring media bytes.
func (y *YTDLP) Probe(ctx context.Context, url string, opts domain.FetchOptions) (*domain.VideoInfo, error) {
	args := append(commonArgs(opts), "--dump-json", "--skip-download", url)

	y.logger.Debug("running extractor probe",
		zap.String("cmd", ShellEscapeCommand(y.binary, args...)))

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, y.binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("failed to fetch video information: %s", extractorError(stderr.Bytes(), err))
	}

	info, err := parseInfoJSON(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to parse video information: %w", err)
	}
	return info, nil
}

// Fetch downloads the media for a URL, translating yt-dlp's progress lines
// into progress signals. Exactly one finished signal is emitted on success.
func (y *YTDLP) Fetch(ctx context.Context, url string, opts domain.FetchOptions, progress domain.ProgressFunc) error {
	if progress == nil {
		progress = func(domain.Progress) {}
	}

	args := append(commonArgs(opts),
		"--newline",
		"--progress",
		"--progress-template", progressTemplate,
		url,
	)

	y.logger.Debug("running extractor fetch",
		zap.String("cmd", ShellEscapeCommand(y.binary, args...)))

	cmd := exec.CommandContext(ctx, y.binary, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to attach to extractor output: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start extractor: %w", err)
	}

	// The progress session ends with exactly one finished signal no matter
	// how the transfer ends; a failed attempt must not leave the reporter
	// active for the next one.
	defer progress(domain.Progress{Status: domain.ProgressFinished})

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if p, ok := parseProgressLine(scanner.Text()); ok {
			progress(p)
		}
	}
	if err := scanner.Err(); err != nil {
		// Keep draining so a chatty child is not blocked on a full pipe
		// while we wait for it.
		y.logger.Warn("progress output scan interrupted", zap.Error(err))
		_, _ = io.Copy(io.Discard, stdout)
	}

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("download failed: %s", extractorError(stderr.Bytes(), err))
	}

	return nil
}

// commonArgs builds the flags shared by probe and fetch so the two phases see
// the same format selection and filename template.
func commonArgs(opts domain.FetchOptions) []string {
	args := []string{"--no-playlist", "--no-warnings"}
	if opts.Format != "" {
		args = append(args, "-f", opts.Format)
	}
	if opts.OutputTemplate != "" {
		args = append(args, "-o", opts.OutputTemplate)
	}
	if opts.SkipCertVerify {
		args = append(args, "--no-check-certificates")
	}
	if opts.UserAgent != "" {
		args = append(args, "--user-agent", opts.UserAgent)
	}
	return args
}

// parseProgressLine decodes one progress-template line. Returns false for any
// line that is not ours or is malformed.
func parseProgressLine(line string) (domain.Progress, bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, progressPrefix+"|") {
		return domain.Progress{}, false
	}

	parts := strings.Split(line, "|")
	if len(parts) != 4 {
		return domain.Progress{}, false
	}

	downloaded, err := parseByteCount(parts[1])
	if err != nil {
		return domain.Progress{}, false
	}

	total, err := parseByteCount(parts[2])
	if err != nil || total <= 0 {
		// Fall back to the estimate; an unparseable estimate means
		// the transfer size is indeterminate, not that the line is bad.
		total, _ = parseByteCount(parts[3])
	}

	return domain.Progress{
		Status:          domain.ProgressDownloading,
		DownloadedBytes: downloaded,
		TotalBytes:      total,
	}, true
}

// parseByteCount handles yt-dlp's habit of emitting byte counts as integers,
// floats, or the literal "NA"/"None" when unknown.
func parseByteCount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "NA" || s == "None" || s == "null" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// infoJSON mirrors the subset of yt-dlp's info dict this tool reads.
type infoJSON struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Uploader       string   `json:"uploader"`
	Duration       float64  `json:"duration"`
	ViewCount      *int64   `json:"view_count"`
	Filesize       *float64 `json:"filesize"`
	FilesizeApprox *float64 `json:"filesize_approx"`
	UploadDate     string   `json:"upload_date"`
	Ext            string   `json:"ext"`
	Filename       string   `json:"filename"`
	LegacyFilename string   `json:"_filename"`
}

func parseInfoJSON(data []byte) (*domain.VideoInfo, error) {
	var raw infoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	info := &domain.VideoInfo{
		ID:         raw.ID,
		Title:      raw.Title,
		Uploader:   raw.Uploader,
		Duration:   int(raw.Duration),
		ViewCount:  domain.ViewCountUnknown,
		UploadDate: formatUploadDate(raw.UploadDate),
		Ext:        raw.Ext,
	}

	if raw.ViewCount != nil {
		info.ViewCount = *raw.ViewCount
	}
	if raw.Filesize != nil && *raw.Filesize > 0 {
		info.FileSize = int64(*raw.Filesize)
	} else if raw.FilesizeApprox != nil && *raw.FilesizeApprox > 0 {
		info.FileSize = int64(*raw.FilesizeApprox)
	}

	// yt-dlp resolves the output template into "filename" (older builds used
	// "_filename"); this is the extractor's own naming convention for the file
	// it will write.
	filename := raw.Filename
	if filename == "" {
		filename = raw.LegacyFilename
	}
	if filename != "" {
		info.Filename = filepath.Base(filename)
	}

	return info, nil
}

// formatUploadDate turns yt-dlp's YYYYMMDD into YYYY-MM-DD; anything else
// passes through unchanged.
func formatUploadDate(date string) string {
	if len(date) != 8 {
		return date
	}
	for _, c := range date {
		if c < '0' || c > '9' {
			return date
		}
	}
	return date[:4] + "-" + date[4:6] + "-" + date[6:]
}

// extractorError pulls the most useful human-readable message out of a failed
// invocation: the last ERROR: line from stderr, else stderr itself, else the
// exec error.
func extractorError(stderr []byte, err error) string {
	var lastError string
	scanner := bufio.NewScanner(bytes.NewReader(stderr))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "ERROR:") {
			lastError = strings.TrimSpace(strings.TrimPrefix(line, "ERROR:"))
		}
	}
	if lastError != "" {
		return lastError
	}
	if trimmed := strings.TrimSpace(string(stderr)); trimmed != "" {
		return trimmed
	}
	return err.Error()
}
