package domain

import "context"

// ProgressStatus identifies the kind of progress signal an extractor emits.
type ProgressStatus string

const (
	ProgressDownloading ProgressStatus = "downloading"
	ProgressFinished    ProgressStatus = "finished"
)

// Progress describes one progress signal for an in-flight transfer.
// TotalBytes carries the exact size when known, an estimate otherwise,
// and 0 when the transfer size is indeterminate.
type Progress struct {
	Status          ProgressStatus
	DownloadedBytes int64
	TotalBytes      int64
}

// ProgressFunc receives progress signals during a fetch. Signals arrive in
// increasing-progress order and end with exactly one finished signal per
// completed transfer.
type ProgressFunc func(Progress)

// FetchOptions configures one extractor invocation. A fresh value is built
// for every attempt.
type FetchOptions struct {
	OutputTemplate string
	Format         string
	SkipCertVerify bool
	UserAgent      string
}

// Extractor is the boundary to the external video extraction tool.
type Extractor interface {
	// Probe fetches metadata for the URL without transferring media bytes.
	Probe(ctx context.Context, url string, opts FetchOptions) (*VideoInfo, error)

	// Fetch downloads the media for the URL, reporting progress as it goes.
	Fetch(ctx context.Context, url string, opts FetchOptions, progress ProgressFunc) error
}
