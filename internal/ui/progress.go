package ui

import (
	"io"

	"github.com/pterm/pterm"

	"github.com/yourusername/video-downloader-go/internal/domain"
)

// ProgressReporter translates extractor progress signals into a terminal
// progress bar. It has two states: idle (no bar) and active (one bar bound to
// the in-flight transfer). The first downloading signal activates it, the
// finished signal tears the bar down, so each download gets a fresh bar.
type ProgressReporter struct {
	writer io.Writer
	bar    *pterm.ProgressbarPrinter
}

// NewProgressReporter creates an idle reporter rendering to w.
func NewProgressReporter(w io.Writer) *ProgressReporter {
	return &ProgressReporter{writer: w}
}

// Active reports whether a progress bar is currently displayed.
func (r *ProgressReporter) Active() bool {
	return r.bar != nil
}

// Handle implements domain.ProgressFunc.
func (r *ProgressReporter) Handle(p domain.Progress) {
	switch p.Status {
	case domain.ProgressDownloading:
		r.update(p)
	case domain.ProgressFinished:
		r.teardown()
	}
}

func (r *ProgressReporter) update(p domain.Progress) {
	// Signals within one attempt only ever increase; a regressing byte count
	// means a new attempt started without the previous bar being torn down.
	if r.bar != nil && int(p.DownloadedBytes) < r.bar.Current {
		r.teardown()
	}

	if r.bar == nil {
		total := int(p.TotalBytes)
		if total <= 0 {
			// Indeterminate transfer: keep the ceiling ahead of the
			// downloaded count so the bar never reads complete early.
			total = int(p.DownloadedBytes) + 1
		}
		bar, err := pterm.DefaultProgressbar.
			WithTitle("Downloading").
			WithTotal(total).
			WithShowCount(false).
			WithRemoveWhenDone(true).
			WithWriter(r.writer).
			Start()
		if err != nil {
			return
		}
		r.bar = bar
	}

	if p.TotalBytes > 0 {
		r.bar.Total = int(p.TotalBytes)
	} else if int(p.DownloadedBytes) >= r.bar.Total {
		r.bar.Total = int(p.DownloadedBytes) + 1
	}

	if delta := int(p.DownloadedBytes) - r.bar.Current; delta > 0 {
		r.bar.Add(delta)
	}
}

func (r *ProgressReporter) teardown() {
	if r.bar == nil {
		return
	}
	r.bar.Stop()
	r.bar = nil
}
