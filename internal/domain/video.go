package domain

// ViewCountUnknown marks a probe result whose view count was absent from the
// extractor's metadata, as opposed to a genuine zero.
const ViewCountUnknown = -1

// VideoInfo holds the metadata returned by a probe. It is read-only once
// obtained and never persisted.
type VideoInfo struct {
	ID         string
	Title      string
	Uploader   string
	Duration   int   // seconds, 0 when unknown
	ViewCount  int64 // ViewCountUnknown when absent
	FileSize   int64 // bytes, exact or approximate, 0 when unknown
	UploadDate string
	Ext        string
	Filename   string // output filename resolved by the extractor's template
}
