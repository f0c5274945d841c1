package domain

// History records the titles downloaded during the current session. It only
// grows: an entry is added if and only if a download attempt succeeds. The
// history dies with the process.
type History struct {
	titles []string
}

// NewHistory creates an empty session history.
func NewHistory() *History {
	return &History{}
}

// Add appends a downloaded title.
func (h *History) Add(title string) {
	h.titles = append(h.titles, title)
}

// Len returns the number of recorded downloads.
func (h *History) Len() int {
	return len(h.titles)
}

// Titles returns a copy of the recorded titles in download order.
func (h *History) Titles() []string {
	out := make([]string, len(h.titles))
	copy(out, h.titles)
	return out
}
