package gate

import "time"

// PageSize is the maximum number of entries shown per review page.
const PageSize = 10

// SessionTimeout is how long a review session stays interactive after the last
// navigation input. Each valid navigation refreshes the deadline.
const SessionTimeout = 120 * time.Second

// Paginate splits entries into consecutive chunks of at most size elements,
// preserving order. An empty input produces no pages.
func Paginate(entries []string, size int) [][]string {
	if size <= 0 || len(entries) == 0 {
		return nil
	}

	pages := make([][]string, 0, (len(entries)+size-1)/size)
	for start := 0; start < len(entries); start += size {
		end := min(start+size, len(entries))
		pages = append(pages, entries[start:end])
	}
	return pages
}

// PageState is the full state of one review session: the chunked entries, the
// currently displayed page, and the inactivity deadline. Transitions return a
// new value instead of mutating, so the bot layer can decide whether a
// re-render is needed from the reported change flag.
type PageState struct {
	Pages    [][]string
	Index    int
	Deadline time.Time
}

// NewPageState starts a session on page 0 with a fresh deadline.
func NewPageState(pages [][]string, now time.Time) PageState {
	return PageState{
		Pages:    pages,
		Index:    0,
		Deadline: now.Add(SessionTimeout),
	}
}

// Expired reports whether the session's inactivity deadline has passed.
func (s PageState) Expired(now time.Time) bool {
	return now.After(s.Deadline)
}

// Current returns the entries of the displayed page.
func (s PageState) Current() []string {
	if s.Index < 0 || s.Index >= len(s.Pages) {
		return nil
	}
	return s.Pages[s.Index]
}

// Total returns the page count.
func (s PageState) Total() int {
	return len(s.Pages)
}

// Next advances to the following page. It reports false, returning the state
// unchanged, when the session is expired or already on the last page.
func (s PageState) Next(now time.Time) (PageState, bool) {
	if s.Expired(now) || s.Index >= len(s.Pages)-1 {
		return s, false
	}

	s.Index++
	s.Deadline = now.Add(SessionTimeout)
	return s, true
}

// Previous retreats to the preceding page. It reports false, returning the
// state unchanged, when the session is expired or already on the first page.
func (s PageState) Previous(now time.Time) (PageState, bool) {
	if s.Expired(now) || s.Index <= 0 {
		return s, false
	}

	s.Index--
	s.Deadline = now.Add(SessionTimeout)
	return s, true
}
