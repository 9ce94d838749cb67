package search

import (
	"strings"

	"github.com/davidpaquet/claude-conversation-browser/internal/model"
)

// SessionSearch holds the state of one session-discovery query: the raw
// query as typed, the settled query after debouncing, the synchronous
// fuzzy results, and the asynchronously arriving content results.
//
// All methods are synchronous and are meant to be driven from a single
// event loop. The caller owns the debounce timer and the content search
// call; SessionSearch only enforces the discard rules for their results.
type SessionSearch struct {
	all     []model.Session
	titles  *TitleIndex
	content []ContentMatch

	rawQuery     string
	settledQuery string
	fuzzyResults []model.Session

	merged MergeResult
}

// NewSessionSearch creates an empty search state.
func NewSessionSearch() *SessionSearch {
	s := &SessionSearch{titles: NewTitleIndex()}
	s.remerge()
	return s
}

// SetSessions replaces the session list, rebuilds the title index, and
// re-runs the current query against the new list.
func (s *SessionSearch) SetSessions(all []model.Session) {
	s.all = all
	s.titles.SetSessions(all)
	s.fuzzyResults = s.titles.Search(s.rawQuery)
	s.remerge()
}

// SetRawQuery records a keystroke-level query change. Fuzzy results update
// synchronously; content results from the previous query are dropped so
// the merged list never mixes two queries.
func (s *SessionSearch) SetRawQuery(query string) {
	if query == s.rawQuery {
		return
	}
	s.rawQuery = query
	s.content = nil
	s.fuzzyResults = s.titles.Search(query)
	s.remerge()
}

// SettleQuery records the debounced query and reports whether a content
// search should be launched for it.
func (s *SessionSearch) SettleQuery(query string) bool {
	s.settledQuery = query
	return len(strings.TrimSpace(query)) >= MinContentQueryLength
}

// ApplyContentResults installs content matches for query. Results for any
// query other than the live settled query are stale and are discarded; the
// return value reports whether the results were applied.
func (s *SessionSearch) ApplyContentResults(query string, matches []ContentMatch) bool {
	if query != s.settledQuery {
		return false
	}
	if s.rawQuery == "" {
		return false
	}
	s.content = matches
	s.remerge()
	return true
}

func (s *SessionSearch) remerge() {
	s.merged = Merge(s.rawQuery, s.fuzzyResults, s.content, s.all)
}

// RawQuery returns the query as currently typed.
func (s *SessionSearch) RawQuery() string {
	return s.rawQuery
}

// SettledQuery returns the last debounced query.
func (s *SessionSearch) SettledQuery() string {
	return s.settledQuery
}

// Merged returns the ordered, deduplicated session list for the current
// query. With an empty query this is all non-warmup sessions in their
// original order.
func (s *SessionSearch) Merged() []model.Session {
	return s.merged.Order
}

// Warmups returns the warmup partition, independent of query.
func (s *SessionSearch) Warmups() []model.Session {
	return s.merged.Warmups
}

// MatchContext returns the content-match excerpt for a session, if the
// content path reported one for the current query.
func (s *SessionSearch) MatchContext(sessionID string) (ContentMatch, bool) {
	cm, ok := s.merged.Contexts[sessionID]
	return cm, ok
}
