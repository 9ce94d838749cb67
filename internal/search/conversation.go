package search

import (
	"strings"

	"github.com/davidpaquet/claude-conversation-browser/internal/model"
)

// ScanState describes where the engine is in its lifecycle.
type ScanState int

const (
	// ScanIdle means no conversation or no usable query.
	ScanIdle ScanState = iota
	// ScanMatches means the last scan found at least one match.
	ScanMatches
	// ScanNoMatches means the last scan completed without matches.
	ScanNoMatches
)

// ConversationSearch scans a loaded conversation for a query and keeps the
// ordered match list, the active match index, and highlight state. The
// match list is rebuilt in full whenever the conversation or the query
// changes; it is never patched incrementally.
type ConversationSearch struct {
	conv    *model.Conversation
	query   string
	matches []model.MatchCoordinate
	present map[model.MatchCoordinate]bool
	current int

	// notify signals "scroll to coordinate", exactly once per change of
	// the active coordinate. May be nil.
	notify func(model.MatchCoordinate)
}

// NewConversationSearch creates an engine. notify receives scroll signals
// and may be nil.
func NewConversationSearch(notify func(model.MatchCoordinate)) *ConversationSearch {
	return &ConversationSearch{notify: notify}
}

// SetConversation installs a new conversation and rescans with the current
// query. Passing nil discards all state, which is what a session switch
// must do even while the next conversation is still loading.
func (cs *ConversationSearch) SetConversation(conv *model.Conversation) {
	cs.conv = conv
	cs.rescan()
}

// SetQuery changes the active query and rescans. The active match resets
// to the first match.
func (cs *ConversationSearch) SetQuery(query string) {
	if query == cs.query {
		return
	}
	cs.query = query
	cs.rescan()
}

// rescan rebuilds the match list for the current (conversation, query)
// pair. A scan that leaves at least one match signals a scroll to the
// first one.
func (cs *ConversationSearch) rescan() {
	cs.matches = nil
	cs.present = nil
	cs.current = 0

	needle := strings.ToLower(strings.TrimSpace(cs.query))
	if cs.conv == nil || needle == "" {
		return
	}

	cs.present = make(map[model.MatchCoordinate]bool)
	for mi, msg := range cs.conv.Messages {
		for bi, block := range msg.Blocks {
			text, ok := block.SearchableText()
			if !ok {
				continue
			}
			if !strings.Contains(strings.ToLower(text), needle) {
				continue
			}
			// One navigable match per block, however many occurrences.
			coord := model.MatchCoordinate{Message: mi, Block: bi}
			cs.matches = append(cs.matches, coord)
			cs.present[coord] = true
		}
	}

	if len(cs.matches) > 0 {
		cs.signal()
	}
}

// Next advances to the following match, wrapping at the end. No-op without
// matches.
func (cs *ConversationSearch) Next() {
	if len(cs.matches) == 0 {
		return
	}
	next := (cs.current + 1) % len(cs.matches)
	if next == cs.current {
		return
	}
	cs.current = next
	cs.signal()
}

// Prev moves to the preceding match, wrapping at the start. No-op without
// matches.
func (cs *ConversationSearch) Prev() {
	if len(cs.matches) == 0 {
		return
	}
	prev := (cs.current - 1 + len(cs.matches)) % len(cs.matches)
	if prev == cs.current {
		return
	}
	cs.current = prev
	cs.signal()
}

func (cs *ConversationSearch) signal() {
	if cs.notify != nil {
		cs.notify(cs.matches[cs.current])
	}
}

// State reports the engine lifecycle state. Scanning itself is synchronous,
// so callers only ever observe the settled states.
func (cs *ConversationSearch) State() ScanState {
	if cs.conv == nil || strings.TrimSpace(cs.query) == "" {
		return ScanIdle
	}
	if len(cs.matches) > 0 {
		return ScanMatches
	}
	return ScanNoMatches
}

// Matches returns the ordered match list.
func (cs *ConversationSearch) Matches() []model.MatchCoordinate {
	return cs.matches
}

// Current returns the active match coordinate, if any.
func (cs *ConversationSearch) Current() (model.MatchCoordinate, bool) {
	if len(cs.matches) == 0 {
		return model.MatchCoordinate{}, false
	}
	return cs.matches[cs.current], true
}

// CurrentIndex returns the zero-based position of the active match.
func (cs *ConversationSearch) CurrentIndex() int {
	return cs.current
}

// Query returns the active query.
func (cs *ConversationSearch) Query() string {
	return cs.query
}

// HasMatch reports whether the block at the coordinate contains the query.
func (cs *ConversationSearch) HasMatch(messageIndex, blockIndex int) bool {
	return cs.present[model.MatchCoordinate{Message: messageIndex, Block: blockIndex}]
}

// IsActive reports whether the block at the coordinate is the active
// match. The renderer uses this to pick the strong highlight style.
func (cs *ConversationSearch) IsActive(messageIndex, blockIndex int) bool {
	coord, ok := cs.Current()
	if !ok {
		return false
	}
	return coord.Message == messageIndex && coord.Block == blockIndex
}
