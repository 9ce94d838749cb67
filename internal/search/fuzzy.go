package search

import (
	"fmt"
	"strings"

	"github.com/davidpaquet/claude-conversation-browser/internal/model"
	"github.com/sahilm/fuzzy"
)

// TitleIndex ranks sessions against a query by fuzzy-matching their
// summary and first user message. Warmup sessions are excluded at build
// time. The index is rebuilt lazily after SetSessions.
type TitleIndex struct {
	sessions []model.Session
	source   titleSource
	stale    bool
}

// NewTitleIndex creates an empty title index.
func NewTitleIndex() *TitleIndex {
	return &TitleIndex{stale: true}
}

// SetSessions replaces the backing session list. The fuzzy source is
// rebuilt on the next Search.
func (ti *TitleIndex) SetSessions(all []model.Session) {
	ti.sessions = all
	ti.stale = true
}

func (ti *TitleIndex) rebuild() {
	nonWarmups := make([]model.Session, 0, len(ti.sessions))
	for _, s := range ti.sessions {
		if !s.IsWarmup() {
			nonWarmups = append(nonWarmups, s)
		}
	}
	ti.source = titleSource{sessions: nonWarmups}
	ti.stale = false
}

// Search returns non-warmup sessions ranked best match first. It runs
// synchronously and is re-issued on every keystroke.
func (ti *TitleIndex) Search(query string) []model.Session {
	if ti.stale {
		ti.rebuild()
	}
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, ti.source)

	results := make([]model.Session, 0, len(matches))
	for _, match := range matches {
		results = append(results, ti.source.sessions[match.Index])
	}
	return results
}

// titleSource adapts the session list to the fuzzy matcher.
type titleSource struct {
	sessions []model.Session
}

func (s titleSource) String(i int) string {
	session := s.sessions[i]
	// Combine searchable fields for better matching
	return strings.ToLower(fmt.Sprintf("%s %s", session.Summary, session.FirstUserMessage))
}

func (s titleSource) Len() int {
	return len(s.sessions)
}
