package model

import (
	"path/filepath"
	"strings"
	"time"
)

// Session holds the metadata record for one recorded session. Records are
// immutable once loaded; the list is rebuilt wholesale on refresh.
type Session struct {
	ID               string
	FilePath         string
	Summary          string
	FirstUserMessage string
	FirstMessageAt   time.Time
	LastActive       time.Time
	MessageCount     int
	InputTokens      int
	OutputTokens     int
	TotalCostUSD     float64
}

// GetSessionID extracts the session ID from a filename
func GetSessionID(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, ".jsonl")
}

// Title returns the display title: the summary if present, otherwise the
// first user message, otherwise "Untitled".
func (s *Session) Title() string {
	if s.Summary != "" {
		return s.Summary
	}
	if s.FirstUserMessage != "" {
		return s.FirstUserMessage
	}
	return "Untitled"
}

// IsWarmup reports whether this is an automated warmup session. Both search
// paths and the default listing call this, so a session can never be hidden
// as warmup by one path yet surfaced by the other.
func (s *Session) IsWarmup() bool {
	return strings.EqualFold(strings.TrimSpace(s.Title()), "warmup")
}

// GetResumeCommand returns the command to resume this session
func (s *Session) GetResumeCommand() string {
	return "claude --resume " + s.ID
}
