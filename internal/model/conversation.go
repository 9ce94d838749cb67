package model

import "time"

// BlockKind identifies the variant of a ContentBlock. The set is closed so
// the scanner can switch over it exhaustively.
type BlockKind int

const (
	BlockText BlockKind = iota
	BlockThinking
	BlockToolUse
	BlockToolResult
	BlockOther
)

// ContentBlock is one unit of a message payload. Text carries the payload
// for text and thinking blocks; ToolName is set for tool_use blocks.
type ContentBlock struct {
	Kind     BlockKind
	Text     string
	ToolName string
}

// SearchableText returns the plain text a search query runs against. Only
// text and thinking blocks are searchable; tool invocations and results
// are not.
func (b ContentBlock) SearchableText() (string, bool) {
	switch b.Kind {
	case BlockText, BlockThinking:
		return b.Text, true
	case BlockToolUse, BlockToolResult, BlockOther:
		return "", false
	}
	return "", false
}

// Message is one turn of a conversation.
type Message struct {
	UUID      string
	Role      string
	Timestamp time.Time
	Blocks    []ContentBlock
}

// Conversation is a fully loaded message history for one session.
type Conversation struct {
	SessionID string
	Messages  []Message
}

// MatchCoordinate identifies one content block containing at least one
// occurrence of the active search query.
type MatchCoordinate struct {
	Message int
	Block   int
}
