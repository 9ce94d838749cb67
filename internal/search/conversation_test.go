package search

import (
	"testing"

	"github.com/davidpaquet/claude-conversation-browser/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConversation() *model.Conversation {
	return &model.Conversation{
		SessionID: "s1",
		Messages: []model.Message{
			{Role: "user", Blocks: []model.ContentBlock{
				{Kind: model.BlockText, Text: "alpha beta"},
			}},
			{Role: "assistant", Blocks: []model.ContentBlock{
				{Kind: model.BlockThinking, Text: "gamma ALPHA"},
			}},
		},
	}
}

func TestConversationScan(t *testing.T) {
	cs := NewConversationSearch(nil)
	cs.SetConversation(testConversation())
	cs.SetQuery("alpha")

	require.Equal(t, []model.MatchCoordinate{
		{Message: 0, Block: 0},
		{Message: 1, Block: 0},
	}, cs.Matches())

	coord, ok := cs.Current()
	require.True(t, ok)
	assert.Equal(t, model.MatchCoordinate{Message: 0, Block: 0}, coord)
	assert.Equal(t, ScanMatches, cs.State())
}

func TestConversationCyclicNavigation(t *testing.T) {
	cs := NewConversationSearch(nil)
	cs.SetConversation(testConversation())
	cs.SetQuery("alpha")

	cs.Next()
	assert.Equal(t, 1, cs.CurrentIndex())
	cs.Next()
	assert.Equal(t, 0, cs.CurrentIndex(), "next wraps to the first match")

	cs.Prev()
	assert.Equal(t, 1, cs.CurrentIndex(), "prev wraps to the last match")
}

func TestConversationNavigationWithoutMatches(t *testing.T) {
	cs := NewConversationSearch(nil)
	cs.SetConversation(testConversation())
	cs.SetQuery("zzz")

	assert.Empty(t, cs.Matches())
	assert.Equal(t, ScanNoMatches, cs.State())

	// Both are no-ops at len == 0.
	cs.Next()
	cs.Prev()
	_, ok := cs.Current()
	assert.False(t, ok)
}

func TestConversationEmptyQueryIsInert(t *testing.T) {
	signals := 0
	cs := NewConversationSearch(func(model.MatchCoordinate) { signals++ })
	cs.SetConversation(testConversation())

	cs.SetQuery("")
	cs.SetQuery("   ")

	assert.Empty(t, cs.Matches())
	assert.Equal(t, ScanIdle, cs.State())
	assert.Zero(t, signals, "empty query must not emit scroll signals")
	assert.False(t, cs.IsActive(0, 0))
	assert.False(t, cs.HasMatch(0, 0))
}

func TestConversationOnlyTextAndThinkingSearchable(t *testing.T) {
	conv := &model.Conversation{
		Messages: []model.Message{
			{Blocks: []model.ContentBlock{
				{Kind: model.BlockToolUse, ToolName: "alpha"},
				{Kind: model.BlockToolResult},
				{Kind: model.BlockText, Text: "alpha"},
			}},
		},
	}

	cs := NewConversationSearch(nil)
	cs.SetConversation(conv)
	cs.SetQuery("alpha")

	assert.Equal(t, []model.MatchCoordinate{{Message: 0, Block: 2}}, cs.Matches())
}

func TestConversationOneMatchPerBlock(t *testing.T) {
	conv := &model.Conversation{
		Messages: []model.Message{
			{Blocks: []model.ContentBlock{
				{Kind: model.BlockText, Text: "alpha alpha alpha"},
			}},
		},
	}

	cs := NewConversationSearch(nil)
	cs.SetConversation(conv)
	cs.SetQuery("alpha")

	assert.Len(t, cs.Matches(), 1, "occurrences within one block are one navigable match")
}

func TestConversationScrollSignals(t *testing.T) {
	var signals []model.MatchCoordinate
	cs := NewConversationSearch(func(c model.MatchCoordinate) { signals = append(signals, c) })

	cs.SetConversation(testConversation())
	require.Empty(t, signals, "no query, no signal")

	cs.SetQuery("alpha")
	require.Equal(t, []model.MatchCoordinate{{Message: 0, Block: 0}}, signals,
		"a fresh scan with matches signals the first match once")

	cs.Next()
	require.Equal(t, model.MatchCoordinate{Message: 1, Block: 0}, signals[len(signals)-1])
	require.Len(t, signals, 2)

	// Query change resets the active index and signals the new scan.
	cs.SetQuery("beta")
	require.Len(t, signals, 3)
	assert.Equal(t, model.MatchCoordinate{Message: 0, Block: 0}, signals[2])

	// Single match: Next does not move, so it must not signal again.
	cs.Next()
	assert.Len(t, signals, 3)
}

func TestConversationQueryChangeResetsIndex(t *testing.T) {
	cs := NewConversationSearch(nil)
	cs.SetConversation(testConversation())
	cs.SetQuery("alpha")
	cs.Next()
	require.Equal(t, 1, cs.CurrentIndex())

	cs.SetQuery("alph")
	assert.Equal(t, 0, cs.CurrentIndex())
}

func TestConversationHighlightState(t *testing.T) {
	cs := NewConversationSearch(nil)
	cs.SetConversation(testConversation())
	cs.SetQuery("alpha")

	assert.True(t, cs.IsActive(0, 0))
	assert.False(t, cs.IsActive(1, 0))
	assert.True(t, cs.HasMatch(1, 0), "non-active matching block still reports a match")

	cs.Next()
	assert.False(t, cs.IsActive(0, 0))
	assert.True(t, cs.IsActive(1, 0))
}

func TestConversationSwitchDiscardsState(t *testing.T) {
	cs := NewConversationSearch(nil)
	cs.SetConversation(testConversation())
	cs.SetQuery("alpha")
	cs.Next()
	require.Equal(t, 1, cs.CurrentIndex())

	// A session switch clears everything, even before the next
	// conversation arrives.
	cs.SetConversation(nil)
	assert.Empty(t, cs.Matches())
	assert.Equal(t, ScanIdle, cs.State())
	_, ok := cs.Current()
	assert.False(t, ok)

	// The next conversation rescans with the still-active query.
	cs.SetConversation(testConversation())
	assert.Equal(t, 0, cs.CurrentIndex())
	assert.Len(t, cs.Matches(), 2)
}
