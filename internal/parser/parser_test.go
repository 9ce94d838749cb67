package parser

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davidpaquet/claude-conversation-browser/internal/model"
)

func writeSession(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestListSessions(t *testing.T) {
	tmpDir := t.TempDir()
	p := NewParser()

	writeSession(t, tmpDir, "aaa.jsonl", `{"type":"summary","summary":"Refactor auth flow"}
{"type":"user","message":{"role":"user","content":"help me refactor the auth flow"},"timestamp":"2024-02-15T10:00:00Z"}
{"type":"assistant","message":{"role":"assistant","content":[{"type":"text","text":"Sure."}],"usage":{"input_tokens":120,"output_tokens":45}},"timestamp":"2024-02-15T10:00:05Z","costUSD":0.012}
`)
	writeSession(t, tmpDir, "bbb.jsonl", `{"type":"user","message":{"role":"user","content":"warmup"},"timestamp":"2024-02-16T08:00:00Z"}
`)
	writeSession(t, tmpDir, "notes.txt", "not a session")

	sessions, err := p.ListSessions(tmpDir)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("Expected 2 sessions, got %d", len(sessions))
	}

	byID := map[string]model.Session{}
	for _, s := range sessions {
		byID[s.ID] = s
	}

	a := byID["aaa"]
	if a.Summary != "Refactor auth flow" {
		t.Errorf("Expected summary, got %q", a.Summary)
	}
	if a.FirstUserMessage != "help me refactor the auth flow" {
		t.Errorf("Expected first user message, got %q", a.FirstUserMessage)
	}
	if a.MessageCount != 2 {
		t.Errorf("Expected 2 messages, got %d", a.MessageCount)
	}
	if a.InputTokens != 120 || a.OutputTokens != 45 {
		t.Errorf("Expected token totals 120/45, got %d/%d", a.InputTokens, a.OutputTokens)
	}
	if a.TotalCostUSD != 0.012 {
		t.Errorf("Expected cost 0.012, got %f", a.TotalCostUSD)
	}
	wantFirst := time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC)
	if !a.FirstMessageAt.Equal(wantFirst) {
		t.Errorf("Expected first message at %v, got %v", wantFirst, a.FirstMessageAt)
	}
	wantLast := time.Date(2024, 2, 15, 10, 0, 5, 0, time.UTC)
	if !a.LastActive.Equal(wantLast) {
		t.Errorf("Expected last active %v, got %v", wantLast, a.LastActive)
	}

	b := byID["bbb"]
	if !b.IsWarmup() {
		t.Error("Expected bbb to classify as warmup")
	}
}

func TestListSessionsSkipsMetaAndReminders(t *testing.T) {
	tmpDir := t.TempDir()
	p := NewParser()

	writeSession(t, tmpDir, "ccc.jsonl", `{"type":"user","isMeta":true,"message":{"role":"user","content":"meta preamble"},"timestamp":"2024-02-15T09:59:00Z"}
{"type":"user","message":{"role":"user","content":"<system-reminder>injected</system-reminder>"},"timestamp":"2024-02-15T09:59:30Z"}
{"type":"user","message":{"role":"user","content":"the real question"},"timestamp":"2024-02-15T10:00:00Z"}
`)

	sessions, err := p.ListSessions(tmpDir)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}
	if sessions[0].FirstUserMessage != "the real question" {
		t.Errorf("Expected real question as first user message, got %q", sessions[0].FirstUserMessage)
	}
}

func TestListSessionsToleratesMalformedLines(t *testing.T) {
	tmpDir := t.TempDir()
	p := NewParser()

	writeSession(t, tmpDir, "ddd.jsonl", `not json at all
{"type":"user","message":"a bare string"}
{"type":"user","message":{"role":"user","content":"recovered"},"timestamp":"2024-02-15T10:00:00Z"}
`)

	sessions, err := p.ListSessions(tmpDir)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("Expected 1 session, got %d", len(sessions))
	}
	if sessions[0].FirstUserMessage != "recovered" {
		t.Errorf("Expected parser to recover, got %q", sessions[0].FirstUserMessage)
	}
}

func TestLoadConversation(t *testing.T) {
	tmpDir := t.TempDir()
	p := NewParser()

	path := writeSession(t, tmpDir, "conv.jsonl", `{"type":"summary","summary":"A session"}
{"type":"user","uuid":"u1","message":{"role":"user","content":"plain string message"},"timestamp":"2024-02-15T10:00:00Z"}
{"type":"assistant","uuid":"a1","message":{"role":"assistant","content":[{"type":"thinking","thinking":"let me think"},{"type":"text","text":"here is the answer"},{"type":"tool_use","name":"Read","input":{}}]},"timestamp":"2024-02-15T10:00:05Z"}
{"type":"user","uuid":"u2","message":{"role":"user","content":[{"type":"tool_result","content":"file contents"},{"type":"banana"}]},"timestamp":"2024-02-15T10:00:06Z"}
{"type":"progress","data":{}}
`)

	conv, err := p.LoadConversation(path)
	if err != nil {
		t.Fatalf("LoadConversation failed: %v", err)
	}
	if conv.SessionID != "conv" {
		t.Errorf("Expected session id 'conv', got %q", conv.SessionID)
	}
	if len(conv.Messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(conv.Messages))
	}

	first := conv.Messages[0]
	if first.Role != "user" || first.UUID != "u1" {
		t.Errorf("Unexpected first message: %+v", first)
	}
	if len(first.Blocks) != 1 || first.Blocks[0].Kind != model.BlockText {
		t.Fatalf("Expected one text block, got %+v", first.Blocks)
	}
	if first.Blocks[0].Text != "plain string message" {
		t.Errorf("Unexpected block text: %q", first.Blocks[0].Text)
	}

	second := conv.Messages[1]
	kinds := []model.BlockKind{}
	for _, b := range second.Blocks {
		kinds = append(kinds, b.Kind)
	}
	want := []model.BlockKind{model.BlockThinking, model.BlockText, model.BlockToolUse}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("Expected block kinds %v, got %v", want, kinds)
		}
	}
	if second.Blocks[0].Text != "let me think" {
		t.Errorf("Thinking payload lost: %+v", second.Blocks[0])
	}
	if second.Blocks[2].ToolName != "Read" {
		t.Errorf("Tool name lost: %+v", second.Blocks[2])
	}

	third := conv.Messages[2]
	if third.Blocks[0].Kind != model.BlockToolResult {
		t.Errorf("Expected tool result block, got %+v", third.Blocks[0])
	}
	if third.Blocks[1].Kind != model.BlockOther {
		t.Errorf("Unknown block type should map to BlockOther, got %+v", third.Blocks[1])
	}
}

func TestLoadConversationSkipsEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	p := NewParser()

	path := writeSession(t, tmpDir, "empty.jsonl", `{"type":"user","message":{"role":"user","content":""},"timestamp":"2024-02-15T10:00:00Z"}
{"type":"user","isMeta":true,"message":{"role":"user","content":"meta"},"timestamp":"2024-02-15T10:00:01Z"}
`)

	conv, err := p.LoadConversation(path)
	if err != nil {
		t.Fatalf("LoadConversation failed: %v", err)
	}
	if len(conv.Messages) != 0 {
		t.Errorf("Expected no messages, got %d", len(conv.Messages))
	}
}
