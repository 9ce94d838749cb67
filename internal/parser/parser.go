package parser

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/davidpaquet/claude-conversation-browser/internal/logging"
	"github.com/davidpaquet/claude-conversation-browser/internal/model"
)

var log = logging.ForComponent("parser")

// Parser reads Claude Code project JSONL files.
type Parser struct{}

// NewParser creates a new parser
func NewParser() *Parser {
	return &Parser{}
}

// rawLine is one line of a session JSONL file.
type rawLine struct {
	Type      string          `json:"type"`
	Summary   string          `json:"summary"`
	Timestamp string          `json:"timestamp"`
	UUID      string          `json:"uuid"`
	IsMeta    bool            `json:"isMeta"`
	CostUSD   float64         `json:"costUSD"`
	Message   json.RawMessage `json:"message"`
}

type rawMessage struct {
	Role    string          `json:"role"`
	Content json.RawMessage `json:"content"`
	Usage   *rawUsage       `json:"usage"`
}

type rawUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

type rawBlock struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Thinking string `json:"thinking"`
	Name     string `json:"name"`
}

// ListSessions parses every .jsonl file in dir into a session metadata
// record. Files that cannot be read or parsed are skipped.
func (p *Parser) ListSessions(dir string) ([]model.Session, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sessions []model.Session
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".jsonl") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		session, err := p.parseSessionMeta(path)
		if err != nil {
			log.Warn("skipping unreadable session", "path", path, "error", err)
			continue
		}

		if info, err := entry.Info(); err == nil && session.LastActive.IsZero() {
			session.LastActive = info.ModTime()
		}

		sessions = append(sessions, session)
	}

	return sessions, nil
}

// parseSessionMeta scans one JSONL file for the metadata the session list
// needs: summary, first user message, timestamps, and aggregate counters.
func (p *Parser) parseSessionMeta(path string) (model.Session, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.Session{}, err
	}
	defer file.Close()

	session := model.Session{
		ID:       model.GetSessionID(path),
		FilePath: path,
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var raw rawLine
		if err := json.Unmarshal(line, &raw); err != nil {
			continue
		}

		switch raw.Type {
		case "summary":
			if raw.Summary != "" {
				session.Summary = raw.Summary
			}
			continue
		case "user", "assistant":
			session.MessageCount++
		default:
			continue
		}

		session.TotalCostUSD += raw.CostUSD

		ts, hasTS := parseTimestamp(raw.Timestamp)
		if hasTS && ts.After(session.LastActive) {
			session.LastActive = ts
		}

		var msg rawMessage
		if err := json.Unmarshal(raw.Message, &msg); err != nil {
			continue
		}

		if msg.Usage != nil {
			session.InputTokens += msg.Usage.InputTokens
			session.OutputTokens += msg.Usage.OutputTokens
		}

		if raw.Type == "user" && !raw.IsMeta && session.FirstUserMessage == "" {
			text := strings.TrimSpace(plainText(msg.Content))
			if text != "" && !strings.Contains(text, "system-reminder") {
				session.FirstUserMessage = text
				if hasTS {
					session.FirstMessageAt = ts
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return model.Session{}, err
	}

	return session, nil
}

// LoadConversation parses the full message history of one session file.
func (p *Parser) LoadConversation(path string) (*model.Conversation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	conv := &model.Conversation{
		SessionID: model.GetSessionID(path),
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var raw rawLine
		if err := json.Unmarshal(line, &raw); err != nil {
			continue
		}
		if raw.Type != "user" && raw.Type != "assistant" {
			continue
		}
		if raw.IsMeta {
			continue
		}

		var msg rawMessage
		if err := json.Unmarshal(raw.Message, &msg); err != nil {
			continue
		}

		role := msg.Role
		if role == "" {
			role = raw.Type
		}

		message := model.Message{
			UUID:   raw.UUID,
			Role:   role,
			Blocks: decodeBlocks(msg.Content),
		}
		if ts, ok := parseTimestamp(raw.Timestamp); ok {
			message.Timestamp = ts
		}

		if len(message.Blocks) == 0 {
			continue
		}

		conv.Messages = append(conv.Messages, message)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return conv, nil
}

// decodeBlocks maps a message content payload to content blocks. The wire
// format is either a plain string or an array of typed block objects.
func decodeBlocks(content json.RawMessage) []model.ContentBlock {
	if len(content) == 0 {
		return nil
	}

	var text string
	if err := json.Unmarshal(content, &text); err == nil {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []model.ContentBlock{{Kind: model.BlockText, Text: text}}
	}

	var rawBlocks []rawBlock
	if err := json.Unmarshal(content, &rawBlocks); err != nil {
		return nil
	}

	blocks := make([]model.ContentBlock, 0, len(rawBlocks))
	for _, rb := range rawBlocks {
		switch rb.Type {
		case "text":
			blocks = append(blocks, model.ContentBlock{Kind: model.BlockText, Text: rb.Text})
		case "thinking":
			blocks = append(blocks, model.ContentBlock{Kind: model.BlockThinking, Text: rb.Thinking})
		case "tool_use":
			blocks = append(blocks, model.ContentBlock{Kind: model.BlockToolUse, ToolName: rb.Name})
		case "tool_result":
			blocks = append(blocks, model.ContentBlock{Kind: model.BlockToolResult})
		default:
			blocks = append(blocks, model.ContentBlock{Kind: model.BlockOther})
		}
	}

	return blocks
}

// plainText flattens a content payload to plain text for metadata purposes.
func plainText(content json.RawMessage) string {
	blocks := decodeBlocks(content)
	var parts []string
	for _, b := range blocks {
		if text, ok := b.SearchableText(); ok && b.Kind == model.BlockText {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
