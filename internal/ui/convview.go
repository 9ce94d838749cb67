package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davidpaquet/claude-conversation-browser/internal/model"
)

// convRender is the rendered conversation: the full line list plus the
// starting line of every content block, for scroll targeting.
type convRender struct {
	lines      []string
	blockLines map[model.MatchCoordinate]int
}

// buildConversation renders all messages of the loaded conversation into
// lines of at most width characters.
func (m *Model) buildConversation(width int) convRender {
	r := convRender{blockLines: make(map[model.MatchCoordinate]int)}
	if m.conversation == nil {
		return r
	}

	query := m.convSearch.Query()

	for mi, msg := range m.conversation.Messages {
		roleStyle := assistantRoleStyle
		if msg.Role == "user" {
			roleStyle = userRoleStyle
		}
		header := roleStyle.Render(msg.Role)
		if !msg.Timestamp.IsZero() {
			header += mutedTextStyle.Render("  " + getRelativeTime(msg.Timestamp))
		}
		r.lines = append(r.lines, header)

		for bi, block := range msg.Blocks {
			coord := model.MatchCoordinate{Message: mi, Block: bi}
			r.blockLines[coord] = len(r.lines)

			switch block.Kind {
			case model.BlockText:
				r.lines = append(r.lines, m.renderTextBlock(block.Text, query, mi, bi, width, nil)...)
			case model.BlockThinking:
				r.lines = append(r.lines, m.renderTextBlock(block.Text, query, mi, bi, width, &thinkingStyle)...)
			case model.BlockToolUse:
				r.lines = append(r.lines, toolStyle.Render("[tool] "+block.ToolName))
			case model.BlockToolResult:
				r.lines = append(r.lines, toolStyle.Render("[tool result]"))
			case model.BlockOther:
				// Not renderable, not searchable.
			}
		}

		r.lines = append(r.lines, "")
	}

	return r
}

// renderTextBlock wraps one text or thinking block and applies match
// highlighting: the block holding the active match gets the loud style,
// any other matching block the weak one.
func (m *Model) renderTextBlock(text, query string, mi, bi, width int, base *lipgloss.Style) []string {
	var highlight *lipgloss.Style
	if query != "" && m.convSearch.HasMatch(mi, bi) {
		if m.convSearch.IsActive(mi, bi) {
			highlight = &activeMatchStyle
		} else {
			highlight = &matchStyle
		}
	}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		wrapped := wrapText(para, width)
		if len(wrapped) == 0 {
			out = append(out, "")
			continue
		}
		for _, line := range wrapped {
			if highlight != nil {
				line = highlightOccurrences(line, query, *highlight, base)
			} else if base != nil {
				line = base.Render(line)
			}
			out = append(out, line)
		}
	}
	return out
}

// highlightOccurrences styles every case-insensitive occurrence of query
// within line. Occurrences split across wrap boundaries are left unstyled.
func highlightOccurrences(line, query string, highlight lipgloss.Style, base *lipgloss.Style) string {
	lower := strings.ToLower(line)
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" || len(lower) != len(line) {
		if base != nil {
			return base.Render(line)
		}
		return line
	}

	render := func(s string) string {
		if base != nil {
			return base.Render(s)
		}
		return s
	}

	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lower[start:], needle)
		if idx == -1 {
			break
		}
		abs := start + idx
		if abs > start {
			b.WriteString(render(line[start:abs]))
		}
		b.WriteString(highlight.Render(line[abs : abs+len(needle)]))
		start = abs + len(needle)
	}
	if b.Len() == 0 {
		return render(line)
	}
	b.WriteString(render(line[start:]))
	return b.String()
}

// renderConversationPane renders the right pane: conversation header,
// optional content-match excerpt, and the scrolled message window.
func (m *Model) renderConversationPane(width, height int) string {
	innerHeight := height - 5
	innerWidth := width - 4

	if innerHeight < 1 || innerWidth < 1 {
		return detailsStyle.Width(width).Height(height).Render("")
	}

	lines := []string{}

	session, ok := m.selectedSession()
	if !ok {
		lines = append(lines, "Select a session...")
		return m.padPane(lines, width, height, innerHeight)
	}

	title := session.Title()
	if len(title) > innerWidth {
		title = title[:innerWidth-3] + "..."
	}
	lines = append(lines, titleStyle.Render(title))
	lines = append(lines, mutedTextStyle.Render(fmt.Sprintf("%d messages  $%.4f  %s/%s tokens",
		session.MessageCount, session.TotalCostUSD,
		formatTokens(session.InputTokens), formatTokens(session.OutputTokens))))

	if cm, ok := m.sessionSearch.MatchContext(session.ID); ok && m.sessionSearch.RawQuery() != "" {
		excerpt := cm.Context
		if len(excerpt) > innerWidth-10 {
			excerpt = excerpt[:innerWidth-13] + "..."
		}
		lines = append(lines, infoStyle.Render("match: ")+mutedTextStyle.Render(excerpt))
	}

	if m.convFind != ConvFindOff {
		var matchInfo string
		switch {
		case m.convSearch.Query() == "":
			matchInfo = ""
		case len(m.convSearch.Matches()) == 0:
			matchInfo = "no matches"
		default:
			matchInfo = fmt.Sprintf("match %d/%d", m.convSearch.CurrentIndex()+1, len(m.convSearch.Matches()))
		}
		if matchInfo != "" {
			lines = append(lines, infoStyle.Render(matchInfo))
		}
	}

	lines = append(lines, "")
	headerLines := len(lines)

	if m.conversation == nil {
		lines = append(lines, mutedTextStyle.Render("Loading conversation..."))
		return m.padPane(lines, width, height, innerHeight)
	}

	bodyHeight := innerHeight - headerLines
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	r := m.buildConversation(innerWidth)

	// Apply any pending scroll signal from the match engine.
	if m.convScrollTarget != nil {
		if line, ok := r.blockLines[*m.convScrollTarget]; ok {
			m.convScroll = line - bodyHeight/3
		}
		m.convScrollTarget = nil
	}

	maxScroll := len(r.lines) - bodyHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.convScroll > maxScroll {
		m.convScroll = maxScroll
	}
	if m.convScroll < 0 {
		m.convScroll = 0
	}

	end := m.convScroll + bodyHeight
	if end > len(r.lines) {
		end = len(r.lines)
	}
	lines = append(lines, r.lines[m.convScroll:end]...)

	return m.padPane(lines, width, height, innerHeight)
}

func (m *Model) padPane(lines []string, width, height, innerHeight int) string {
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	return detailsStyle.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

func formatTokens(n int) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.1fM", float64(n)/1000000)
	}
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return fmt.Sprintf("%d", n)
}
