package ui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davidpaquet/claude-conversation-browser/internal/clipboard"
	"github.com/davidpaquet/claude-conversation-browser/internal/logging"
	"github.com/davidpaquet/claude-conversation-browser/internal/model"
	"github.com/davidpaquet/claude-conversation-browser/internal/parser"
	"github.com/davidpaquet/claude-conversation-browser/internal/search"
)

var log = logging.ForComponent("ui")

// SearchState represents the current session-search mode
type SearchState int

const (
	SearchStateNormal  SearchState = iota // No search active
	SearchStateInput                      // User is typing in search box
	SearchStateResults                    // User is navigating filtered results
)

// ConvFindState represents the in-conversation find mode
type ConvFindState int

const (
	ConvFindOff    ConvFindState = iota // No find active
	ConvFindInput                       // User is typing the find query
	ConvFindActive                      // User is navigating matches with n/N
)

// Model is the app model
type Model struct {
	// Data
	sessions     []model.Session
	conversation *model.Conversation
	parser       *parser.Parser
	clipboardMgr *clipboard.Manager
	watcher      *parser.Watcher
	claudeDir    string
	version      string

	// UI State
	width        int
	height       int
	selected     int
	scrollOffset int
	loading      bool
	err          error

	// Session search
	sessionSearch    *search.SessionSearch
	contentSearcher  search.ContentSearcher
	contentAvailable bool
	debouncer        *search.Debouncer
	settledCh        chan string
	searchState      SearchState
	searchInput      textinput.Model
	warmupsOpen      bool

	// In-conversation find
	convSearch       *search.ConversationSearch
	convInput        textinput.Model
	convFind         ConvFindState
	convScroll       int
	convScrollTarget *model.MatchCoordinate

	// Status
	statusMsg   string
	statusTimer time.Time
}

// NewApp creates a new app
func NewApp(claudeDir, version string) *Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "Search sessions..."
	searchInput.CharLimit = 100
	searchInput.Width = 30

	convInput := textinput.New()
	convInput.Placeholder = "Find in conversation..."
	convInput.CharLimit = 100
	convInput.Width = 30

	ripgrep := search.NewRipgrepSearcher()

	m := &Model{
		parser:           parser.NewParser(),
		clipboardMgr:     clipboard.NewManager(),
		claudeDir:        claudeDir,
		version:          version,
		loading:          true,
		width:            80,
		height:           24,
		searchInput:      searchInput,
		convInput:        convInput,
		sessionSearch:    search.NewSessionSearch(),
		contentSearcher:  ripgrep,
		contentAvailable: ripgrep.Available(),
		settledCh:        make(chan string, 8),
	}

	m.debouncer = search.NewDebouncer(search.DefaultDebounceInterval, func(query string) {
		m.settledCh <- query
	})

	// The match engine runs inside Update, so the callback can write model
	// state directly; the next render consumes the target.
	m.convSearch = search.NewConversationSearch(func(coord model.MatchCoordinate) {
		c := coord
		m.convScrollTarget = &c
	})

	if watcher, err := parser.NewWatcher(claudeDir); err == nil {
		m.watcher = watcher
	} else {
		log.Warn("session directory watcher unavailable", "error", err)
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadSessions(), m.listenSettled()}
	if m.watcher != nil {
		cmds = append(cmds, m.listenWatcher())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sessionsLoadedMsg:
		return m.onSessionsLoaded(msg)

	case sessionsChangedMsg:
		return m, tea.Batch(m.loadSessions(), m.listenWatcher())

	case conversationLoadedMsg:
		return m.onConversationLoaded(msg)

	case settledQueryMsg:
		return m.onSettledQuery(msg)

	case contentResultsMsg:
		return m.onContentResults(msg)

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		switch m.searchState {
		case SearchStateInput:
			return m.handleSearchInputKey(msg)
		case SearchStateResults:
			return m.handleResultsKey(msg)
		}
		switch m.convFind {
		case ConvFindInput:
			return m.handleConvInputKey(msg)
		}
		return m.handleNormalKey(msg)
	}

	return m, nil
}

// onSessionsLoaded installs a freshly loaded session list.
func (m *Model) onSessionsLoaded(msg sessionsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.sessions = msg.sessions
	m.err = msg.err

	// Sort by most recent
	sort.Slice(m.sessions, func(i, j int) bool {
		return m.sessions[i].LastActive.After(m.sessions[j].LastActive)
	})

	m.sessionSearch.SetSessions(m.sessions)

	display := m.displaySessions()
	if m.selected >= len(display) {
		m.selected = 0
		m.scrollOffset = 0
	}
	if len(display) > 0 {
		return m, m.loadConversation(display[m.selected])
	}
	m.discardConversation()
	return m, nil
}

func (m *Model) onConversationLoaded(msg conversationLoadedMsg) (tea.Model, tea.Cmd) {
	// A load that completes after the user moved on must not display.
	session, ok := m.selectedSession()
	if !ok || session.ID != msg.sessionID {
		return m, nil
	}
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Error: %v", msg.err))
		return m, nil
	}
	m.conversation = msg.conversation
	m.convSearch.SetConversation(msg.conversation)
	return m, nil
}

func (m *Model) onSettledQuery(msg settledQueryMsg) (tea.Model, tea.Cmd) {
	relisten := m.listenSettled()

	wantContent := m.sessionSearch.SettleQuery(msg.query)

	// A settled value older than the live input means another emission is
	// on its way; let that one drive the content search.
	if msg.query != m.sessionSearch.RawQuery() {
		return m, relisten
	}
	if !wantContent || m.searchState == SearchStateNormal {
		return m, relisten
	}
	if !m.contentAvailable {
		return m, relisten
	}

	m.setStatus("Searching content...")
	return m, tea.Batch(relisten, m.runContentSearch(msg.query))
}

func (m *Model) onContentResults(msg contentResultsMsg) (tea.Model, tea.Cmd) {
	matches := msg.matches
	if msg.err != nil {
		// Content search failure degrades to zero matches; the fuzzy
		// path keeps working on its own.
		log.Warn("content search failed", "query", msg.query, "error", msg.err)
		matches = nil
	}

	if !m.sessionSearch.ApplyContentResults(msg.query, matches) {
		return m, nil
	}

	display := m.displaySessions()
	if len(display) == 0 {
		m.setStatus(fmt.Sprintf("No matches found for '%s'", msg.query))
		m.discardConversation()
		return m, nil
	}

	m.setStatus(fmt.Sprintf("Found %d sessions matching '%s'", len(display), msg.query))
	m.selected = 0
	m.scrollOffset = 0
	m.discardConversation()
	return m, m.loadConversation(display[0])
}

func (m *Model) handleSearchInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel search entirely
		m.clearSearch()
		return m, nil
	case "tab", "enter":
		// Exit input mode, enter results mode
		if m.sessionSearch.RawQuery() != "" {
			m.searchState = SearchStateResults
			m.searchInput.Blur()
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		query := m.searchInput.Value()
		if query == m.sessionSearch.RawQuery() {
			return m, cmd
		}

		// Fuzzy results update synchronously on every keystroke; the
		// content path waits for the query to settle.
		m.sessionSearch.SetRawQuery(query)
		m.debouncer.Update(query)
		m.selected = 0
		m.scrollOffset = 0

		display := m.displaySessions()
		if len(display) == 0 {
			m.discardConversation()
			return m, cmd
		}
		m.discardConversation()
		return m, tea.Batch(cmd, m.loadConversation(display[0]))
	}
}

func (m *Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		m.clearSearch()
		return m, nil
	case "/":
		// Return to search input mode
		m.searchState = SearchStateInput
		m.searchInput.Focus()
		return m, textinput.Blink
	case "up", "k":
		return m, m.moveSelection(-1)
	case "down", "j":
		return m, m.moveSelection(1)
	case "enter":
		return m, m.copyResumeCommand()
	case "f":
		return m, m.enterConvFind()
	case "r":
		m.loading = true
		m.clearSearch()
		return m, m.loadSessions()
	}
	return m, nil
}

func (m *Model) handleConvInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearConvFind()
		return m, nil
	case "enter":
		if m.convSearch.Query() != "" {
			m.convFind = ConvFindActive
			m.convInput.Blur()
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.convInput, cmd = m.convInput.Update(msg)
		// Rescan per keystroke; the scan is a full rebuild and cheap at
		// realistic conversation sizes.
		m.convSearch.SetQuery(m.convInput.Value())
		return m, cmd
	}
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.convFind != ConvFindOff {
			m.clearConvFind()
			return m, nil
		}
		return m, tea.Quit

	case "esc":
		if m.convFind != ConvFindOff {
			m.clearConvFind()
		}
		return m, nil

	case "/":
		m.enterSearchMode()
		return m, textinput.Blink

	case "f":
		return m, m.enterConvFind()

	case "n":
		if m.convFind == ConvFindActive {
			m.convSearch.Next()
		}
		return m, nil

	case "N":
		if m.convFind == ConvFindActive {
			m.convSearch.Prev()
		}
		return m, nil

	case "up", "k":
		return m, m.moveSelection(-1)

	case "down", "j":
		return m, m.moveSelection(1)

	case "ctrl+d", "pgdown":
		m.convScroll += m.conversationPageSize()
		return m, nil

	case "ctrl+u", "pgup":
		m.convScroll -= m.conversationPageSize()
		if m.convScroll < 0 {
			m.convScroll = 0
		}
		return m, nil

	case "w":
		if m.sessionSearch.RawQuery() == "" {
			m.warmupsOpen = !m.warmupsOpen
			display := m.displaySessions()
			if m.selected >= len(display) && len(display) > 0 {
				m.selected = len(display) - 1
			}
		}
		return m, nil

	case "enter":
		return m, m.copyResumeCommand()

	case "r":
		m.loading = true
		m.clearSearch()
		return m, m.loadSessions()
	}
	return m, nil
}

func (m *Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			"Loading sessions...")
	}

	if m.err != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err)))
	}

	// Reserve space for status bar and any active input bar
	reservedHeight := 1
	if m.searchState != SearchStateNormal || m.convFind != ConvFindOff {
		reservedHeight += 3
	}
	availableHeight := m.height - reservedHeight

	leftWidth := 40
	if m.width < 80 {
		leftWidth = m.width / 2
	}
	rightWidth := m.width - leftWidth - 1

	leftPane := m.renderSessionList(leftWidth, availableHeight)
	rightPane := m.renderConversationPane(rightWidth, availableHeight)

	main := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)

	components := []string{main}
	if m.searchState != SearchStateNormal {
		components = append(components, m.renderSearchBar())
	} else if m.convFind != ConvFindOff {
		components = append(components, m.renderConvFindBar())
	}
	components = append(components, m.renderStatusBar())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		components...,
	)
}

func (m *Model) renderSessionList(width, height int) string {
	// Account for border, padding, and margins
	innerHeight := height - 5
	innerWidth := width - 4

	lines := []string{}
	title := "Sessions"
	if m.searchState != SearchStateNormal {
		title = fmt.Sprintf("Sessions (%d matches)", len(m.displaySessions()))
	}
	lines = append(lines, titleStyle.Render(title))
	lines = append(lines, "")

	display := m.displaySessions()
	warmups := m.sessionSearch.Warmups()
	showWarmupRow := m.sessionSearch.RawQuery() == "" && len(warmups) > 0

	itemsHeight := innerHeight - 2
	if showWarmupRow {
		itemsHeight--
	}
	if itemsHeight < 1 {
		itemsHeight = 1
	}

	maxScroll := len(display) - itemsHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollOffset > maxScroll {
		m.scrollOffset = maxScroll
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}

	visibleEnd := m.scrollOffset + itemsHeight
	if visibleEnd > len(display) {
		visibleEnd = len(display)
	}

	for i := m.scrollOffset; i < visibleEnd; i++ {
		session := display[i]

		timeStr := getRelativeTime(session.LastActive)

		label := session.Title()
		maxLabel := innerWidth - len(timeStr) - 4
		if maxLabel < 8 {
			maxLabel = 8
		}
		if len(label) > maxLabel {
			label = label[:maxLabel-3] + "..."
		}

		line := fmt.Sprintf("%-*s %s", maxLabel, label, timeStr)
		if len(line) > innerWidth {
			line = line[:innerWidth]
		}

		if i == m.selected {
			line = selectedItemStyle.Render(line)
		} else if session.IsWarmup() {
			line = warmupRowStyle.Render(line)
		} else {
			line = sessionItemStyle.Render(line)
		}

		lines = append(lines, line)
	}

	if showWarmupRow {
		arrow := "▸"
		if m.warmupsOpen {
			arrow = "▾"
		}
		lines = append(lines, warmupRowStyle.Render(
			fmt.Sprintf("%s %d warmup sessions [w]", arrow, len(warmups))))
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}

	content := strings.Join(lines, "\n")
	return sessionListStyle.
		Width(width).
		Height(height).
		Render(content)
}

func (m *Model) renderStatusBar() string {
	var leftText string

	if m.statusMsg != "" && time.Since(m.statusTimer) < 3*time.Second {
		leftText = m.statusMsg
	} else if m.searchState == SearchStateInput {
		leftText = "[Tab/Enter] Navigate results  [Esc] Cancel  Type to search..."
	} else if m.searchState == SearchStateResults {
		leftText = "[↑↓] Navigate  [/] Edit search  [Esc] Clear  [f] Find in conversation  [Enter] Copy"
	} else if m.convFind == ConvFindInput {
		leftText = "[Enter] Navigate matches  [Esc] Cancel  Type to find..."
	} else if m.convFind == ConvFindActive {
		leftText = "[n/N] Next/prev match  [Esc] Clear find  [↑↓] Switch session"
	} else {
		leftText = "[↑↓] Navigate  [Enter] Copy  [/] Search  [f] Find  [r] Refresh  [q] Quit"
	}

	leftStyle := keyHelpStyle.Width(m.width - lipgloss.Width(m.version) - 2)
	rightStyle := keyHelpStyle.Align(lipgloss.Right)

	content := lipgloss.JoinHorizontal(lipgloss.Bottom,
		leftStyle.Render(leftText),
		rightStyle.Render(m.version),
	)

	return statusBarStyle.Width(m.width).Render(content)
}

func (m *Model) renderSearchBar() string {
	var borderColor lipgloss.Color
	var statusText string

	if m.searchState == SearchStateInput {
		borderColor = lipgloss.Color("#9B59B6")
	} else {
		borderColor = lipgloss.Color("#4B5563")
		display := m.displaySessions()
		if m.sessionSearch.RawQuery() != "" && len(display) == 0 {
			statusText = " (no matches)"
		} else if len(display) > 0 {
			statusText = fmt.Sprintf(" (%d matches)", len(display))
		}
	}

	barStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.width - 2)

	var prompt string
	if m.searchState == SearchStateInput {
		prompt = "Search: " + m.searchInput.View()
	} else {
		prompt = "Search: " + m.sessionSearch.RawQuery() + statusText + " [Press / to edit]"
	}

	return barStyle.Render(prompt)
}

func (m *Model) renderConvFindBar() string {
	borderColor := lipgloss.Color("#4B5563")
	if m.convFind == ConvFindInput {
		borderColor = lipgloss.Color("#9B59B6")
	}

	barStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.width - 2)

	var prompt string
	if m.convFind == ConvFindInput {
		prompt = "Find: " + m.convInput.View()
	} else {
		suffix := ""
		if n := len(m.convSearch.Matches()); n > 0 {
			suffix = fmt.Sprintf(" (%d/%d)", m.convSearch.CurrentIndex()+1, n)
		} else {
			suffix = " (no matches)"
		}
		prompt = "Find: " + m.convSearch.Query() + suffix + " [n/N to navigate]"
	}

	return barStyle.Render(prompt)
}

// displaySessions is the navigable session list: the merged search order,
// plus the warmup partition when it is toggled open on an empty query.
func (m *Model) displaySessions() []model.Session {
	display := m.sessionSearch.Merged()
	if m.sessionSearch.RawQuery() == "" && m.warmupsOpen {
		display = append(append([]model.Session{}, display...), m.sessionSearch.Warmups()...)
	}
	return display
}

func (m *Model) selectedSession() (model.Session, bool) {
	display := m.displaySessions()
	if m.selected < 0 || m.selected >= len(display) {
		return model.Session{}, false
	}
	return display[m.selected], true
}

func (m *Model) moveSelection(delta int) tea.Cmd {
	display := m.displaySessions()
	next := m.selected + delta
	if next < 0 || next >= len(display) {
		return nil
	}
	m.selected = next
	m.ensureVisible()
	m.discardConversation()
	return m.loadConversation(display[next])
}

// discardConversation invalidates all conversation state immediately. Runs
// on every session switch, even while the next load is still pending.
func (m *Model) discardConversation() {
	m.conversation = nil
	m.convSearch.SetConversation(nil)
	m.clearConvFind()
	m.convScroll = 0
	m.convScrollTarget = nil
}

func (m *Model) copyResumeCommand() tea.Cmd {
	session, ok := m.selectedSession()
	if !ok {
		return nil
	}
	if err := m.clipboardMgr.Copy(session.GetResumeCommand()); err != nil {
		m.setStatus(fmt.Sprintf("Copy failed: %v", err))
	} else {
		m.setStatus("Copied to clipboard!")
	}
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) ensureVisible() {
	innerHeight := m.height - 1 - 5
	itemsHeight := innerHeight - 2
	if itemsHeight < 1 {
		itemsHeight = 1
	}

	if m.selected < m.scrollOffset {
		m.scrollOffset = m.selected
	} else if m.selected >= m.scrollOffset+itemsHeight {
		m.scrollOffset = m.selected - itemsHeight + 1
	}

	maxScroll := len(m.displaySessions()) - itemsHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if m.scrollOffset > maxScroll {
		m.scrollOffset = maxScroll
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

func (m *Model) conversationPageSize() int {
	size := (m.height - 6) / 2
	if size < 1 {
		size = 1
	}
	return size
}

// Search helper methods
func (m *Model) enterSearchMode() {
	if !m.contentAvailable {
		m.setStatus("Warning: ripgrep (rg) not found; title search only.")
	}
	m.searchState = SearchStateInput
	m.searchInput.Focus()
	m.searchInput.SetValue(m.sessionSearch.RawQuery()) // Keep existing query if any
}

func (m *Model) clearSearch() {
	m.searchState = SearchStateNormal
	m.searchInput.Blur()
	m.searchInput.SetValue("")
	m.sessionSearch.SetRawQuery("")
	m.sessionSearch.SettleQuery("")
	m.selected = 0
	m.scrollOffset = 0
}

func (m *Model) enterConvFind() tea.Cmd {
	if m.conversation == nil {
		return nil
	}
	m.searchState = SearchStateNormal
	m.searchInput.Blur()
	m.convFind = ConvFindInput
	m.convInput.Focus()
	m.convInput.SetValue(m.convSearch.Query())
	return textinput.Blink
}

func (m *Model) clearConvFind() {
	m.convFind = ConvFindOff
	m.convInput.Blur()
	m.convInput.SetValue("")
	m.convSearch.SetQuery("")
	m.convScrollTarget = nil
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTimer = time.Now()
}

// Commands

func (m *Model) loadSessions() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.parser.ListSessions(m.claudeDir)
		return sessionsLoadedMsg{sessions: sessions, err: err}
	}
}

func (m *Model) loadConversation(session model.Session) tea.Cmd {
	return func() tea.Msg {
		conversation, err := m.parser.LoadConversation(session.FilePath)
		return conversationLoadedMsg{sessionID: session.ID, conversation: conversation, err: err}
	}
}

func (m *Model) listenSettled() tea.Cmd {
	return func() tea.Msg {
		return settledQueryMsg{query: <-m.settledCh}
	}
}

func (m *Model) listenWatcher() tea.Cmd {
	return func() tea.Msg {
		<-m.watcher.Events
		return sessionsChangedMsg{}
	}
}

func (m *Model) runContentSearch(query string) tea.Cmd {
	sessions := m.sessions
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		matches, err := m.contentSearcher.SearchContent(ctx, query, sessions)
		return contentResultsMsg{query: query, matches: matches, err: err}
	}
}

// Messages
type sessionsLoadedMsg struct {
	sessions []model.Session
	err      error
}

type sessionsChangedMsg struct{}

type conversationLoadedMsg struct {
	sessionID    string
	conversation *model.Conversation
	err          error
}

type settledQueryMsg struct {
	query string
}

type contentResultsMsg struct {
	query   string
	matches []search.ContentMatch
	err     error
}

type clearStatusMsg struct{}

// Helper functions
func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{}
	}

	lines := []string{}
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if len(currentLine+" "+word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

func getRelativeTime(t time.Time) string {
	diff := time.Since(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		minutes := int(diff.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	} else if diff < 30*24*time.Hour {
		weeks := int(diff.Hours() / (24 * 7))
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	} else if diff < 365*24*time.Hour {
		months := int(diff.Hours() / (24 * 30))
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	}
	years := int(diff.Hours() / (24 * 365))
	if years == 1 {
		return "1 year ago"
	}
	return fmt.Sprintf("%d years ago", years)
}
