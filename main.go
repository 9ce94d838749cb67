package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davidpaquet/claude-conversation-browser/internal/logging"
	"github.com/davidpaquet/claude-conversation-browser/internal/ui"
)

const version = "v0.1.0"

func main() {
	// Parse command line flags
	var claudeDir string
	flag.StringVar(&claudeDir, "claude-dir", "", "Claude projects directory (default: ~/.claude/projects)")
	flag.StringVar(&claudeDir, "d", "", "Claude projects directory (shorthand)")

	var logDir string
	flag.StringVar(&logDir, "log-dir", "", "Directory for log files (default: logging disabled)")

	var debug bool
	flag.BoolVar(&debug, "debug", false, "Log at debug level")

	var help bool
	flag.BoolVar(&help, "help", false, "Show help")
	flag.BoolVar(&help, "h", false, "Show help (shorthand)")

	flag.Parse()

	if help {
		showHelp()
		os.Exit(0)
	}

	level := "info"
	if debug {
		level = "debug"
	}
	logging.Init(logging.Config{LogDir: logDir, Level: level})

	// Set Claude directory
	if claudeDir == "" {
		claudeDir = os.Getenv("CLAUDE_DIR")
	}
	if claudeDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("Failed to get home directory:", err)
		}
		claudeDir = filepath.Join(home, ".claude", "projects")
	}

	// Prefer the project matching the current working directory
	cwd, _ := os.Getwd()
	projectPath := filepath.Join(claudeDir, convertToClaudePath(cwd))
	if _, err := os.Stat(projectPath); err == nil && hasJSONLFiles(projectPath) {
		claudeDir = projectPath
	} else {
		// No match for current directory, use first project with sessions
		entries, err := os.ReadDir(claudeDir)
		if err == nil {
			for _, entry := range entries {
				if entry.IsDir() {
					testPath := filepath.Join(claudeDir, entry.Name())
					if hasJSONLFiles(testPath) {
						claudeDir = testPath
						break
					}
				}
			}
		}
	}

	app := ui.NewApp(claudeDir, version)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		log.Fatal("Error running program:", err)
	}
}

func convertToClaudePath(path string) string {
	// Convert filesystem path to Claude format
	// e.g., "/home/dev/projects/api" -> "-home-dev-projects-api"
	claudePath := strings.ReplaceAll(path, string(filepath.Separator), "-")
	if !strings.HasPrefix(claudePath, "-") {
		claudePath = "-" + claudePath
	}
	return claudePath
}

func hasJSONLFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}

	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".jsonl" {
			return true
		}
	}
	return false
}

func showHelp() {
	fmt.Println(`Claude Conversation Browser

A terminal user interface for browsing, searching, and resuming Claude Code
sessions, with full-text search inside a conversation.

Usage:
  claude-conversation-browser [options]

Options:
  -d, --claude-dir PATH    Claude projects directory (default: ~/.claude/projects)
  --log-dir PATH           Write rotating logs to PATH (default: disabled)
  --debug                  Log at debug level
  -h, --help               Show this help message

Environment Variables:
  CLAUDE_DIR              Alternative way to set Claude projects directory

Keyboard Shortcuts:
  ↑/↓, j/k               Navigate sessions
  /                      Search sessions (title + content)
  f                      Find text in the open conversation
  n/N                    Next/previous match in conversation
  w                      Toggle warmup sessions
  Enter                  Copy resume command to clipboard
  r                      Refresh session list
  q                      Quit`)
}
