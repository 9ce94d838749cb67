package clipboard

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// Manager handles clipboard operations
type Manager struct{}

// NewManager creates a new clipboard manager
func NewManager() *Manager {
	return &Manager{}
}

// Copy copies text to the clipboard
func (m *Manager) Copy(text string) error {
	// Try the cross-platform library first
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}

	// Fallback to platform-specific commands
	return m.copyWithCommand(text)
}

// copyWithCommand uses platform-specific commands
func (m *Manager) copyWithCommand(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")

	case "linux":
		if commandExists("xclip") {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else if commandExists("xsel") {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		} else if commandExists("wl-copy") {
			// Wayland
			cmd = exec.Command("wl-copy")
		} else {
			return fmt.Errorf("no clipboard command found (install xclip, xsel, or wl-clipboard)")
		}

	case "windows":
		cmd = exec.Command("clip.exe")

	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clipboard command failed: %w", err)
	}

	return nil
}

func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
