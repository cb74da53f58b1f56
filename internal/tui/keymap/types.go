// Package keymap provides key binding definitions and lookup for the TUI.
// Bindings are declared per mode so the model's Update only has to map a
// Command to an action.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI.
// Different modes have different key bindings active.
type Mode string

const (
	ModeNames  Mode = "names"  // Names tab, list focused
	ModeEditor Mode = "editor" // Names tab, typing in the editor
	ModePath   Mode = "path"   // Typing a file path to load
	ModeDraw   Mode = "draw"   // Draw tab
	ModeTeams  Mode = "teams"  // Teams tab
)

// Command represents a named action that can be triggered by a key binding.
type Command string

// Navigation commands, shared by the tab modes
const (
	CmdNextTab    Command = "next_tab"
	CmdPrevTab    Command = "prev_tab"
	CmdJumpToTab  Command = "jump_to_tab" // 1-3 keys
	CmdToggleHelp Command = "toggle_help"
	CmdQuit       Command = "quit"
)

// Names tab commands
const (
	CmdEditNames        Command = "edit_names"
	CmdLeaveEditor      Command = "leave_editor"
	CmdOpenFile         Command = "open_file"
	CmdRemoveDuplicates Command = "remove_duplicates"
	CmdLoadSample       Command = "load_sample"
	CmdCompleteNames    Command = "complete_names"
)

// Draw tab commands
const (
	CmdStartDraw    Command = "start_draw"
	CmdToggleRepeat Command = "toggle_repeat"
)

// Teams tab commands
const (
	CmdIncreaseSize  Command = "increase_size"
	CmdDecreaseSize  Command = "decrease_size"
	CmdGenerateTeams Command = "generate_teams"
	CmdExportTeams   Command = "export_teams"
)

// Prompt commands
const (
	CmdConfirm Command = "confirm"
	CmdCancel  Command = "cancel"
)

// Modifier represents keyboard modifiers (Alt).
// Ctrl combinations are distinct tea.KeyTypes and need no modifier.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModAlt  Modifier = 1 << iota
)

// String returns a human-readable representation of modifiers.
func (m Modifier) String() string {
	if m&ModAlt != 0 {
		return "alt+"
	}
	return ""
}

// KeyBinding represents a single key binding configuration.
type KeyBinding struct {
	// KeyType is the key for this binding. For printable keys use
	// tea.KeyRunes and set Rune.
	KeyType tea.KeyType

	// Rune is the character for rune-based keys (when KeyType is tea.KeyRunes).
	Rune rune

	// Modifiers contains the modifier keys that must be pressed.
	Modifiers Modifier

	// Command is the action to execute when this binding is triggered.
	Command Command

	// Description is a human-readable description for help display.
	Description string

	// Category groups related bindings together in help display.
	Category string

	// Hidden bindings work but are left out of the help bar.
	Hidden bool
}

// Matches checks if a tea.KeyMsg matches this binding.
func (kb KeyBinding) Matches(msg tea.KeyMsg) bool {
	wantAlt := kb.Modifiers&ModAlt != 0
	if msg.Alt != wantAlt {
		return false
	}

	if kb.KeyType != tea.KeyRunes {
		return msg.Type == kb.KeyType
	}

	if msg.Type != tea.KeyRunes || len(msg.Runes) == 0 {
		return false
	}
	return msg.Runes[0] == kb.Rune
}

// String returns a human-readable representation of the key binding.
func (kb KeyBinding) String() string {
	prefix := kb.Modifiers.String()

	switch kb.KeyType {
	case tea.KeyRunes:
		return prefix + string(kb.Rune)
	case tea.KeySpace:
		return prefix + "space"
	default:
		return prefix + kb.KeyType.String()
	}
}

// ModeBindings holds all key bindings for a specific mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// GetBinding looks up a command for a key in this mode.
// Returns the command and true if found, or empty command and false if not.
func (mb *ModeBindings) GetBinding(msg tea.KeyMsg) (Command, bool) {
	for _, binding := range mb.Bindings {
		if binding.Matches(msg) {
			return binding.Command, true
		}
	}
	return "", false
}

// Keymap contains all key bindings organized by mode.
type Keymap struct {
	Name  string
	Modes map[Mode]*ModeBindings
}

// GetBinding looks up a command for a key in a specific mode.
// Returns the command and true if found, or empty command and false if not.
func (km *Keymap) GetBinding(msg tea.KeyMsg, mode Mode) (Command, bool) {
	mb, ok := km.Modes[mode]
	if !ok {
		return "", false
	}
	return mb.GetBinding(msg)
}

// GetModeBindings returns all bindings for a specific mode.
func (km *Keymap) GetModeBindings(mode Mode) []KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}

// GetCategories returns all unique categories in a mode's bindings, in declaration order.
func (km *Keymap) GetCategories(mode Mode) []string {
	seen := make(map[string]bool)
	var categories []string

	for _, binding := range km.GetModeBindings(mode) {
		if binding.Category != "" && !seen[binding.Category] {
			seen[binding.Category] = true
			categories = append(categories, binding.Category)
		}
	}
	return categories
}

// GetBindingsByCategory returns bindings grouped by category for a mode.
func (km *Keymap) GetBindingsByCategory(mode Mode) map[string][]KeyBinding {
	mb, ok := km.Modes[mode]
	if !ok {
		return nil
	}

	result := make(map[string][]KeyBinding)
	for _, binding := range mb.Bindings {
		cat := binding.Category
		if cat == "" {
			cat = "Other"
		}
		result[cat] = append(result[cat], binding)
	}
	return result
}

// ShortHelp returns one visible binding per command, in declaration order,
// for the one-line help bar.
func (km *Keymap) ShortHelp(mode Mode) []KeyBinding {
	seen := make(map[Command]bool)
	var result []KeyBinding
	for _, binding := range km.GetModeBindings(mode) {
		if binding.Hidden || seen[binding.Command] {
			continue
		}
		seen[binding.Command] = true
		result = append(result, binding)
	}
	return result
}
