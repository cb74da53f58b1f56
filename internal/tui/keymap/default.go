package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the key bindings used by the TUI.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name: "default",
		Modes: map[Mode]*ModeBindings{
			ModeNames:  defaultNamesBindings(),
			ModeEditor: defaultEditorBindings(),
			ModePath:   defaultPathBindings(),
			ModeDraw:   defaultDrawBindings(),
			ModeTeams:  defaultTeamsBindings(),
		},
	}
}

// navigationBindings are active on every tab while no text field has focus.
func navigationBindings() []KeyBinding {
	return []KeyBinding{
		{KeyType: tea.KeyTab, Command: CmdNextTab, Description: "Next tab", Category: "Navigation"},
		{KeyType: tea.KeyShiftTab, Command: CmdPrevTab, Description: "Previous tab", Category: "Navigation", Hidden: true},
		{KeyType: tea.KeyRunes, Rune: '1', Command: CmdJumpToTab, Description: "Names tab", Category: "Navigation", Hidden: true},
		{KeyType: tea.KeyRunes, Rune: '2', Command: CmdJumpToTab, Description: "Draw tab", Category: "Navigation", Hidden: true},
		{KeyType: tea.KeyRunes, Rune: '3', Command: CmdJumpToTab, Description: "Teams tab", Category: "Navigation", Hidden: true},
		{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Help", Category: "Application"},
		{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Application"},
		{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application", Hidden: true},
	}
}

func defaultNamesBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNames,
		Bindings: append([]KeyBinding{
			{KeyType: tea.KeyRunes, Rune: 'i', Command: CmdEditNames, Description: "Edit names", Category: "Names"},
			{KeyType: tea.KeyEnter, Command: CmdEditNames, Description: "Edit names", Category: "Names", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'o', Command: CmdOpenFile, Description: "Open file", Category: "Names"},
			{KeyType: tea.KeyCtrlO, Command: CmdOpenFile, Description: "Open file", Category: "Names", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'd', Command: CmdRemoveDuplicates, Description: "Remove duplicates", Category: "Names"},
			{KeyType: tea.KeyCtrlD, Command: CmdRemoveDuplicates, Description: "Remove duplicates", Category: "Names", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 's', Command: CmdLoadSample, Description: "Load sample", Category: "Names"},
			{KeyType: tea.KeyRunes, Rune: 'c', Command: CmdCompleteNames, Description: "Done, go to draw", Category: "Names"},
		}, navigationBindings()...),
	}
}

// defaultEditorBindings leave every printable key to the text area.
func defaultEditorBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeEditor,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdLeaveEditor, Description: "Stop editing", Category: "Editor"},
			{KeyType: tea.KeyCtrlO, Command: CmdOpenFile, Description: "Open file", Category: "Editor"},
			{KeyType: tea.KeyCtrlD, Command: CmdRemoveDuplicates, Description: "Remove duplicates", Category: "Editor"},
			{KeyType: tea.KeyTab, Command: CmdNextTab, Description: "Next tab", Category: "Navigation"},
			{KeyType: tea.KeyShiftTab, Command: CmdPrevTab, Description: "Previous tab", Category: "Navigation", Hidden: true},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application"},
		},
	}
}

func defaultPathBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModePath,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEnter, Command: CmdConfirm, Description: "Load file", Category: "Prompt"},
			{KeyType: tea.KeyEsc, Command: CmdCancel, Description: "Cancel", Category: "Prompt"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Application", Hidden: true},
		},
	}
}

func defaultDrawBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeDraw,
		Bindings: append([]KeyBinding{
			{KeyType: tea.KeySpace, Command: CmdStartDraw, Description: "Start draw", Category: "Draw"},
			{KeyType: tea.KeyEnter, Command: CmdStartDraw, Description: "Start draw", Category: "Draw", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'r', Command: CmdToggleRepeat, Description: "Toggle repeat winners", Category: "Draw"},
		}, navigationBindings()...),
	}
}

func defaultTeamsBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeTeams,
		Bindings: append([]KeyBinding{
			{KeyType: tea.KeyRunes, Rune: '+', Command: CmdIncreaseSize, Description: "Bigger teams", Category: "Teams"},
			{KeyType: tea.KeyRunes, Rune: '=', Command: CmdIncreaseSize, Description: "Bigger teams", Category: "Teams", Hidden: true},
			{KeyType: tea.KeyUp, Command: CmdIncreaseSize, Description: "Bigger teams", Category: "Teams", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: '-', Command: CmdDecreaseSize, Description: "Smaller teams", Category: "Teams"},
			{KeyType: tea.KeyDown, Command: CmdDecreaseSize, Description: "Smaller teams", Category: "Teams", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'g', Command: CmdGenerateTeams, Description: "Generate", Category: "Teams"},
			{KeyType: tea.KeyEnter, Command: CmdGenerateTeams, Description: "Generate", Category: "Teams", Hidden: true},
			{KeyType: tea.KeyRunes, Rune: 'e', Command: CmdExportTeams, Description: "Export CSV", Category: "Teams"},
		}, navigationBindings()...),
	}
}
