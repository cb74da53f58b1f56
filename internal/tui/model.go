// Package tui provides the terminal user interface for hrkit: a Bubble Tea
// program with three tabs (Names, Draw, Teams) over one shared roster.
package tui

import (
	"context"
	"math/rand"
	"time"

	"github.com/Iron-Ham/hrkit/internal/config"
	"github.com/Iron-Ham/hrkit/internal/draw"
	"github.com/Iron-Ham/hrkit/internal/ingest"
	"github.com/Iron-Ham/hrkit/internal/logging"
	"github.com/Iron-Ham/hrkit/internal/roster"
	"github.com/Iron-Ham/hrkit/internal/teams"
	"github.com/Iron-Ham/hrkit/internal/tui/keymap"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

// Tab identifies one of the three views.
type Tab int

const (
	TabNames Tab = iota
	TabDraw
	TabTeams
)

// tabCount is the number of tabs, used for wrap-around navigation.
const tabCount = 3

func (t Tab) String() string {
	switch t {
	case TabNames:
		return "Names"
	case TabDraw:
		return "Draw"
	case TabTeams:
		return "Teams"
	default:
		return "unknown"
	}
}

// Options configures a new Model.
type Options struct {
	// Names seeds the roster, e.g. from --file.
	Names []string
	// Watching is the path shown as watched in the Names tab.
	Watching string
	// Rand drives draws and team shuffles. Nil seeds from the clock.
	Rand   *rand.Rand
	Logger *logging.Logger
	// Context bounds file reads started from the UI.
	Context context.Context
	// Now returns the export timestamp. Nil means time.Now.
	Now func() time.Time
}

// Model holds the TUI application state
type Model struct {
	// Core components
	cfg    *config.Config
	logger *logging.Logger
	keymap *keymap.Keymap
	roster *roster.Roster
	engine *draw.Engine
	rng    *rand.Rand
	ctx    context.Context
	now    func() time.Time

	// Input widgets
	editor    textarea.Model
	pathInput textinput.Model

	// UI state
	activeTab    Tab
	editing      bool
	prompting    bool
	showHelp     bool
	width        int
	height       int
	quitting     bool
	errorMessage string
	infoMessage  string
	watching     string

	// Draw state
	allowRepeat bool

	// Teams state
	teamSize  int
	partition teams.Partition
	stale     bool
	exported  string
}

// NewModel creates a new TUI model
func NewModel(cfg *config.Config, opts Options) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	policy, err := roster.ParseRemovalPolicy(cfg.Draw.Removal)
	if err != nil {
		logger.Warn("invalid removal policy, using first", "removal", cfg.Draw.Removal)
	}

	editor := textarea.New()
	editor.Placeholder = "Type or paste names, separated by commas or new lines"
	editor.ShowLineNumbers = false
	editor.CharLimit = 0
	editor.MaxHeight = 0
	editor.SetHeight(editorHeight)
	editor.SetValue(ingest.Join(opts.Names))
	editor.Blur()

	pathInput := textinput.New()
	pathInput.Placeholder = "path/to/names.csv"
	pathInput.CharLimit = 4096

	return Model{
		cfg:    cfg,
		logger: logger.WithComponent("tui"),
		keymap: keymap.DefaultKeymap(),
		roster: roster.New(opts.Names, policy),
		engine: draw.New(
			draw.WithTick(cfg.Draw.TickInterval()),
			draw.WithDuration(cfg.Draw.Duration()),
			draw.WithRand(rng),
		),
		rng:         rng,
		ctx:         ctx,
		now:         now,
		editor:      editor,
		pathInput:   pathInput,
		watching:    opts.Watching,
		allowRepeat: cfg.Draw.AllowRepeat,
		teamSize:    max(cfg.Teams.DefaultSize, teams.MinSize),
	}
}

// mode returns the keymap mode for the current focus.
func (m Model) mode() keymap.Mode {
	switch {
	case m.prompting:
		return keymap.ModePath
	case m.activeTab == TabNames && m.editing:
		return keymap.ModeEditor
	case m.activeTab == TabNames:
		return keymap.ModeNames
	case m.activeTab == TabDraw:
		return keymap.ModeDraw
	default:
		return keymap.ModeTeams
	}
}

// ingestOptions builds the file loading limits from config.
func (m Model) ingestOptions() ingest.Options {
	return ingest.Options{
		Accept:  m.cfg.Ingest.Accept,
		MaxSize: m.cfg.Ingest.MaxFileSize(),
	}
}

// Names returns a copy of the current name list.
func (m Model) Names() []string { return m.roster.Names() }

// History returns the draw winners, newest first.
func (m Model) History() []string { return m.roster.History() }

// ActiveTab returns the visible tab.
func (m Model) ActiveTab() Tab { return m.activeTab }

// Teams returns the last generated partition.
func (m Model) Teams() teams.Partition { return m.partition }
