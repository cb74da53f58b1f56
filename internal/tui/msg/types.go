package msg

// DrawTickMsg advances the draw identified by Cycle. Ticks whose cycle no
// longer matches the engine's are dropped.
type DrawTickMsg struct {
	Cycle uint64
}

// FileLoadedMsg carries a name file that was read successfully.
type FileLoadedMsg struct {
	Path  string
	Text  string
	Names []string
	// Watched is set when the reload came from the file watcher rather than
	// the open-file prompt.
	Watched bool
}

// ExportDoneMsg reports the path of a written team CSV.
type ExportDoneMsg struct {
	Path string
}

// ErrMsg wraps an error to be displayed in the UI.
type ErrMsg struct {
	Err error
}
