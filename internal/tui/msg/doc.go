// Package msg defines the message types used by the TUI's Bubbletea event loop,
// and the command factories that produce them.
//
// Blocking work (reading a name file, writing an export) runs inside a
// [tea.Cmd] and reports back with a message; the model applies the result in
// Update, which is the only place the name list is mutated.
package msg
