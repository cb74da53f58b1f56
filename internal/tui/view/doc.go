// Package view provides the rendering components for the hrkit TUI.
//
// Every renderer is a pure function of a small state struct, so the model's
// View only gathers state and joins the pieces. Nothing here mutates the
// roster or reads the clock, which keeps the views testable with plain
// string assertions.
//
// # Components
//
//   - [RenderTabs]: the navigation bar across the top
//   - [RenderNames]: the editor, the parsed list with duplicate markers and the count
//   - [RenderDraw]: the slot display, repeat toggle, pool size and numbered history
//   - [RenderTeams]: the size control, team cards and export status
//   - [RenderHelp], [RenderFullHelp]: the one-line and full key help
//   - [RenderStatus]: the error or info line under the content
package view
