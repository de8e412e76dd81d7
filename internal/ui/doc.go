// Package ui is the Bubble Tea front end of menuview.
//
// Building blocks:
//   - View: a screen or modal with its own Init/Update/View (Elm-style)
//   - MenuView: the paginated menu list; owns a MenuState value and the modals
//   - MenuState: immutable view state changed only by transition methods
//   - OverlayStack: modals over the list; the top one receives keys first
//   - Router / ViewStack: path-based navigation to the item detail view
//   - KeybindRegistry / KeyHandler: single keys plus SPC-leader sequences
package ui
