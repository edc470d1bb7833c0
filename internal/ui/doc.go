// Package ui holds the console color themes shared by the CLI presenters.
// Themes are plain ANSI sequences; the active one is chosen once at startup
// from the --no-color flag, NO_COLOR, terminal detection and the terminal's
// background.
package ui
