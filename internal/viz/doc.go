// Package viz renders a running session in the terminal.
//
// The scene is drawn on a braille [Canvas] (2x4 dots per cell) scaled from
// the viewport, next to a status panel with the overlay lines and a plot of
// recent ball speed. Mouse press, motion and release drive the same drag
// controller as the window.
//
// # Key Bindings
//
//	Q, Ctrl+C, Esc - Quit
package viz
