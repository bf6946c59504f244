// SPDX-License-Identifier: MIT

// Package view draws mazes on a terminal screen.
//
// Draw renders one frame: the grid with report.Symbols runes, colored by
// cell kind, and the overlay (agent, planned path, walked trail) on top.
// Replay shows a sequence of frames with a fixed delay and stops early on
// Escape, Ctrl-C or 'q'. WaitKey blocks until any key is pressed.
//
// The screen is passed in by the caller, so tests use
// tcell.NewSimulationScreen and programs use tcell.NewScreen.
package view
