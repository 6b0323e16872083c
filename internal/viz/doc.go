// Package viz provides the interactive terminal viewer for the rotating
// sphere, built on the Bubble Tea framework.
//
// # Key Bindings
//
//	Space - Pause/Resume rotation
//	R     - Reset rotation to zero
//	T     - Cycle color themes
//	+/-   - Speed up or slow down
//	?     - Show help overlay
//	Q     - Quit
package viz
