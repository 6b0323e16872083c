// Package anim drives the frame loop: render a frame, present it, advance
// the rotation, pause, then rewind the cursor so the next frame overwrites
// the last.
//
// Frames are strictly sequential on the calling goroutine. The loop has no
// natural end; it stops when its context is cancelled or, if configured,
// after a fixed number of frames.
package anim
