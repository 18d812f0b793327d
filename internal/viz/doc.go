// Package viz draws rendered frames in the terminal.
//
// [Canvas] is a braille dot matrix (2x4 dots per cell) that can fill and
// outline polygons and tint each cell. [Paint] puts a render.Frame on it.
// [Model] is the Bubble Tea viewer built on top.
//
// # Key Bindings
//
//	Drag  - Rotate the shape (manual mode)
//	Space - Toggle auto-rotation
//	Tab   - Next shape
//	T     - Cycle color themes
//	G     - Toggle background grid
//	+/-   - Grow or shrink the canvas
//	R     - Toggle GIF recording
//	?     - Show help overlay
package viz
