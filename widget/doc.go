// Package widget provides a Bubble Tea code input component backed by the
// field package.
//
// The package is responsible for key handling, clipboard paste, focus, cell
// rendering and host hooks. Cell state and cursor rules live in field.
package widget
