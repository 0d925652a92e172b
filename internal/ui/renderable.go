// Package ui holds the interfaces shared by terminal rendering code.
package ui

// Renderable is anything that can draw itself as a block of terminal text.
type Renderable interface {
	View() string
}
