package renderer

import (
	"fmt"

	"reactorbay/pkg/engine/input"
	"reactorbay/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleDevice
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleWarning
	StyleExamine
	StyleSubtle
	StylePowered
	StyleDamaged
)

// Renderer defines the interface for bay rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete bay frame
	// This includes the device panels, hand and belt, messages, and input prompt
	RenderFrame(b *state.Bay)

	// GetInput reads the next command
	GetInput() (input.Intent, error)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete bay frame
func RenderFrame(b *state.Bay) {
	if Current != nil {
		Current.RenderFrame(b)
	}
}

// GetInput gets the next command from the current renderer
func GetInput() (input.Intent, error) {
	if Current != nil {
		return Current.GetInput()
	}
	return input.Intent{Action: input.ActionQuit}, nil
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return fmt.Sprintf(msg, args...)
}

// ShowMessage displays a message outside the frame
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
