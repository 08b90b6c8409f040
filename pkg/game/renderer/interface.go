package renderer

import (
	"context"

	"gloomhold/pkg/engine/input"
)

// Renderer defines the interface for game rendering backends.
// Implementations include the line TUI, the full-screen tcell view and the
// websocket stream.
type Renderer interface {
	// Init acquires the output (terminal, screen or listener).
	Init() error

	// Clear clears the display
	Clear()

	// RenderFrame draws a complete game frame: map, entities, status bar,
	// message log and any open menu.
	RenderFrame(f Frame)

	// GetInput blocks for the next key and resolves it with the bindings
	// for ic. A closed input source or a cancelled ctx yields a quit intent.
	GetInput(ctx context.Context, ic input.Context) input.Intent

	// Close releases whatever Init acquired.
	Close()
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(f Frame) {
	if Current != nil {
		Current.RenderFrame(f)
	}
}

// GetInput gets user input from the current renderer
func GetInput(ctx context.Context, ic input.Context) input.Intent {
	if Current != nil {
		return Current.GetInput(ctx, ic)
	}
	return input.Intent{Action: input.ActionQuit}
}

// Close shuts the current renderer down
func Close() {
	if Current != nil {
		Current.Close()
	}
}
