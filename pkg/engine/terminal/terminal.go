// Package terminal reports the terminal size and fits the map into it.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// Viewport is the window of map tiles that fits on screen.
type Viewport struct {
	X, Y          int
	Width, Height int
}

// CenterOn returns a viewport of at most cols x rows tiles over a
// mapW x mapH map, centered on (cx, cy) and clamped to the map edges.
func CenterOn(mapW, mapH, cols, rows, cx, cy int) Viewport {
	v := Viewport{Width: min(cols, mapW), Height: min(rows, mapH)}
	v.X = clamp(cx-v.Width/2, 0, mapW-v.Width)
	v.Y = clamp(cy-v.Height/2, 0, mapH-v.Height)
	return v
}

// Contains reports whether map tile (x, y) is inside the viewport.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Width && y >= v.Y && y < v.Y+v.Height
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
