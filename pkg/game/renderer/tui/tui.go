// Package tui is the line based terminal renderer. Each frame is printed
// below a cleared screen and keys are read one at a time in raw mode.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"gloomhold/pkg/engine/input"
	"gloomhold/pkg/engine/terminal"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/renderer"
	"gloomhold/pkg/logger"
)

// Lines needed outside the map viewport:
// status bar (1), messages pane (header + lines + footer), menu and prompt.
const chromeLines = 6

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	size    func() (width, height int)
	readKey func(context.Context) (input.RawInput, error)

	colorSubtle color.Style
	colorTitle  color.Style
	colorDenied color.Style
	colorStatus color.Style
}

// New creates a new TUI renderer writing to stdout.
func New() *TUIRenderer {
	return &TUIRenderer{
		out:     os.Stdout,
		size:    terminal.GetSize,
		readKey: input.ReadKey,
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorSubtle = color.Style{color.FgGray}
	t.colorTitle = color.Style{color.FgYellow, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorStatus = color.Style{color.FgGreen, color.OpBold}
	return nil
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	fmt.Fprint(t.out, clearScreen)
}

// Close is a no-op; raw mode is only held while a key is read.
func (t *TUIRenderer) Close() {}

// GetInput reads one key and resolves it for ic. A cancelled ctx or a
// failed read yields a quit intent.
func (t *TUIRenderer) GetInput(ctx context.Context, ic input.Context) input.Intent {
	raw, err := t.readKey(ctx)
	if errors.Is(err, context.Canceled) {
		return input.Intent{Action: input.ActionQuit}
	}
	if err != nil {
		logger.Component("tui").WithError(err).Error("Reading key failed")
		return input.Intent{Action: input.ActionQuit}
	}
	return input.Resolve(ic, raw)
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(f renderer.Frame) {
	width, height := t.size()
	var b strings.Builder

	b.WriteString(clearScreen)
	t.writeMap(&b, f, width, height-chromeLines-len(f.Log))
	t.writeStatusBar(&b, f)
	t.writeMessagesPane(&b, f, width)
	if f.Menu != nil {
		t.writeMenu(&b, f.Menu)
	}
	b.WriteString("> ")

	fmt.Fprint(t.out, b.String())
}

func (t *TUIRenderer) writeMap(b *strings.Builder, f renderer.Frame, cols, rows int) {
	cells := f.Cells()
	v := terminal.CenterOn(f.Width, f.Height, cols, max(rows, 1), f.Player.X, f.Player.Y)
	for y := v.Y; y < v.Y+v.Height; y++ {
		for x := v.X; x < v.X+v.Width; x++ {
			c := cells[y*f.Width+x]
			b.WriteString(styleFor(c.FG, c.BG).Sprint(string(c.Glyph)))
		}
		b.WriteByte('\n')
	}
}

func (t *TUIRenderer) writeStatusBar(b *strings.Builder, f renderer.Frame) {
	if !f.Status.Alive {
		b.WriteString(t.colorDenied.Sprint(gotext.Get("You are dead. Press q to quit.")))
		b.WriteByte('\n')
		return
	}
	style := t.colorStatus
	if f.Status.HP*3 <= f.Status.MaxHP {
		style = t.colorDenied
	}
	b.WriteString(style.Sprintf("HP: %d / %d", f.Status.HP, f.Status.MaxHP))
	b.WriteString(t.colorSubtle.Sprintf("  Turn %d", f.Turn))
	b.WriteByte('\n')
}

// writeMessagesPane renders the messages log pane
func (t *TUIRenderer) writeMessagesPane(b *strings.Builder, f renderer.Frame, width int) {
	label := " Messages "
	sideLen := max((width-len(label))/2, 1)
	leftDashes := strings.Repeat("─", sideLen)
	rightDashes := strings.Repeat("─", max(width-sideLen-len(label), 1))

	b.WriteString(t.colorSubtle.Sprint(leftDashes + label + rightDashes))
	b.WriteByte('\n')
	if len(f.Log) == 0 {
		b.WriteString(t.colorSubtle.Sprint("  (no messages)"))
		b.WriteByte('\n')
	}
	for _, msg := range f.Log {
		fmt.Fprintf(b, "  %s\n", msg)
	}
	b.WriteString(t.colorSubtle.Sprint(strings.Repeat("─", max(width, 1))))
	b.WriteByte('\n')
}

func (t *TUIRenderer) writeMenu(b *strings.Builder, m *renderer.MenuView) {
	b.WriteString(t.colorTitle.Sprint(m.Title))
	b.WriteByte('\n')
	if len(m.Items) == 0 {
		b.WriteString(t.colorSubtle.Sprint("  (empty)"))
		b.WriteByte('\n')
	}
	for i, label := range m.Items {
		marker := "  "
		if i == m.Selected {
			marker = "> "
		}
		b.WriteString(marker + label + "\n")
	}
	b.WriteString(t.colorSubtle.Sprint(m.Instructions))
	b.WriteByte('\n')
}

var foreground = map[components.Color]color.Color{
	components.ColorBlack:   color.FgBlack,
	components.ColorRed:     color.FgRed,
	components.ColorYellow:  color.FgYellow,
	components.ColorMagenta: color.FgMagenta,
	components.ColorGreen:   color.FgGreen,
	components.ColorCyan:    color.FgCyan,
	components.ColorWhite:   color.FgWhite,
	components.ColorGray:    color.FgGray,
}

var background = map[components.Color]color.Color{
	components.ColorRed:     color.BgRed,
	components.ColorYellow:  color.BgYellow,
	components.ColorMagenta: color.BgMagenta,
	components.ColorGreen:   color.BgGreen,
	components.ColorCyan:    color.BgCyan,
	components.ColorWhite:   color.BgWhite,
}

// styleFor maps component colors to a terminal style. Black backgrounds use
// the terminal default.
func styleFor(fg, bg components.Color) color.Style {
	style := color.Style{}
	if c, ok := foreground[fg]; ok {
		style = append(style, c)
	}
	if c, ok := background[bg]; ok {
		style = append(style, c)
	}
	return style
}
