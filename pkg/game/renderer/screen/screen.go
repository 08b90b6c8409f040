// Package screen is the full-screen terminal renderer built on tcell.
package screen

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"gloomhold/pkg/engine/input"
	"gloomhold/pkg/engine/terminal"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/renderer"
)

// Renderer draws frames onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
}

// New wraps s. A nil s opens the real terminal on Init.
func New(s tcell.Screen) *Renderer {
	return &Renderer{screen: s}
}

func (r *Renderer) Init() error {
	if r.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("open screen: %w", err)
		}
		r.screen = s
	}
	if err := r.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	r.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	r.screen.Clear()
	return nil
}

func (r *Renderer) Clear() {
	r.screen.Clear()
}

func (r *Renderer) Close() {
	r.screen.Fini()
}

// RenderFrame draws the map at the top, the status line and log below it and
// any open menu as a box over the map.
func (r *Renderer) RenderFrame(f renderer.Frame) {
	s := r.screen
	s.Clear()
	width, height := s.Size()

	mapRows := max(height-len(f.Log)-1, 1)
	v := terminal.CenterOn(f.Width, f.Height, width, mapRows, f.Player.X, f.Player.Y)
	cells := f.Cells()
	for y := 0; y < v.Height; y++ {
		for x := 0; x < v.Width; x++ {
			c := cells[(v.Y+y)*f.Width+v.X+x]
			s.SetContent(x, y, c.Glyph, nil, styleFor(c.FG, c.BG))
		}
	}

	row := v.Height
	if f.Status.Alive {
		hpStyle := tcell.StyleDefault.Foreground(tcell.ColorGreen)
		if f.Status.HP*3 <= f.Status.MaxHP {
			hpStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		drawText(s, 0, row, hpStyle, fmt.Sprintf("HP: %d / %d", f.Status.HP, f.Status.MaxHP))
	} else {
		drawText(s, 0, row, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
			gotext.Get("You are dead. Press q to quit."))
	}
	row++
	for _, msg := range f.Log {
		drawText(s, 0, row, tcell.StyleDefault, msg)
		row++
	}

	if f.Menu != nil {
		drawMenu(s, f.Menu)
	}
	s.Show()
}

// GetInput blocks until a key event arrives and resolves it for ic.
// Cancelling ctx wakes the event loop and yields a quit intent.
func (r *Renderer) GetInput(ctx context.Context, ic input.Context) input.Intent {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			r.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-stop:
		}
	}()

	for {
		if ctx.Err() != nil {
			return input.Intent{Action: input.ActionQuit}
		}
		switch ev := r.screen.PollEvent().(type) {
		case nil, *tcell.EventInterrupt:
			if ev == nil || ctx.Err() != nil {
				return input.Intent{Action: input.ActionQuit}
			}
		case *tcell.EventResize:
			r.screen.Sync()
		case *tcell.EventKey:
			code := keyCode(ev)
			if code == "" {
				continue
			}
			return input.Resolve(ic, input.RawInput{
				Device:    input.DeviceKeyboard,
				Code:      code,
				Timestamp: ev.When(),
			})
		}
	}
}

// keyCode names a tcell key the same way the raw terminal reader does.
func keyCode(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyCtrlC:
		return "ctrl_c"
	case tcell.KeyF8:
		return "f8"
	case tcell.KeyRune:
		return string(ev.Rune())
	}
	return ""
}

func drawMenu(s tcell.Screen, m *renderer.MenuView) {
	boxWidth := len(m.Title) + 4
	for _, label := range m.Items {
		boxWidth = max(boxWidth, len(label)+4)
	}
	boxWidth = max(boxWidth, len(m.Instructions)+4)

	box := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	rows := len(m.Items) + 3
	for y := 0; y < rows; y++ {
		for x := 0; x < boxWidth; x++ {
			s.SetContent(1+x, 1+y, ' ', nil, box)
		}
	}
	drawText(s, 2, 1, box.Foreground(tcell.ColorYellow).Bold(true), m.Title)
	for i, label := range m.Items {
		style := box
		if i == m.Selected {
			style = box.Reverse(true)
		}
		drawText(s, 3, 2+i, style, label)
	}
	drawText(s, 2, 2+len(m.Items), box.Foreground(tcell.ColorGray), m.Instructions)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

var colors = map[components.Color]tcell.Color{
	components.ColorBlack:   tcell.ColorBlack,
	components.ColorRed:     tcell.ColorRed,
	components.ColorYellow:  tcell.ColorYellow,
	components.ColorMagenta: tcell.ColorFuchsia,
	components.ColorGreen:   tcell.ColorGreen,
	components.ColorCyan:    tcell.ColorAqua,
	components.ColorWhite:   tcell.ColorWhite,
	components.ColorGray:    tcell.ColorGray,
}

func styleFor(fg, bg components.Color) tcell.Style {
	style := tcell.StyleDefault
	if c, ok := colors[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colors[bg]; ok {
		style = style.Background(c)
	}
	return style
}
