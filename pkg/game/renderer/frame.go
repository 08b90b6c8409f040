package renderer

import (
	"sort"

	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/menu"
	"gloomhold/pkg/game/state"
)

// Glyphs used for terrain.
const (
	GlyphWall       = '#'
	GlyphFloor      = '.'
	GlyphUnrevealed = ' '
)

// Frame is everything a backend needs to draw one turn. Grids are row-major
// with Width columns. It is also the websocket wire format.
type Frame struct {
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	Tiles    []world.TileType `json:"tiles"`
	Revealed []bool           `json:"revealed"`
	Visible  []bool           `json:"visible"`

	// Entities are sorted by RenderOrder, highest first, so drawing them in
	// order leaves the lowest order on top.
	Entities []EntityGlyph `json:"entities"`

	Player   world.Point `json:"player"`
	Log      []string    `json:"log"`
	RunState string      `json:"run_state"`
	Turn     int         `json:"turn"`
	Status   Status      `json:"status"`
	Menu     *MenuView   `json:"menu,omitempty"`
}

// EntityGlyph is one drawable entity on a visible tile.
type EntityGlyph struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Glyph       string `json:"glyph"`
	FG          string `json:"fg"`
	BG          string `json:"bg"`
	RenderOrder int    `json:"render_order"`
}

// Status is the player's status bar.
type Status struct {
	HP    int  `json:"hp"`
	MaxHP int  `json:"max_hp"`
	Alive bool `json:"alive"`
}

// MenuView is an open item list.
type MenuView struct {
	Title        string   `json:"title"`
	Instructions string   `json:"instructions"`
	Items        []string `json:"items"`
	Selected     int      `json:"selected"`
}

// Cell is a composed screen cell: terrain with the topmost entity drawn over it.
type Cell struct {
	Glyph   rune
	FG      components.Color
	BG      components.Color
	Visible bool
}

// BuildFrame snapshots g for rendering. m is the open menu, or nil.
func BuildFrame(g *state.Game, m *menu.ItemMenu) Frame {
	gm := g.Map
	f := Frame{
		Width:    gm.Width,
		Height:   gm.Height,
		Tiles:    append([]world.TileType(nil), gm.Tiles...),
		Revealed: append([]bool(nil), gm.Revealed...),
		Visible:  append([]bool(nil), gm.Visible...),
		Entities: make([]EntityGlyph, 0),
		Player:   g.PlayerPos,
		Log:      g.RecentMessages(g.Config.LogLines),
		RunState: string(g.RunState),
		Turn:     g.Turn,
	}

	s := g.Stores
	for _, e := range s.Renderables.Entities() {
		pos, ok := s.Positions.Get(e)
		if !ok || !gm.InBounds(pos.X, pos.Y) || !gm.Visible[gm.Index(pos.X, pos.Y)] {
			continue
		}
		r, _ := s.Renderables.Get(e)
		f.Entities = append(f.Entities, EntityGlyph{
			X:           pos.X,
			Y:           pos.Y,
			Glyph:       string(r.Glyph),
			FG:          string(r.FG),
			BG:          string(r.BG),
			RenderOrder: r.RenderOrder,
		})
	}
	sort.SliceStable(f.Entities, func(i, j int) bool {
		return f.Entities[i].RenderOrder > f.Entities[j].RenderOrder
	})

	if stats, ok := s.CombatStats.Get(g.Player); ok && g.PlayerAlive() {
		f.Status = Status{HP: stats.HP, MaxHP: stats.MaxHP, Alive: true}
	}

	if m != nil {
		f.Menu = &MenuView{
			Title:        m.Title,
			Instructions: m.Instructions,
			Items:        m.Labels(),
			Selected:     m.Selected,
		}
	}
	return f
}

// Cells composes terrain and entities into one grid. Revealed tiles out of
// sight are drawn gray.
func (f Frame) Cells() []Cell {
	cells := make([]Cell, len(f.Tiles))
	for i, t := range f.Tiles {
		c := Cell{Glyph: GlyphUnrevealed, FG: components.ColorWhite, BG: components.ColorBlack}
		if i < len(f.Revealed) && f.Revealed[i] {
			c.Glyph = GlyphFloor
			if t == world.Wall {
				c.Glyph = GlyphWall
			}
			c.Visible = i < len(f.Visible) && f.Visible[i]
			if c.Visible {
				c.FG = components.ColorGreen
				if t == world.Wall {
					c.FG = components.ColorCyan
				}
			} else {
				c.FG = components.ColorGray
			}
		}
		cells[i] = c
	}

	for _, e := range f.Entities {
		if e.X < 0 || e.X >= f.Width || e.Y < 0 || e.Y >= f.Height {
			continue
		}
		c := &cells[e.Y*f.Width+e.X]
		for _, r := range e.Glyph {
			c.Glyph = r
			break
		}
		c.FG = components.Color(e.FG)
		c.BG = components.Color(e.BG)
	}
	return cells
}
