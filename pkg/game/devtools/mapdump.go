// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/state"
)

// DefaultDumpFilename is where DumpRevealedMapToFile writes when no path is given.
const DefaultDumpFilename = "map.txt"

// tileSymbol returns the single-character symbol for a tile (no entity overlay).
// If revealedOnly is true, unrevealed tiles return ' '.
func tileSymbol(g *state.Game, idx int, revealedOnly bool) rune {
	if revealedOnly && !g.Map.Revealed[idx] {
		return ' '
	}
	if g.Map.Tiles[idx] == world.Wall {
		return '#'
	}
	return '.'
}

// writeMapGrid writes the map with entity glyphs drawn over their tiles.
func writeMapGrid(w io.Writer, g *state.Game, revealedOnly bool) {
	m := g.Map
	overlay := make(map[int]rune)
	order := make(map[int]int)
	s := g.Stores
	for _, e := range s.Renderables.Entities() {
		pos, ok := s.Positions.Get(e)
		if !ok || !m.InBounds(pos.X, pos.Y) {
			continue
		}
		idx := m.Index(pos.X, pos.Y)
		if revealedOnly && !m.Visible[idx] {
			continue
		}
		r, _ := s.Renderables.Get(e)
		if prev, taken := order[idx]; taken && prev <= r.RenderOrder {
			continue
		}
		overlay[idx] = r.Glyph
		order[idx] = r.RenderOrder
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Index(x, y)
			if glyph, ok := overlay[idx]; ok {
				fmt.Fprintf(w, "%c", glyph)
				continue
			}
			fmt.Fprintf(w, "%c", tileSymbol(g, idx, revealedOnly))
		}
		fmt.Fprintln(w)
	}
}

// WriteMapDump writes a full debug dump: metadata, legend, the revealed map,
// the full map and the entity lists.
func WriteMapDump(w io.Writer, g *state.Game) error {
	if g.Map == nil {
		return fmt.Errorf("no map")
	}
	bw := bufio.NewWriter(w)
	s := g.Stores

	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (layout, entities) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "seed: %d\n", g.Config.Seed)
	fmt.Fprintf(bw, "map_width: %d\n", g.Map.Width)
	fmt.Fprintf(bw, "map_height: %d\n", g.Map.Height)
	fmt.Fprintf(bw, "rooms: %d\n", len(g.Map.Rooms))
	fmt.Fprintf(bw, "turn: %d\n", g.Turn)
	fmt.Fprintf(bw, "run_state: %s\n", g.RunState)
	fmt.Fprintf(bw, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(bw, "player_alive: %v\n", g.PlayerAlive())
	fmt.Fprintf(bw, "player_cell: %d,%d\n", g.PlayerPos.X, g.PlayerPos.Y)
	if stats, ok := s.CombatStats.Get(g.Player); ok {
		fmt.Fprintf(bw, "player_hp: %d/%d\n", stats.HP, stats.MaxHP)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Legend ---")
	fmt.Fprintln(bw, ". = floor  # = wall  (space) = unrevealed  @ = player  o = orc  g = goblin  ¡ = potion")
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (revealed tiles only; entities on visible tiles) ---")
	writeMapGrid(bw, g, true)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Map (full layout; all entities) ---")
	writeMapGrid(bw, g, false)
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "--- Rooms ---")
	for i, r := range g.Map.Rooms {
		c := r.Center()
		fmt.Fprintf(bw, "  index: %d x1: %d y1: %d x2: %d y2: %d center: %d,%d\n", i, r.X1, r.Y1, r.X2, r.Y2, c.X, c.Y)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "Monsters:")
	for _, e := range s.Monsters.Entities() {
		pos, _ := s.Positions.Get(e)
		stats, _ := s.CombatStats.Get(e)
		if pos == nil || stats == nil {
			continue
		}
		fmt.Fprintf(bw, "  entity: %s name: %q x: %d y: %d hp: %d/%d\n", e, s.NameOf(e), pos.X, pos.Y, stats.HP, stats.MaxHP)
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "Items on floor:")
	for _, e := range s.Items.Entities() {
		if pos, ok := s.Positions.Get(e); ok {
			fmt.Fprintf(bw, "  entity: %s item_name: %q x: %d y: %d\n", e, s.NameOf(e), pos.X, pos.Y)
		}
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "Player inventory:")
	carried := s.Backpack(g.Player)
	if len(carried) == 0 {
		fmt.Fprintln(bw, "  (none)")
	}
	for _, e := range carried {
		fmt.Fprintf(bw, "  entity: %s item_name: %q\n", e, s.NameOf(e))
	}
	fmt.Fprintln(bw, "")

	fmt.Fprintln(bw, "=== END MAP DUMP ===")
	return bw.Flush()
}

// DumpRevealedMapToFile writes WriteMapDump output to path, or to
// DefaultDumpFilename in the working directory when path is empty.
// It returns the absolute path written.
func DumpRevealedMapToFile(g *state.Game, path string) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteMapDump(f, g); err != nil {
		return absPath, err
	}
	if err := f.Sync(); err != nil {
		return absPath, err
	}
	return absPath, nil
}
