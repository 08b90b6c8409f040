package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// octants maps the single scanned octant onto all eight.
var octants = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// FieldOfView returns every tile visible from origin within radius using
// recursive shadowcasting. A tile is in range when dx*dx+dy*dy <= radius*radius.
// Opaque tiles are themselves visible but hide what lies behind them.
// The result is ordered by tile index and never leaves the map.
func FieldOfView(m BaseMap, origin Point, radius int) []Point {
	w, h := m.Dimensions()
	if radius < 0 || origin.X < 0 || origin.Y < 0 || origin.X >= w || origin.Y >= h {
		return nil
	}

	seen := mapset.New[int]()
	seen.Put(origin.Y*w + origin.X)

	for oct := 0; oct < 8; oct++ {
		castLight(m, w, h, origin, 1, 1.0, 0.0, radius,
			octants[0][oct], octants[1][oct], octants[2][oct], octants[3][oct], &seen)
	}

	indices := make([]int, 0, seen.Size())
	seen.Each(func(idx int) {
		indices = append(indices, idx)
	})
	sort.Ints(indices)

	out := make([]Point, len(indices))
	for i, idx := range indices {
		out[i] = Point{X: idx % w, Y: idx / w}
	}
	return out
}

func castLight(m BaseMap, w, h int, origin Point, row int, start, end float64, radius, xx, xy, yx, yy int, seen *mapset.Set[int]) {
	if start < end {
		return
	}
	radiusSq := radius * radius

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false
		newStart := start

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := origin.X + dx*xx + dy*xy
			y := origin.Y + dx*yx + dy*yy
			inBounds := x >= 0 && y >= 0 && x < w && y < h
			if inBounds && dx*dx+dy*dy <= radiusSq {
				seen.Put(y*w + x)
			}

			opaque := !inBounds || m.IsOpaque(y*w+x)
			if blocked {
				if opaque {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && j < radius {
				blocked = true
				castLight(m, w, h, origin, j+1, start, lSlope, radius, xx, xy, yx, yy, seen)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
