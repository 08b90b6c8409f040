package world

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// MaxAStarSteps bounds the number of nodes expanded by AStar.
const MaxAStarSteps = 65536

type openNode struct {
	idx int
	g   float64
	f   float64
}

// AStar finds a cheapest path from start to goal over m's exits, using
// PathingDistance as the heuristic. The returned steps begin with start and
// end with goal. ok is false when no path exists within MaxAStarSteps.
// Ties on estimated cost are broken by tile index so results are reproducible.
func AStar(m BaseMap, start, goal int) (steps []int, ok bool) {
	if start == goal {
		return []int{start}, true
	}

	open := heap.New(func(a, b openNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.idx < b.idx
	})
	closed := mapset.New[int]()
	cameFrom := make(map[int]int)
	gScore := map[int]float64{start: 0}

	open.Push(openNode{idx: start, g: 0, f: m.PathingDistance(start, goal)})

	for expanded := 0; open.Size() > 0 && expanded < MaxAStarSteps; {
		cur, _ := open.Pop()
		if cur.idx == goal {
			return reconstruct(cameFrom, start, goal), true
		}
		if closed.Has(cur.idx) {
			continue
		}
		closed.Put(cur.idx)
		expanded++

		for _, exit := range m.Exits(cur.idx) {
			if closed.Has(exit.Index) {
				continue
			}
			g := cur.g + exit.Cost
			if best, seen := gScore[exit.Index]; seen && g >= best {
				continue
			}
			gScore[exit.Index] = g
			cameFrom[exit.Index] = cur.idx
			open.Push(openNode{idx: exit.Index, g: g, f: g + m.PathingDistance(exit.Index, goal)})
		}
	}
	return nil, false
}

func reconstruct(cameFrom map[int]int, start, goal int) []int {
	path := []int{goal}
	for cur := goal; cur != start; {
		cur = cameFrom[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
