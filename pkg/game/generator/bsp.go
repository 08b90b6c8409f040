package generator

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/logger"
)

// BSPGenerator generates maps using Binary Space Partitioning
type BSPGenerator struct {
	Width  int
	Height int
}

// Name returns the name of this generator
func (g *BSPGenerator) Name() string {
	return "BSP Tree"
}

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, y, width, height int
	left, right         *bspNode
	room                *world.Rect
}

// Constants for BSP generation
const (
	minNodeSize = 8 // Minimum size of a BSP node
	minRoomSize = 4 // Minimum size of a room
	roomPadding = 2 // Padding between room and node edge
)

// Generate creates a new map using the BSP algorithm. Every leaf gets one
// room and sibling subtrees are joined, so all rooms are mutually reachable.
func (g *BSPGenerator) Generate(rng *rand.Rand) *world.Map {
	m := world.NewMap(g.Width, g.Height)

	// Leave a one tile border for the perimeter walls
	root := &bspNode{
		x:      1,
		y:      1,
		width:  g.Width - 2,
		height: g.Height - 2,
	}

	splitBSP(rng, root, minNodeSize)
	createRooms(rng, root)

	m.Rooms = collectRooms(root)
	for _, r := range m.Rooms {
		m.ApplyRoom(r)
	}
	connectRooms(rng, m, root)
	m.PopulateBlocked()

	if len(m.Rooms) == 0 {
		panic("generator: BSP produced no rooms")
	}

	logger.Component("generator").WithFields(logrus.Fields{
		"generator": g.Name(),
		"rooms":     len(m.Rooms),
	}).Debug("Map generated")
	return m
}

// splitBSP recursively splits a BSP node
func splitBSP(rng *rand.Rand, node *bspNode, minSize int) {
	var splitHorizontal bool
	switch {
	case node.width > node.height && node.width >= minSize*2:
		splitHorizontal = false
	case node.height > node.width && node.height >= minSize*2:
		splitHorizontal = true
	case node.width >= minSize*2 && node.height >= minSize*2:
		splitHorizontal = rng.Intn(2) == 0
	case node.width >= minSize*2:
		splitHorizontal = false
	case node.height >= minSize*2:
		splitHorizontal = true
	default:
		return // Too small to split
	}

	if splitHorizontal {
		splitPoint := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPoint}
		node.right = &bspNode{x: node.x, y: node.y + splitPoint, width: node.width, height: node.height - splitPoint}
	} else {
		splitPoint := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, y: node.y, width: splitPoint, height: node.height}
		node.right = &bspNode{x: node.x + splitPoint, y: node.y, width: node.width - splitPoint, height: node.height}
	}

	splitBSP(rng, node.left, minSize)
	splitBSP(rng, node.right, minSize)
}

// createRooms creates rooms in leaf nodes
func createRooms(rng *rand.Rand, node *bspNode) {
	if node.left != nil || node.right != nil {
		if node.left != nil {
			createRooms(rng, node.left)
		}
		if node.right != nil {
			createRooms(rng, node.right)
		}
		return
	}

	roomWidth := minRoomSize + rng.Intn(node.width-minRoomSize-roomPadding+1)
	roomHeight := minRoomSize + rng.Intn(node.height-minRoomSize-roomPadding+1)
	if roomWidth > node.width-roomPadding {
		roomWidth = node.width - roomPadding
	}
	if roomHeight > node.height-roomPadding {
		roomHeight = node.height - roomPadding
	}

	roomX := node.x + rng.Intn(node.width-roomWidth)
	roomY := node.y + rng.Intn(node.height-roomHeight)

	// Rect interiors start one tile in from the corner
	r := world.NewRect(roomX-1, roomY-1, roomWidth, roomHeight)
	node.room = &r
}

// connectRooms joins one room from each pair of sibling subtrees
func connectRooms(rng *rand.Rand, m *world.Map, node *bspNode) {
	if node.left == nil || node.right == nil {
		return
	}

	leftRoom := getRoom(rng, node.left)
	rightRoom := getRoom(rng, node.right)
	if leftRoom != nil && rightRoom != nil {
		joinRooms(m, rng, leftRoom.Center(), rightRoom.Center())
	}

	connectRooms(rng, m, node.left)
	connectRooms(rng, m, node.right)
}

// getRoom returns a room from a subtree (picks randomly from leaves)
func getRoom(rng *rand.Rand, node *bspNode) *world.Rect {
	if node.room != nil {
		return node.room
	}

	var leftRoom, rightRoom *world.Rect
	if node.left != nil {
		leftRoom = getRoom(rng, node.left)
	}
	if node.right != nil {
		rightRoom = getRoom(rng, node.right)
	}

	if leftRoom != nil && rightRoom != nil {
		if rng.Intn(2) == 0 {
			return leftRoom
		}
		return rightRoom
	}
	if leftRoom != nil {
		return leftRoom
	}
	return rightRoom
}

// collectRooms collects all rooms from the BSP tree in left-to-right leaf order
func collectRooms(node *bspNode) []world.Rect {
	var rooms []world.Rect
	if node.room != nil {
		rooms = append(rooms, *node.room)
	}
	if node.left != nil {
		rooms = append(rooms, collectRooms(node.left)...)
	}
	if node.right != nil {
		rooms = append(rooms, collectRooms(node.right)...)
	}
	return rooms
}
