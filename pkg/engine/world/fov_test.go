package world

import "testing"

func containsPoint(pts []Point, p Point) bool {
	for _, q := range pts {
		if q == p {
			return true
		}
	}
	return false
}

func TestFieldOfViewOpenFloor(t *testing.T) {
	m := openMap(t, 30, 30)
	origin := Point{X: 10, Y: 10}

	visible := FieldOfView(m, origin, 8)
	if !containsPoint(visible, origin) {
		t.Fatal("origin not visible")
	}
	for _, p := range visible {
		dx, dy := p.X-origin.X, p.Y-origin.Y
		if dx*dx+dy*dy > 64 {
			t.Errorf("tile %v beyond range 8 is visible", p)
		}
	}
	for _, p := range []Point{{X: 18, Y: 10}, {X: 10, Y: 2}, {X: 2, Y: 10}, {X: 10, Y: 18}} {
		if !containsPoint(visible, p) {
			t.Errorf("tile %v at distance 8 not visible", p)
		}
	}
	if containsPoint(visible, Point{X: 17, Y: 17}) {
		t.Error("diagonal tile beyond range is visible")
	}
}

func TestFieldOfViewWallOccludes(t *testing.T) {
	m := openMap(t, 30, 30)
	for y := 1; y < 29; y++ {
		m.Tiles[m.Index(13, y)] = Wall
	}
	m.PopulateBlocked()

	visible := FieldOfView(m, Point{X: 10, Y: 10}, 8)
	if !containsPoint(visible, Point{X: 13, Y: 10}) {
		t.Error("wall face not visible")
	}
	for _, p := range visible {
		if p.X > 13 {
			t.Errorf("tile %v behind wall is visible", p)
		}
	}
}

func TestFieldOfViewClipsToBounds(t *testing.T) {
	m := openMap(t, 6, 6)
	for _, p := range FieldOfView(m, Point{X: 1, Y: 1}, 8) {
		if !m.InBounds(p.X, p.Y) {
			t.Errorf("tile %v out of bounds", p)
		}
	}
}

func TestFieldOfViewIsSymmetricOnOpenFloor(t *testing.T) {
	m := openMap(t, 25, 25)
	visible := FieldOfView(m, Point{X: 12, Y: 12}, 5)
	for _, p := range visible {
		mirror := Point{X: 24 - p.X, Y: 24 - p.Y}
		if !containsPoint(visible, mirror) {
			t.Errorf("tile %v visible but mirror %v is not", p, mirror)
		}
	}
}
