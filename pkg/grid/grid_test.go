package grid

import "testing"

func newTestMap() *Map {
	return NewMap(25, 15, 48, []int{3, 7, 11})
}

func TestContains(t *testing.T) {
	m := newTestMap()
	cases := []struct {
		cell Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{24, 14}, true},
		{Cell{-1, 0}, false},
		{Cell{0, -1}, false},
		{Cell{25, 0}, false},
		{Cell{0, 15}, false},
	}
	for _, tc := range cases {
		if got := m.Contains(tc.cell); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestCanPlaceRules(t *testing.T) {
	m := newTestMap()

	if !m.CanPlace(Cell{5, 5}) {
		t.Fatalf("free field cell must be placeable")
	}
	if m.CanPlace(Cell{5, 7}) {
		t.Fatalf("lane cell must never be placeable")
	}
	if m.CanPlace(Cell{-1, 5}) {
		t.Fatalf("out-of-bounds cell must never be placeable")
	}

	m.SetOccupied(Cell{5, 5}, true)
	if m.CanPlace(Cell{5, 5}) {
		t.Fatalf("occupied cell must not be placeable")
	}
	m.SetOccupied(Cell{5, 5}, false)
	if !m.CanPlace(Cell{5, 5}) {
		t.Fatalf("freed cell must be placeable again")
	}
}

func TestCellPixelRoundTrip(t *testing.T) {
	m := newTestMap()

	x, y := m.CellToPixel(Cell{3, 7})
	if x != 168 || y != 360 {
		t.Fatalf("expected cell center (168, 360), got (%v, %v)", x, y)
	}
	if got := m.PixelToCell(x, y); got != (Cell{3, 7}) {
		t.Fatalf("pixel-to-cell must invert cell centers, got %v", got)
	}
	// Любая точка внутри ячейки попадает в ту же ячейку.
	if got := m.PixelToCell(145, 337); got != (Cell{3, 7}) {
		t.Fatalf("interior point must map to its cell, got %v", got)
	}
}

func TestPathGeometry(t *testing.T) {
	m := newTestMap()

	if m.SpawnX() != 0 {
		t.Fatalf("spawn must be at the left edge")
	}
	if m.PathEndX() != 1200 {
		t.Fatalf("path end must be the right edge, got %v", m.PathEndX())
	}
	if m.LaneY(0) != 168 {
		t.Fatalf("lane 0 must sit on row 3 center, got %v", m.LaneY(0))
	}
	if m.LaneY(3) != m.LaneY(0) {
		t.Fatalf("lane index must wrap around")
	}
}

func TestIsLane(t *testing.T) {
	m := newTestMap()
	for _, row := range []int{3, 7, 11} {
		if !m.IsLane(Cell{10, row}) {
			t.Errorf("row %d must be a lane", row)
		}
	}
	if m.IsLane(Cell{10, 5}) {
		t.Errorf("row 5 must not be a lane")
	}
}
