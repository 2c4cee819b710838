package domain

import "testing"

func TestNewWorldGridRejectsZeroSize(t *testing.T) {
	if _, err := NewWorldGrid(0, 10); err == nil {
		t.Error("zero width must be rejected")
	}
	if _, err := NewWorldGrid(10, -1); err == nil {
		t.Error("negative height must be rejected")
	}
}

func TestOutOfBoundsIsAlwaysCollision(t *testing.T) {
	g, err := NewWorldGrid(5, 5)
	if err != nil {
		t.Fatal(err)
	}

	cases := []Position{
		{-1, 0}, {0, -1}, {5, 0}, {0, 5}, {100, 100}, {-50, -50},
	}
	for _, p := range cases {
		if !g.IsCollision(p.X, p.Y) {
			t.Errorf("(%d,%d) is out of bounds and must be collision", p.X, p.Y)
		}
	}

	// Внутри пустого мира коллизий нет
	if g.IsCollision(2, 2) {
		t.Error("empty in-bounds cell must not be collision")
	}
}

func TestTileLayerFailsSoft(t *testing.T) {
	g, _ := NewWorldGrid(3, 3)

	if got := g.GetTile(-1, -1); got != TileBlank {
		t.Errorf("OOB read must return blank, got %q", got)
	}

	// Запись за границы не должна паниковать
	g.SetTile(99, 99, '#')

	g.SetTile(1, 1, '#')
	if got := g.GetTile(1, 1); got != '#' {
		t.Errorf("expected '#', got %q", got)
	}

	g.ClearTiles()
	if got := g.GetTile(1, 1); got != TileBlank {
		t.Errorf("ClearTiles must wipe the cosmetic layer, got %q", got)
	}
}

func TestFeatureCollisionAndDoorCut(t *testing.T) {
	g, _ := NewWorldGrid(10, 10)

	g.AddFeature(MapFeature{Pos: Position{3, 3}, Symbol: '#', Name: "Стена", Blocked: true})
	if !g.IsCollision(3, 3) {
		t.Error("blocked feature must create collision")
	}
	if f := g.GetFeatureAt(3, 3); f == nil || f.Name != "Стена" {
		t.Error("GetFeatureAt must find the feature")
	}

	// Вырезаем дверь: и объект, и коллизия исчезают
	g.RemoveFeatureAt(3, 3)
	if g.IsCollision(3, 3) {
		t.Error("door cell must be passable after RemoveFeatureAt")
	}
	if g.GetFeatureAt(3, 3) != nil {
		t.Error("feature must be gone after RemoveFeatureAt")
	}
}

func TestExtractionPoints(t *testing.T) {
	g, _ := NewWorldGrid(10, 10)
	g.ExtractionPoints = []Position{{0, 0}, {9, 9}}

	if !g.IsExtractionPoint(9, 9) {
		t.Error("expected extraction point at (9,9)")
	}
	if g.IsExtractionPoint(5, 5) {
		t.Error("(5,5) is not an extraction point")
	}
}

func TestPrepareForRenderingDrawsStatics(t *testing.T) {
	g, _ := NewWorldGrid(10, 10)
	g.AddFeature(MapFeature{Pos: Position{2, 2}, Symbol: 'T', Name: "Дерево", Blocked: true})
	g.ExtractionPoints = []Position{{4, 4}}

	g.PrepareForRendering()

	if g.GetTile(2, 2) != 'T' {
		t.Error("feature symbol must be drawn into the tile layer")
	}
	if g.GetTile(4, 4) != 'E' {
		t.Error("extraction point must be drawn as 'E'")
	}
}
