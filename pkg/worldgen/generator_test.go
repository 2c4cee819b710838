package worldgen

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/The404Studios/outcasted/internal/domain"
)

func testGrid(t *testing.T, seed int64) *domain.WorldGrid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := Generate(60, 30, 4, rng)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return g
}

func TestGenerateRejectsBadSize(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := Generate(0, 30, 4, rng); err == nil {
		t.Error("zero width must fail at construction")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := testGrid(t, 1337)
	b := testGrid(t, 1337)

	if len(a.Features) != len(b.Features) {
		t.Fatalf("same seed, different feature count: %d vs %d", len(a.Features), len(b.Features))
	}
	for i := range a.Features {
		if a.Features[i] != b.Features[i] {
			t.Fatalf("feature %d differs between runs", i)
		}
	}
	if len(a.ExtractionPoints) != len(b.ExtractionPoints) {
		t.Fatal("extraction points differ between runs")
	}
}

func TestExtractionPointsPlacement(t *testing.T) {
	g := testGrid(t, 7)

	if len(g.ExtractionPoints) == 0 {
		t.Fatal("expected at least one extraction point")
	}
	for _, p := range g.ExtractionPoints {
		nearEdge := p.X < EdgeBand || p.X >= g.Width-EdgeBand ||
			p.Y < EdgeBand || p.Y >= g.Height-EdgeBand
		if !nearEdge {
			t.Errorf("extraction point (%d,%d) is not in the edge band", p.X, p.Y)
		}
		if g.IsCollision(p.X, p.Y) {
			t.Errorf("extraction point (%d,%d) sits in a collision cell", p.X, p.Y)
		}
	}
}

func TestSpawnDiscIsClear(t *testing.T) {
	g := testGrid(t, 99)
	cx, cy := g.Width/2, g.Height/2

	for y := cy - SpawnClearRadius; y <= cy+SpawnClearRadius; y++ {
		for x := cx - SpawnClearRadius; x <= cx+SpawnClearRadius; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy > SpawnClearRadius*SpawnClearRadius {
				continue
			}
			if g.IsCollision(x, y) {
				t.Errorf("spawn disc cell (%d,%d) must be clear", x, y)
			}
		}
	}
}

func TestStructuresHaveDoors(t *testing.T) {
	// Хотя бы на одном из сидов должны появиться здания,
	// и у каждого здания дверь делает интерьер достижимым хотя бы
	// через одну небоковую клетку периметра.
	g := testGrid(t, 21)

	walls := 0
	for _, f := range g.GetMapFeatures() {
		if f.Symbol == '#' {
			walls++
		}
	}
	if walls == 0 {
		t.Skip("no structures on this seed")
	}

	// Дверь существует: сосед стены без коллизии, прорезанный генератором.
	// Проверяем косвенно: число стен меньше полного периметра всех зданий
	// невозможно посчитать без разметки, поэтому проверяем главный контракт -
	// стены есть, и карта не запечатана наглухо вокруг центра.
	cx, cy := g.Width/2, g.Height/2
	if g.IsCollision(cx, cy) {
		t.Error("map center must stay passable")
	}
}

func TestLandmarksExistForVisitObjectives(t *testing.T) {
	g := testGrid(t, 5)

	found := map[string]bool{}
	for _, f := range g.GetMapFeatures() {
		for _, sub := range LandmarkNames() {
			if strings.Contains(f.Name, sub) {
				found[sub] = true
			}
		}
	}

	// Склад и цех гарантированы зданиями, лагерь - отдельным размещением.
	// На тесном сиде здание может не встать, но лагерь обязан быть почти всегда.
	if len(found) == 0 {
		t.Error("expected at least one named landmark for VisitLocation objectives")
	}
}

func TestRollEnemyLootGuaranteesAmmo(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		loot := RollEnemyLoot(domain.EnemyScav, rng)
		if len(loot) == 0 {
			t.Fatal("loot must never be empty")
		}
		if loot[0].Kind != domain.ItemAmmo {
			t.Fatalf("first drop must be the guaranteed ammo stack, got %s", loot[0].Kind)
		}
		if loot[0].Count < 5 || loot[0].Count > 15 {
			t.Errorf("small ammo stack out of range: %d", loot[0].Count)
		}
	}
}

func TestScavsNeverDropWeapons(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		for _, it := range RollEnemyLoot(domain.EnemyScav, rng) {
			if it.Kind == domain.ItemWeapon {
				t.Fatal("Scav must never drop a weapon")
			}
		}
	}
}
