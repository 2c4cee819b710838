package worldgen

import (
	"math/rand"

	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/pkg/utils"
)

// Константы генерации
const (
	// EdgeBand - ширина краевой полосы, куда сажаются точки эвакуации.
	EdgeBand = 3

	// ExtractionAttempts - лимит попыток размещения одной точки.
	ExtractionAttempts = 100

	// SpawnClearRadius - радиус зачищенного диска в центре карты.
	SpawnClearRadius = 3
)

// Rect - вспомогательная структура для здания.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.W && r.X+r.W >= other.X &&
		r.Y <= other.Y+other.H && r.Y+r.H >= other.Y
}

// landmarkSubstrings - подстроки имен ориентиров, которые генератор
// гарантированно размещает. На них опираются задачи VisitLocation.
var landmarkSubstrings = []string{"лагерь", "склад", "цех"}

// LandmarkNames возвращает подстроки имен ориентиров карты.
func LandmarkNames() []string {
	return landmarkSubstrings
}

// Generate создает карту рейда целиком: три биома, здания с дверями,
// точки эвакуации у краев и чистый диск в центре для спавна.
//
// Карта пересоздается при каждом старте рейда. Слой коллизий после
// возврата из Generate больше не меняется.
func Generate(width, height, extractionCount int, rng *rand.Rand) (*domain.WorldGrid, error) {
	g, err := domain.NewWorldGrid(width, height)
	if err != nil {
		return nil, err
	}

	// 1. Биомы - три вертикальные полосы
	third := width / 3
	scatterForest(g, rng, 0, third)
	buildStructures(g, rng, third, 2*third, "Заброшенный склад", 2)
	scatterUrban(g, rng, third, 2*third)
	buildStructures(g, rng, 2*third, width, "Старый цех", 1)
	scatterIndustrial(g, rng, 2*third, width)

	// 2. Гарантированный лесной ориентир
	placeForestCamp(g, rng, third)

	// 3. Точки эвакуации у краев карты
	placeExtractionPoints(g, rng, extractionCount)

	// 4. Зачистка центра под спавн
	clearSpawnArea(g)

	g.PrepareForRendering()
	return g, nil
}

// scatterForest рассыпает деревья, кусты, ручьи и редкие родники в левой полосе.
func scatterForest(g *domain.WorldGrid, rng *rand.Rand, x0, x1 int) {
	for y := 1; y < g.Height-1; y++ {
		for x := x0 + 1; x < x1; x++ {
			switch roll := rng.Float64(); {
			case roll < 0.08:
				g.AddFeature(domain.MapFeature{
					Pos: domain.Position{X: x, Y: y}, Symbol: 'T',
					Name: "Дерево", Blocked: true,
				})
			case roll < 0.11:
				g.AddFeature(domain.MapFeature{
					Pos: domain.Position{X: x, Y: y}, Symbol: '"',
					Name: "Кустарник",
				})
			case roll < 0.115:
				g.AddFeature(domain.MapFeature{
					Pos: domain.Position{X: x, Y: y}, Symbol: '~',
					Name: "Ручей", Water: true,
				})
			case roll < 0.118:
				g.AddFeature(domain.MapFeature{
					Pos: domain.Position{X: x, Y: y}, Symbol: '+',
					Name: "Родник", Healing: true,
				})
			}
		}
	}
}

// scatterUrban добавляет городской мусор между зданиями.
func scatterUrban(g *domain.WorldGrid, rng *rand.Rand, x0, x1 int) {
	for y := 1; y < g.Height-1; y++ {
		for x := x0; x < x1; x++ {
			if g.GetFeatureAt(x, y) != nil {
				continue
			}
			switch roll := rng.Float64(); {
			case roll < 0.02:
				g.AddFeature(domain.MapFeature{
					Pos: domain.Position{X: x, Y: y}, Symbol: 'o',
					Name: "Бочка", Blocked: true, Lootable: true,
				})
			case roll < 0.05:
				g.AddFeature(domain.MapFeature{
					Pos: domain.Position{X: x, Y: y}, Symbol: ',',
					Name: "Обломки",
				})
			}
		}
	}
}

// scatterIndustrial добавляет ящики, цистерны и схроны с патронами.
func scatterIndustrial(g *domain.WorldGrid, rng *rand.Rand, x0, x1 int) {
	for y := 1; y < g.Height-1; y++ {
		for x := x0; x < x1 && x < g.Width-1; x++ {
			if g.GetFeatureAt(x, y) != nil {
				continue
			}
			switch roll := rng.Float64(); {
			case roll < 0.03:
				g.AddFeature(domain.MapFeature{
					Pos: domain.Position{X: x, Y: y}, Symbol: 'x',
					Name: "Ящик", Blocked: true, Lootable: true,
				})
			case roll < 0.045:
				g.AddFeature(domain.MapFeature{
					Pos: domain.Position{X: x, Y: y}, Symbol: 'O',
					Name: "Цистерна", Blocked: true,
				})
			case roll < 0.05:
				g.AddFeature(domain.MapFeature{
					Pos: domain.Position{X: x, Y: y}, Symbol: '=',
					Name: "Схрон с патронами", AmmoCache: true,
				})
			}
		}
	}
}

// buildStructures ставит count зданий в полосе [x0,x1) и вырезает
// РОВНО одну дверь в каждом. Дверь убирает и объект стены, и коллизию.
func buildStructures(g *domain.WorldGrid, rng *rand.Rand, x0, x1 int, name string, count int) {
	var placed []Rect

	for b := 0; b < count; b++ {
		var room Rect
		found := false

		for attempt := 0; attempt < 30; attempt++ {
			w := utils.RandRange(rng, 5, 8)
			h := utils.RandRange(rng, 4, 6)
			if x1-x0 < w+2 || g.Height < h+2 {
				break
			}
			x := utils.RandRange(rng, x0+1, x1-w-1)
			y := utils.RandRange(rng, 1, g.Height-h-1)
			room = Rect{X: x, Y: y, W: w, H: h}

			ok := true
			for _, other := range placed {
				if room.Intersects(other) {
					ok = false
					break
				}
			}
			if ok {
				found = true
				break
			}
		}
		if !found {
			continue
		}
		placed = append(placed, room)

		// Периметр - стены
		for x := room.X; x <= room.X+room.W; x++ {
			addWall(g, x, room.Y, name)
			addWall(g, x, room.Y+room.H, name)
		}
		for y := room.Y + 1; y < room.Y+room.H; y++ {
			addWall(g, room.X, y, name)
			addWall(g, room.X+room.W, y, name)
		}

		// Дверь: случайная не-угловая клетка периметра
		cutDoor(g, rng, room)

		// Внутри - лутабельный ящик
		g.AddFeature(domain.MapFeature{
			Pos:    domain.Position{X: room.X + 1 + rng.Intn(room.W-1), Y: room.Y + 1 + rng.Intn(room.H-1)},
			Symbol: 'x', Name: "Ящик", Blocked: true, Lootable: true,
		})
	}
}

func addWall(g *domain.WorldGrid, x, y int, structureName string) {
	if g.GetFeatureAt(x, y) != nil {
		g.RemoveFeatureAt(x, y)
	}
	g.AddFeature(domain.MapFeature{
		Pos: domain.Position{X: x, Y: y}, Symbol: '#',
		Name: structureName, Blocked: true,
	})
}

// cutDoor выбирает не-угловую клетку периметра и убирает из нее стену.
func cutDoor(g *domain.WorldGrid, rng *rand.Rand, room Rect) {
	side := rng.Intn(4)
	var x, y int
	switch side {
	case 0: // верх
		x, y = room.X+1+rng.Intn(room.W-1), room.Y
	case 1: // низ
		x, y = room.X+1+rng.Intn(room.W-1), room.Y+room.H
	case 2: // лево
		x, y = room.X, room.Y+1+rng.Intn(room.H-1)
	default: // право
		x, y = room.X+room.W, room.Y+1+rng.Intn(room.H-1)
	}
	g.RemoveFeatureAt(x, y)
}

// placeForestCamp ставит лесной ориентир в свободную клетку левой полосы.
func placeForestCamp(g *domain.WorldGrid, rng *rand.Rand, third int) {
	for attempt := 0; attempt < 50; attempt++ {
		x := utils.RandRange(rng, 1, third-1)
		y := utils.RandRange(rng, 1, g.Height-2)
		if g.IsCollision(x, y) || g.GetFeatureAt(x, y) != nil {
			continue
		}
		g.AddFeature(domain.MapFeature{
			Pos: domain.Position{X: x, Y: y}, Symbol: 'A',
			Name: "Лесной лагерь", Lootable: true,
		})
		return
	}
}

// placeExtractionPoints сажает точки эвакуации в краевую полосу.
// На каждую точку - не больше ExtractionAttempts попыток; точка
// принимается, только если лежит у края и не в коллизии.
func placeExtractionPoints(g *domain.WorldGrid, rng *rand.Rand, count int) {
	for i := 0; i < count; i++ {
		for attempt := 0; attempt < ExtractionAttempts; attempt++ {
			x := rng.Intn(g.Width)
			y := rng.Intn(g.Height)

			nearEdge := x < EdgeBand || x >= g.Width-EdgeBand ||
				y < EdgeBand || y >= g.Height-EdgeBand
			if !nearEdge || g.IsCollision(x, y) || g.IsExtractionPoint(x, y) {
				continue
			}

			g.ExtractionPoints = append(g.ExtractionPoints, domain.Position{X: x, Y: y})
			break
		}
	}
}

// clearSpawnArea вычищает диск фиксированного радиуса в центре карты:
// и объекты, и коллизии. Оперативник не должен заспавниться в стене.
func clearSpawnArea(g *domain.WorldGrid) {
	cx, cy := g.Width/2, g.Height/2
	r := SpawnClearRadius

	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				g.RemoveFeatureAt(x, y)
			}
		}
	}
}
