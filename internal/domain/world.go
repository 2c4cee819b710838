package domain

import "fmt"

// TileBlank - символ пустой клетки. Возвращается и для выхода за границы.
const TileBlank = ' '

// WorldGrid - карта рейда: косметический слой тайлов, слой коллизий,
// статические объекты и точки эвакуации.
//
// Инвариант: слой коллизий неизменен после генерации (двери вырезаются
// генератором до передачи мира симуляции). Слой тайлов - только подсказка
// для рендера, его можно перерисовывать каждый тик.
type WorldGrid struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	tiles     [][]rune
	collision [][]bool

	Features         []MapFeature `json:"features"`
	ExtractionPoints []Position   `json:"extractionPoints"`
}

// NewWorldGrid создает пустую карту. Единственная "фатальная" проверка ядра:
// мир нулевого размера отвергается сразу, а не всплывает мусором в рантайме.
func NewWorldGrid(width, height int) (*WorldGrid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world grid %dx%d: dimensions must be positive", width, height)
	}

	g := &WorldGrid{
		Width:  width,
		Height: height,
	}

	g.tiles = make([][]rune, height)
	g.collision = make([][]bool, height)
	for y := 0; y < height; y++ {
		g.tiles[y] = make([]rune, width)
		g.collision[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			g.tiles[y][x] = TileBlank
		}
	}

	return g, nil
}

// IsInBounds проверяет, лежит ли клетка внутри карты.
func (g *WorldGrid) IsInBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsCollision возвращает true, если клетка непроходима.
// Выход за границы ВСЕГДА считается коллизией (fail-safe).
func (g *WorldGrid) IsCollision(x, y int) bool {
	if !g.IsInBounds(x, y) {
		return true
	}
	return g.collision[y][x]
}

// SetCollision выставляет коллизию клетки. Используется только генератором.
func (g *WorldGrid) SetCollision(x, y int, blocked bool) {
	if !g.IsInBounds(x, y) {
		return
	}
	g.collision[y][x] = blocked
}

// GetTile возвращает символ клетки. За границами - пустота.
func (g *WorldGrid) GetTile(x, y int) rune {
	if !g.IsInBounds(x, y) {
		return TileBlank
	}
	return g.tiles[y][x]
}

// SetTile рисует символ в косметический слой. За границами - no-op.
func (g *WorldGrid) SetTile(x, y int, symbol rune) {
	if !g.IsInBounds(x, y) {
		return
	}
	g.tiles[y][x] = symbol
}

// ClearTiles очищает косметический слой. Вызывается рендер-драйвером
// перед перерисовкой каждого кадра.
func (g *WorldGrid) ClearTiles() {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.tiles[y][x] = TileBlank
		}
	}
}

// PrepareForRendering перерисовывает статические объекты в слой тайлов.
// Точки эвакуации рисуются поверх объектов: их должно быть видно всегда.
func (g *WorldGrid) PrepareForRendering() {
	for i := range g.Features {
		f := &g.Features[i]
		g.SetTile(f.Pos.X, f.Pos.Y, f.Symbol)
	}
	for _, p := range g.ExtractionPoints {
		g.SetTile(p.X, p.Y, 'E')
	}
}

// GetFeatureAt ищет объект в клетке линейным проходом.
// Возвращает nil, если клетка пуста - без ошибок.
func (g *WorldGrid) GetFeatureAt(x, y int) *MapFeature {
	for i := range g.Features {
		if g.Features[i].Pos.X == x && g.Features[i].Pos.Y == y {
			return &g.Features[i]
		}
	}
	return nil
}

// AddFeature добавляет статический объект и его коллизию.
func (g *WorldGrid) AddFeature(f MapFeature) {
	if !g.IsInBounds(f.Pos.X, f.Pos.Y) {
		return
	}
	g.Features = append(g.Features, f)
	if f.Blocked {
		g.collision[f.Pos.Y][f.Pos.X] = true
	}
}

// RemoveFeatureAt убирает объект из клетки вместе с его коллизией.
// Так генератор вырезает двери в зданиях.
func (g *WorldGrid) RemoveFeatureAt(x, y int) {
	for i := range g.Features {
		if g.Features[i].Pos.X == x && g.Features[i].Pos.Y == y {
			g.Features = append(g.Features[:i], g.Features[i+1:]...)
			break
		}
	}
	g.SetCollision(x, y, false)
}

// IsExtractionPoint проверяет, является ли клетка точкой эвакуации.
func (g *WorldGrid) IsExtractionPoint(x, y int) bool {
	for _, p := range g.ExtractionPoints {
		if p.X == x && p.Y == y {
			return true
		}
	}
	return false
}

// GetMapFeatures возвращает все статические объекты карты.
func (g *WorldGrid) GetMapFeatures() []MapFeature {
	return g.Features
}

// GetExtractionPoints возвращает все точки эвакуации.
func (g *WorldGrid) GetExtractionPoints() []Position {
	return g.ExtractionPoints
}
