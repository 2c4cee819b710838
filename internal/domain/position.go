package domain

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction - единичный вектор движения по сетке.
type Direction struct {
	Dx int `json:"dx"`
	Dy int `json:"dy"`
}

// CardinalDirections - 4 основных направления (веер spread=0).
var CardinalDirections = []Direction{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
}

// AllDirections - 8 направлений, включая диагонали (веер spread=1).
var AllDirections = []Direction{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {1, -1}, {-1, 1}, {1, 1},
}

// Shift возвращает новую позицию со смещением (не меняя текущую,
// т.к. Go передает структуры по значению).
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// ManhattanTo возвращает манхэттенское расстояние до другой точки.
// Вся логика обнаружения (ViewRange, AttackRange) работает именно на нем.
func (p Position) ManhattanTo(other Position) int {
	dx := p.X - other.X
	dy := p.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// DirectionTo возвращает грубое направление (знаки дельт) к другой точке.
// Именно так целятся враги: по осям, без баллистики.
func (p Position) DirectionTo(other Position) (int, int) {
	return Sign(other.X - p.X), Sign(other.Y - p.Y)
}

// Sign возвращает знак числа (-1, 0, 1).
func Sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
