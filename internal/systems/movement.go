package systems

import "github.com/The404Studios/outcasted/internal/domain"

// MoveResult - результат вычисления шага.
type MoveResult struct {
	Pos   domain.Position
	Moved bool
}

// CalculateMove вычисляет новую позицию. Не меняет состояние мира!
//
// Правило одно: в клетку с коллизией шагнуть нельзя. Частичных шагов
// нет, диагональ дополнительным проверкам не подвергается - ровно та
// модель, по которой ходят и оперативник, и враги.
func CalculateMove(g *domain.WorldGrid, from domain.Position, dx, dy int) MoveResult {
	target := from.Shift(dx, dy)

	if g.IsCollision(target.X, target.Y) {
		return MoveResult{Pos: from}
	}
	return MoveResult{Pos: target, Moved: true}
}
