package systems

import (
	"math/rand"

	"github.com/The404Studios/outcasted/internal/domain"
)

// Тактические константы поведения врагов.
const (
	SniperRetreatRange = 10 // ближе - отходит
	SniperHoldRange    = 15 // дальше - подтягивается
	SniperStrafeChance = 30 // % на боковой шаг в зоне комфорта
	HeavyMoveChance    = 50 // % что тяжёлый вообще сдвинется
	RusherSecondChance = 50 // % на второй шаг за ход
)

// MoveAttempts - сколько шагов класс пытается сделать за один ход.
// Тяжёлый штурмовик половину ходов стоит, бегун половину ходов делает рывок.
func MoveAttempts(class domain.EnemyClass, rng *rand.Rand) int {
	switch class {
	case domain.EnemyHeavyScav:
		if rng.Intn(100) < HeavyMoveChance {
			return 1
		}
		return 0
	case domain.EnemyRusher:
		if rng.Intn(100) < RusherSecondChance {
			return 2
		}
		return 1
	default:
		return 1
	}
}

// NextStep выбирает следующий шаг врага по тактике его класса.
// ok=false означает, что враг осознанно стоит на месте.
func NextStep(e *domain.Enemy, playerPos domain.Position, g *domain.WorldGrid, rng *rand.Rand) (domain.Direction, bool) {
	if e.Class == domain.EnemySniper {
		return sniperStep(g, e.Pos, playerPos, rng)
	}
	return approachStep(g, e.Pos, playerPos, rng)
}

// approachStep - жадное сближение: сперва шаг по главной оси (где дельта
// больше), потом по второй, и только если обе клетки заняты - случайное
// направление, чтобы не застревать за препятствием.
func approachStep(g *domain.WorldGrid, from, target domain.Position, rng *rand.Rand) (domain.Direction, bool) {
	dx := domain.Sign(target.X - from.X)
	dy := domain.Sign(target.Y - from.Y)
	if dx == 0 && dy == 0 {
		return domain.Direction{}, false
	}

	first := domain.Direction{Dx: dx}
	second := domain.Direction{Dy: dy}
	if abs(target.Y-from.Y) > abs(target.X-from.X) {
		first, second = second, first
	}

	for _, dir := range []domain.Direction{first, second} {
		if dir == (domain.Direction{}) {
			continue
		}
		if step := from.Shift(dir.Dx, dir.Dy); !g.IsCollision(step.X, step.Y) {
			return dir, true
		}
	}
	return randomStep(g, from, rng)
}

// sniperStep держит дистанцию: отходит при сближении, подтягивается на
// дальней, в зоне комфорта изредка смещается вбок, сбивая прицел.
func sniperStep(g *domain.WorldGrid, from, target domain.Position, rng *rand.Rand) (domain.Direction, bool) {
	dist := from.ManhattanTo(target)
	switch {
	case dist < SniperRetreatRange:
		return retreatStep(g, from, target, rng)
	case dist > SniperHoldRange:
		return approachStep(g, from, target, rng)
	case rng.Intn(100) < SniperStrafeChance:
		return strafeStep(g, from, target, rng)
	default:
		return domain.Direction{}, false
	}
}

// retreatStep - тот же жадный выбор оси, но от цели.
func retreatStep(g *domain.WorldGrid, from, target domain.Position, rng *rand.Rand) (domain.Direction, bool) {
	dx := -domain.Sign(target.X - from.X)
	dy := -domain.Sign(target.Y - from.Y)
	if dx == 0 && dy == 0 {
		return randomStep(g, from, rng)
	}

	first := domain.Direction{Dx: dx}
	second := domain.Direction{Dy: dy}
	if abs(target.Y-from.Y) > abs(target.X-from.X) {
		first, second = second, first
	}

	for _, dir := range []domain.Direction{first, second} {
		if dir == (domain.Direction{}) {
			continue
		}
		if step := from.Shift(dir.Dx, dir.Dy); !g.IsCollision(step.X, step.Y) {
			return dir, true
		}
	}
	return randomStep(g, from, rng)
}

// strafeStep - шаг перпендикулярно главной оси до цели.
func strafeStep(g *domain.WorldGrid, from, target domain.Position, rng *rand.Rand) (domain.Direction, bool) {
	side := 1
	if rng.Intn(2) == 0 {
		side = -1
	}

	var candidates []domain.Direction
	if abs(target.X-from.X) >= abs(target.Y-from.Y) {
		candidates = []domain.Direction{{Dy: side}, {Dy: -side}}
	} else {
		candidates = []domain.Direction{{Dx: side}, {Dx: -side}}
	}

	for _, dir := range candidates {
		if step := from.Shift(dir.Dx, dir.Dy); !g.IsCollision(step.X, step.Y) {
			return dir, true
		}
	}
	return domain.Direction{}, false
}

func randomStep(g *domain.WorldGrid, from domain.Position, rng *rand.Rand) (domain.Direction, bool) {
	dir := domain.AllDirections[rng.Intn(len(domain.AllDirections))]
	if step := from.Shift(dir.Dx, dir.Dy); !g.IsCollision(step.X, step.Y) {
		return dir, true
	}
	return domain.Direction{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
