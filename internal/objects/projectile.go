package objects

import "github.com/The404Studios/outcasted/internal/domain"

// Projectile - снаряд, летящий по прямой: одна клетка за тик вдоль
// единичного вектора направления.
//
// Снаряд НЕ проверяет попадания сам. Потребители (менеджер врагов,
// игрок) сканируют активные снаряды на совпадение позиций. Снаряд,
// достигший максимальной дальности, деактивируется при продвижении -
// ДО проверки попаданий этого же тика, поэтому на терминальном тике
// урона он не наносит.
type Projectile struct {
	Pos    domain.Position
	Dx, Dy int

	Damage   int
	MaxRange int
	Traveled int

	// FromPlayer: true - снаряд игрока (бьет врагов и геометрию),
	// false - вражеский (бьет только клетку игрока).
	FromPlayer bool

	active bool
}

// NewProjectile - фабрика для пула. Снаряд создается неактивным.
func NewProjectile() *Projectile {
	return &Projectile{}
}

// Initialize задает параметры полета. Вызывается сразу после Get() из пула.
func (p *Projectile) Initialize(pos domain.Position, dx, dy, damage, maxRange int, fromPlayer bool) {
	p.Pos = pos
	p.Dx = dx
	p.Dy = dy
	p.Damage = damage
	p.MaxRange = maxRange
	p.Traveled = 0
	p.FromPlayer = fromPlayer
}

func (p *Projectile) IsActive() bool { return p.active }
func (p *Projectile) Activate()      { p.active = true }
func (p *Projectile) Deactivate()    { p.active = false }

// Update продвигает снаряд на одну клетку и гасит его на пределе дальности.
func (p *Projectile) Update() {
	if !p.active {
		return
	}
	p.Pos.X += p.Dx
	p.Pos.Y += p.Dy
	p.Traveled++

	if p.Traveled >= p.MaxRange {
		p.Deactivate()
	}
}

// Render рисует снаряд символом по направлению полета.
func (p *Projectile) Render(grid *domain.WorldGrid) {
	grid.SetTile(p.Pos.X, p.Pos.Y, p.symbol())
}

func (p *Projectile) symbol() rune {
	switch {
	case p.Dx == 0:
		return '|'
	case p.Dy == 0:
		return '-'
	case p.Dx == p.Dy:
		return '\\'
	default:
		return '/'
	}
}

// Reset возвращает снаряд к нулевому состоянию перед переиспользованием.
func (p *Projectile) Reset() {
	*p = Projectile{}
}
