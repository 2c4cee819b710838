package objects

import "github.com/The404Studios/outcasted/internal/domain"

// Символы стандартных эффектов.
const (
	ImpactSymbol = '*'
	BloodSymbol  = 'x'
)

// VisualEffect - чисто косметическая вспышка на карте (попадание,
// кровь). На геймплей не влияет, но живет в пуле по общему контракту.
type VisualEffect struct {
	Pos      domain.Position
	Symbol   rune
	Duration int // в тиках
	Elapsed  int

	active bool
}

// NewVisualEffect - фабрика для пула.
func NewVisualEffect() *VisualEffect {
	return &VisualEffect{}
}

// Initialize задает вид и время жизни эффекта.
func (e *VisualEffect) Initialize(pos domain.Position, symbol rune, duration int) {
	e.Pos = pos
	e.Symbol = symbol
	e.Duration = duration
	e.Elapsed = 0
}

func (e *VisualEffect) IsActive() bool { return e.active }
func (e *VisualEffect) Activate()      { e.active = true }
func (e *VisualEffect) Deactivate()    { e.active = false }

// Update тикает таймер жизни.
func (e *VisualEffect) Update() {
	if !e.active {
		return
	}
	e.Elapsed++
	if e.Elapsed >= e.Duration {
		e.Deactivate()
	}
}

// Render рисует эффект поверх тайлов.
func (e *VisualEffect) Render(grid *domain.WorldGrid) {
	grid.SetTile(e.Pos.X, e.Pos.Y, e.Symbol)
}

func (e *VisualEffect) Reset() {
	*e = VisualEffect{}
}
