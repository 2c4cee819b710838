package objects

import (
	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/internal/pool"
)

// Размеры пулов (начальный / максимальный).
const (
	ProjectilePoolInitial = 50
	ProjectilePoolMax     = 200

	LootPoolInitial = 20
	LootPoolMax     = 50

	EffectPoolInitial = 20
	EffectPoolMax     = 50
)

// ImpactEffectDuration - время жизни вспышки попадания, в тиках.
const ImpactEffectDuration = 3

// Manager владеет тремя пулами транзиентных объектов рейда.
type Manager struct {
	projectiles *pool.ObjectPool[*Projectile]
	loot        *pool.ObjectPool[*LootContainer]
	effects     *pool.ObjectPool[*VisualEffect]
}

// NewManager создает менеджер с пулами штатных размеров.
func NewManager() *Manager {
	return &Manager{
		projectiles: pool.New[*Projectile](ProjectilePoolInitial, ProjectilePoolMax, NewProjectile),
		loot:        pool.New[*LootContainer](LootPoolInitial, LootPoolMax, NewLootContainer),
		effects:     pool.New[*VisualEffect](EffectPoolInitial, EffectPoolMax, NewVisualEffect),
	}
}

// GetProjectile выдает активированный снаряд из пула.
func (m *Manager) GetProjectile() *Projectile {
	return m.projectiles.Get()
}

// GetLootContainer выдает активированный контейнер из пула.
func (m *Manager) GetLootContainer() *LootContainer {
	return m.loot.Get()
}

// GetEffect выдает активированный эффект из пула.
func (m *Manager) GetEffect() *VisualEffect {
	return m.effects.Get()
}

// SpawnImpact - вспышка попадания в клетке.
func (m *Manager) SpawnImpact(pos domain.Position) {
	fx := m.effects.Get()
	fx.Initialize(pos, ImpactSymbol, ImpactEffectDuration)
}

// SpawnBlood - след попадания по живой цели.
func (m *Manager) SpawnBlood(pos domain.Position) {
	fx := m.effects.Get()
	fx.Initialize(pos, BloodSymbol, ImpactEffectDuration)
}

// Update продвигает снаряды и эффекты. Контейнеры статичны и не тикают.
func (m *Manager) Update() {
	m.projectiles.Update()
	m.effects.Update()
}

// Render рисует все активные объекты: лут под снарядами, эффекты сверху.
func (m *Manager) Render(grid *domain.WorldGrid) {
	m.loot.Render(grid)
	m.projectiles.Render(grid)
	m.effects.Render(grid)
}

// Reset возвращает все пулы (деактивация без сброса).
func (m *Manager) Reset() {
	m.projectiles.ReturnAll()
	m.loot.ReturnAll()
	m.effects.ReturnAll()
}

// ActiveProjectiles - снимок активных снарядов для хит-тестов.
func (m *Manager) ActiveProjectiles() []*Projectile {
	return m.projectiles.GetActiveObjects()
}

// ActiveLootContainers - снимок активных контейнеров.
func (m *Manager) ActiveLootContainers() []*LootContainer {
	return m.loot.GetActiveObjects()
}

// ActiveEffects - снимок активных эффектов (для снапшота клиенту).
func (m *Manager) ActiveEffects() []*VisualEffect {
	return m.effects.GetActiveObjects()
}

// LootContainerAt ищет активный контейнер в клетке. nil - если пусто.
func (m *Manager) LootContainerAt(pos domain.Position) *LootContainer {
	for _, c := range m.loot.GetActiveObjects() {
		if c.Pos == pos {
			return c
		}
	}
	return nil
}
