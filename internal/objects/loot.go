package objects

import "github.com/The404Studios/outcasted/internal/domain"

// LootContainer - контейнер с добычей (труп, ящик, схрон).
// Контейнер статичен: Update для него - no-op, из пула он обновляется
// только ради общего контракта.
//
// Инвариант: контейнер деактивируется В ТОМ ЖЕ вызове, который забрал
// последний предмет. Отдельного Deactivate снаружи не требуется.
type LootContainer struct {
	Pos   domain.Position
	Name  string
	Items []*domain.Item

	active bool
}

// NewLootContainer - фабрика для пула.
func NewLootContainer() *LootContainer {
	return &LootContainer{}
}

// Initialize задает позицию, имя и содержимое.
func (c *LootContainer) Initialize(pos domain.Position, name string, items []*domain.Item) {
	c.Pos = pos
	c.Name = name
	c.Items = items
}

func (c *LootContainer) IsActive() bool { return c.active }
func (c *LootContainer) Activate()      { c.active = true }
func (c *LootContainer) Deactivate()    { c.active = false }

// Update - контейнеры не двигаются и не стареют.
func (c *LootContainer) Update() {}

// Render рисует контейнер.
func (c *LootContainer) Render(grid *domain.WorldGrid) {
	grid.SetTile(c.Pos.X, c.Pos.Y, '&')
}

func (c *LootContainer) Reset() {
	*c = LootContainer{}
}

// TakeItem забирает предмет по индексу. Неверный индекс - nil, без паники.
// Опустевший контейнер гаснет немедленно.
func (c *LootContainer) TakeItem(index int) *domain.Item {
	if index < 0 || index >= len(c.Items) {
		return nil
	}

	item := c.Items[index]
	c.Items = append(c.Items[:index], c.Items[index+1:]...)

	if len(c.Items) == 0 {
		c.Deactivate()
	}
	return item
}

// AddItem докладывает предмет в контейнер.
func (c *LootContainer) AddItem(item *domain.Item) {
	if item == nil {
		return
	}
	c.Items = append(c.Items, item)
}

// IsEmpty проверяет, пуст ли контейнер.
func (c *LootContainer) IsEmpty() bool {
	return len(c.Items) == 0
}
