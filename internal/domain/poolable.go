package domain

// Poolable - контракт переиспользуемого объекта.
// Пул никогда не создает мусор в steady-state: неактивный объект
// полностью сбрасывается (Reset) перед повторной активацией.
type Poolable interface {
	IsActive() bool
	Activate()
	Deactivate()

	// Update продвигает объект на один тик.
	Update()

	// Render рисует объект в косметический слой карты.
	// Симуляцию менять запрещено.
	Render(grid *WorldGrid)

	// Reset возвращает объект к нулевому состоянию для переиспользования.
	Reset()
}
