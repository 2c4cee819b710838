// Package pool реализует пул переиспользуемых объектов фиксированной емкости.
//
// Цель - ноль аллокаций в steady-state: снаряды, эффекты и контейнеры
// переживают тысячи циклов активации без участия GC.
package pool

import "github.com/The404Studios/outcasted/internal/domain"

// ObjectPool хранит объекты одного типа и переиспользует неактивные.
type ObjectPool[T domain.Poolable] struct {
	items   []T
	max     int
	factory func() T
}

// New создает пул: initial объектов преаллоцируется сразу, max - жесткий
// потолок. factory обязан возвращать объект в неактивном состоянии.
func New[T domain.Poolable](initial, max int, factory func() T) *ObjectPool[T] {
	if max < initial {
		max = initial
	}

	p := &ObjectPool[T]{
		items:   make([]T, 0, max),
		max:     max,
		factory: factory,
	}
	for i := 0; i < initial; i++ {
		p.items = append(p.items, factory())
	}
	return p
}

// Get возвращает активированный объект. Порядок попыток:
//
//  1. первый неактивный объект линейным сканом - реактивация на месте;
//  2. если пул ниже потолка - новый объект добавляется в конец;
//  3. пул насыщен - слот 0 принудительно сбрасывается и переиспользуется.
//
// Шаг 3 НЕ является настоящим LRU: жертвой всегда падает индекс 0,
// независимо от возраста. Это намеренный O(1)-фолбэк, поведение
// сохранено в точности. Get никогда не возвращает ошибку.
func (p *ObjectPool[T]) Get() T {
	for _, item := range p.items {
		if !item.IsActive() {
			item.Reset()
			item.Activate()
			return item
		}
	}

	if len(p.items) < p.max {
		item := p.factory()
		item.Activate()
		p.items = append(p.items, item)
		return item
	}

	victim := p.items[0]
	victim.Reset()
	victim.Activate()
	return victim
}

// ReturnAll деактивирует все объекты БЕЗ сброса состояния.
// Сброс произойдет при следующей активации через Get.
func (p *ObjectPool[T]) ReturnAll() {
	for _, item := range p.items {
		item.Deactivate()
	}
}

// Update продвигает только активные объекты.
func (p *ObjectPool[T]) Update() {
	for _, item := range p.items {
		if item.IsActive() {
			item.Update()
		}
	}
}

// Render рисует только активные объекты.
func (p *ObjectPool[T]) Render(grid *domain.WorldGrid) {
	for _, item := range p.items {
		if item.IsActive() {
			item.Render(grid)
		}
	}
}

// GetActiveObjects возвращает срез-снимок активных объектов.
func (p *ObjectPool[T]) GetActiveObjects() []T {
	active := make([]T, 0, len(p.items))
	for _, item := range p.items {
		if item.IsActive() {
			active = append(active, item)
		}
	}
	return active
}

// ActiveCount - число активных объектов.
func (p *ObjectPool[T]) ActiveCount() int {
	n := 0
	for _, item := range p.items {
		if item.IsActive() {
			n++
		}
	}
	return n
}

// Size - текущее число объектов в пуле (активных и нет).
func (p *ObjectPool[T]) Size() int {
	return len(p.items)
}
