package domain

// BaseInventoryCapacity - вместимость инвентаря на 1-м уровне.
const BaseInventoryCapacity = 20

// QuickSlotCount - число быстрых слотов.
const QuickSlotCount = 5

// XPPerLevel - опыта на уровень. level = 1 + XP/XPPerLevel.
const XPPerLevel = 1000

// Player - состояние оперативника. Создается один раз на процесс;
// при старте рейда сбрасывается все, КРОМЕ уровня и опыта.
type Player struct {
	Pos Position `json:"pos"`

	Health    int `json:"health"`
	MaxHealth int `json:"maxHealth"`

	Level      int `json:"level"`
	Experience int `json:"experience"`
	KillCount  int `json:"killCount"`

	// Inventory - упорядоченная коллекция, емкость растет с уровнем.
	Inventory         []*Item `json:"inventory"`
	InventoryCapacity int     `json:"inventoryCapacity"`

	// EquippedArmor - надетая броня (отдельно от инвентаря).
	EquippedArmor []*Item `json:"equippedArmor"`

	// Weapons - оружие с индексом выбранного ствола.
	Weapons       []*Item `json:"weapons"`
	CurrentWeapon int     `json:"currentWeapon"`

	// QuickSlots ссылаются на предметы инвентаря ПО ИДЕНТИЧНОСТИ (не копии).
	QuickSlots [QuickSlotCount]*Item `json:"-"`

	// LastShotTick - тик последнего выстрела (кулдаун оружия).
	LastShotTick int `json:"-"`
}

// NewPlayer создает оперативника 1-го уровня.
func NewPlayer() *Player {
	return &Player{
		Health:            100,
		MaxHealth:         100,
		Level:             1,
		InventoryCapacity: BaseInventoryCapacity,
		CurrentWeapon:     -1,
	}
}

// ResetForRaid готовит оперативника к новому рейду.
// Уровень и опыт сохраняются, все остальное обнуляется.
func (p *Player) ResetForRaid(spawn Position) {
	p.Pos = spawn
	p.Health = p.MaxHealth
	p.KillCount = 0
	p.Inventory = nil
	p.EquippedArmor = nil
	p.Weapons = nil
	p.CurrentWeapon = -1
	p.LastShotTick = 0
	for i := range p.QuickSlots {
		p.QuickSlots[i] = nil
	}
}

// TotalArmorRating суммирует защиту всей надетой брони.
func (p *Player) TotalArmorRating() int {
	total := 0
	for _, a := range p.EquippedArmor {
		if a != nil && a.Kind == ItemArmor {
			total += a.ArmorRating
		}
	}
	return total
}

// TakeDamage применяет урон с учетом брони:
// итог = max(1, raw - raw*armor/100). Броня никогда не гасит урон в ноль.
// Возвращает true, если оперативник погиб.
func (p *Player) TakeDamage(raw int) bool {
	if raw <= 0 {
		return false
	}

	mitigated := raw - raw*p.TotalArmorRating()/100
	if mitigated < 1 {
		mitigated = 1
	}

	p.Health -= mitigated
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// AddExperience начисляет опыт и применяет повышения уровня.
// Поддерживает скачки через несколько уровней за одно начисление:
// каждый полученный уровень дает +10 к макс. и текущему здоровью
// и +1 слот инвентаря.
func (p *Player) AddExperience(amount int) {
	if amount <= 0 {
		return
	}

	p.Experience += amount
	newLevel := 1 + p.Experience/XPPerLevel

	for p.Level < newLevel {
		p.Level++
		p.MaxHealth += 10
		p.Health += 10
		p.InventoryCapacity++
	}
}

// Heal восстанавливает здоровье, не превышая максимум.
func (p *Player) Heal(amount int) {
	if amount <= 0 {
		return
	}
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// AddItem кладет предмет в инвентарь. false - если места нет.
func (p *Player) AddItem(item *Item) bool {
	if item == nil {
		return false
	}
	if len(p.Inventory) >= p.InventoryCapacity {
		return false
	}
	p.Inventory = append(p.Inventory, item)
	return true
}

// RemoveItem убирает предмет из инвентаря по идентичности.
// Ссылки на него в быстрых слотах очищаются тут же.
func (p *Player) RemoveItem(item *Item) bool {
	for i, it := range p.Inventory {
		if it == item {
			p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			for s := range p.QuickSlots {
				if p.QuickSlots[s] == item {
					p.QuickSlots[s] = nil
				}
			}
			return true
		}
	}
	return false
}

// FindItemByName ищет предмет по имени. nil - если не найден.
func (p *Player) FindItemByName(name string) *Item {
	for _, it := range p.Inventory {
		if it.Name == name {
			return it
		}
	}
	return nil
}

// CollectedValue - суммарная стоимость ценностей в инвентаре.
// Нужна трекеру задач CollectValue.
func (p *Player) CollectedValue() int {
	total := 0
	for _, it := range p.Inventory {
		if it.Kind == ItemValuable {
			total += it.Value
		}
	}
	return total
}

// EquipArmor надевает броню из инвентаря.
func (p *Player) EquipArmor(item *Item) bool {
	if item == nil || item.Kind != ItemArmor {
		return false
	}
	if !p.RemoveItem(item) {
		return false
	}
	p.EquippedArmor = append(p.EquippedArmor, item)
	return true
}

// AddWeapon добавляет оружие. Первый ствол выбирается автоматически.
func (p *Player) AddWeapon(weapon *Item) bool {
	if weapon == nil || weapon.Kind != ItemWeapon {
		return false
	}
	p.Weapons = append(p.Weapons, weapon)
	if p.CurrentWeapon < 0 {
		p.CurrentWeapon = 0
	}
	return true
}

// ActiveWeapon возвращает выбранное оружие или nil.
func (p *Player) ActiveWeapon() *Item {
	if p.CurrentWeapon < 0 || p.CurrentWeapon >= len(p.Weapons) {
		return nil
	}
	return p.Weapons[p.CurrentWeapon]
}

// SelectWeapon переключает оружие. Неверный индекс игнорируется.
func (p *Player) SelectWeapon(index int) bool {
	if index < 0 || index >= len(p.Weapons) {
		return false
	}
	p.CurrentWeapon = index
	return true
}

// AssignQuickSlot привязывает предмет инвентаря к быстрому слоту.
func (p *Player) AssignQuickSlot(slot int, item *Item) bool {
	if slot < 0 || slot >= QuickSlotCount {
		return false
	}
	if item != nil {
		found := false
		for _, it := range p.Inventory {
			if it == item {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	p.QuickSlots[slot] = item
	return true
}

// QuickSlot возвращает предмет слота или nil при неверном индексе.
func (p *Player) QuickSlot(slot int) *Item {
	if slot < 0 || slot >= QuickSlotCount {
		return nil
	}
	return p.QuickSlots[slot]
}
