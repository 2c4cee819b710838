package domain

// ItemKind - закрытый набор видов предметов.
// Вместо рантайм-проверок типов везде используется исчерпывающий switch по Kind.
type ItemKind uint8

const (
	ItemUnknown ItemKind = iota
	ItemWeapon
	ItemArmor
	ItemMedkit
	ItemAmmo
	ItemValuable
)

var itemKindNames = map[ItemKind]string{
	ItemWeapon:   "weapon",
	ItemArmor:    "armor",
	ItemMedkit:   "medkit",
	ItemAmmo:     "ammo",
	ItemValuable: "valuable",
}

// String реализует интерфейс Stringer (для fmt.Printf и JSON-логов)
func (k ItemKind) String() string {
	if name, ok := itemKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Item - тегированный вариант. Заполнены только поля своего Kind,
// остальные остаются нулевыми и в JSON не попадают.
type Item struct {
	ID   string   `json:"id"`
	Kind ItemKind `json:"kind"`
	Name string   `json:"name"`

	// Оружие
	Damage       int `json:"damage,omitempty"`
	FireRate     int `json:"fireRate,omitempty"` // кулдаун между выстрелами, в тиках
	Spread       int `json:"spread,omitempty"`   // 0 - крест, 1 - роза, >=2 - "бесплатный" крест
	Range        int `json:"range,omitempty"`    // дальность снаряда в клетках
	MagazineSize int `json:"magazineSize,omitempty"`
	Loaded       int `json:"loaded,omitempty"` // патронов в магазине сейчас

	// Броня
	ArmorRating int `json:"armorRating,omitempty"`

	// Аптечка
	HealAmount int `json:"healAmount,omitempty"`

	// Патроны
	WeaponTag string `json:"weaponTag,omitempty"` // имя оружия, к которому подходят
	Count     int    `json:"count,omitempty"`     // патронов в стаке

	// Ценность
	Value int `json:"value,omitempty"`
}

// Price возвращает стоимость предмета. Единая точка оценки,
// исчерпывающая по всем видам.
func (it *Item) Price() int {
	if it == nil {
		return 0
	}
	switch it.Kind {
	case ItemWeapon:
		return it.Damage*10 + it.Range*2
	case ItemArmor:
		return it.ArmorRating * 8
	case ItemMedkit:
		return it.HealAmount * 3
	case ItemAmmo:
		return it.Count
	case ItemValuable:
		return it.Value
	default:
		return 0
	}
}

// Symbol возвращает символ предмета для косметического слоя.
func (it *Item) Symbol() rune {
	if it == nil {
		return '?'
	}
	switch it.Kind {
	case ItemWeapon:
		return 'w'
	case ItemArmor:
		return ']'
	case ItemMedkit:
		return '+'
	case ItemAmmo:
		return '='
	case ItemValuable:
		return '$'
	default:
		return '?'
	}
}
