package worldgen

import (
	"math/rand"

	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/pkg/utils"
)

// WeaponTemplate - шаблон ствола. Spawn создает готовый предмет
// с полным магазином.
type WeaponTemplate struct {
	Name         string
	Damage       int
	FireRate     int // кулдаун в тиках
	Spread       int
	Range        int
	MagazineSize int
}

// Spawn создает оружие из шаблона.
func (t WeaponTemplate) Spawn(rng *rand.Rand) *domain.Item {
	return &domain.Item{
		ID:           utils.GenerateDeterministicID(rng, "w_"),
		Kind:         domain.ItemWeapon,
		Name:         t.Name,
		Damage:       t.Damage,
		FireRate:     t.FireRate,
		Spread:       t.Spread,
		Range:        t.Range,
		MagazineSize: t.MagazineSize,
		Loaded:       t.MagazineSize,
	}
}

// --- ОРУЖИЕ ---

var Pistol = WeaponTemplate{
	Name: "ПМ", Damage: 15, FireRate: 6, Spread: 0, Range: 12, MagazineSize: 8,
}

var Shotgun = WeaponTemplate{
	Name: "Обрез", Damage: 25, FireRate: 12, Spread: 1, Range: 6, MagazineSize: 2,
}

var Rifle = WeaponTemplate{
	Name: "АК-74", Damage: 30, FireRate: 8, Spread: 0, Range: 20, MagazineSize: 30,
}

// Шквал - экспериментальный ствол с экстремальным разбросом.
// Spread >= 2 дает "бесплатный" крест: патроны не тратятся.
var Storm = WeaponTemplate{
	Name: "Шквал", Damage: 10, FireRate: 3, Spread: 2, Range: 10, MagazineSize: 50,
}

// AllWeapons - весь арсенал для дропов и схронов.
var AllWeapons = []WeaponTemplate{Pistol, Shotgun, Rifle, Storm}

// AmmoFor создает стак патронов, подходящий к конкретному оружию.
// Привязка - по имени ствола (WeaponTag).
func AmmoFor(rng *rand.Rand, weaponName string, count int) *domain.Item {
	return &domain.Item{
		ID:        utils.GenerateDeterministicID(rng, "a_"),
		Kind:      domain.ItemAmmo,
		Name:      "Патроны (" + weaponName + ")",
		WeaponTag: weaponName,
		Count:     count,
	}
}

// --- РАСХОДНИКИ И БРОНЯ ---

// SmallMedkit создает малую аптечку.
func SmallMedkit(rng *rand.Rand) *domain.Item {
	return &domain.Item{
		ID:         utils.GenerateDeterministicID(rng, "m_"),
		Kind:       domain.ItemMedkit,
		Name:       "Аптечка АИ-2",
		HealAmount: 25,
	}
}

// LargeMedkit создает армейскую аптечку.
func LargeMedkit(rng *rand.Rand) *domain.Item {
	return &domain.Item{
		ID:         utils.GenerateDeterministicID(rng, "m_"),
		Kind:       domain.ItemMedkit,
		Name:       "Армейская аптечка",
		HealAmount: 60,
	}
}

type armorTemplate struct {
	Name   string
	Rating int
}

var armorTemplates = []armorTemplate{
	{"Разгрузка", 10},
	{"Бронежилет 6Б2", 25},
	{"Штурмовой бронежилет", 40},
}

// RandomArmor создает случайную броню.
func RandomArmor(rng *rand.Rand) *domain.Item {
	t := armorTemplates[rng.Intn(len(armorTemplates))]
	return &domain.Item{
		ID:          utils.GenerateDeterministicID(rng, "ar_"),
		Kind:        domain.ItemArmor,
		Name:        t.Name,
		ArmorRating: t.Rating,
	}
}

type valuableTemplate struct {
	Name  string
	Value int
}

var valuableTemplates = []valuableTemplate{
	{"Золотые часы", 120},
	{"Серебряная цепочка", 60},
	{"Старинная монета", 40},
	{"Военный жетон", 25},
	{"Топливный фильтр", 80},
}

// RandomValuable создает случайную ценность.
func RandomValuable(rng *rand.Rand) *domain.Item {
	t := valuableTemplates[rng.Intn(len(valuableTemplates))]
	return &domain.Item{
		ID:    utils.GenerateDeterministicID(rng, "v_"),
		Kind:  domain.ItemValuable,
		Name:  t.Name,
		Value: t.Value,
	}
}

// ValuableNames - имена ценностей. Нужны генератору задач FindItem.
func ValuableNames() []string {
	names := make([]string, len(valuableTemplates))
	for i, t := range valuableTemplates {
		names[i] = t.Name
	}
	return names
}

// StarterKit - снаряжение, с которым оперативник заходит в рейд.
func StarterKit(rng *rand.Rand) (weapon *domain.Item, extras []*domain.Item) {
	weapon = Pistol.Spawn(rng)
	extras = []*domain.Item{
		AmmoFor(rng, Pistol.Name, 16),
		SmallMedkit(rng),
	}
	return weapon, extras
}
