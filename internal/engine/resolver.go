package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/internal/objects"
	"github.com/The404Studios/outcasted/internal/systems"
	"github.com/The404Studios/outcasted/pkg/utils"
	"github.com/The404Studios/outcasted/pkg/worldgen"
)

// Разбор намерений игрока. Все действия молча игнорируются вне
// активного рейда; недопустимые индексы - сентинелы, не ошибки.

// ExtractionBonusXP - премия за живой выход из рейда.
const ExtractionBonusXP = 300

// Наполнение одноразовых объектов карты.
const (
	CacheAmmoMin = 10
	CacheAmmoMax = 20
	SpringHealHP = 15
)

// Move шагает на (dx,dy), если клетка проходима. Шаг в контейнер с лутом
// сразу перекладывает содержимое в инвентарь, шаг на интерактивный объект
// карты срабатывает как его использование.
func (r *Raid) Move(dx, dy int) {
	if r.state != RaidActive {
		return
	}

	res := systems.CalculateMove(r.Grid, r.Player.Pos, dx, dy)
	if !res.Moved {
		return
	}
	r.Player.Pos = res.Pos

	if c := r.Objects.LootContainerAt(res.Pos); c != nil {
		r.pickupLoot(c)
	}
	if f := r.Grid.GetFeatureAt(res.Pos.X, res.Pos.Y); f != nil {
		r.useFeature(f)
	}
}

// useFeature отрабатывает интерактивные флаги объекта под ногами.
// Схрон и родник одноразовые: после использования клетка очищается.
func (r *Raid) useFeature(f *domain.MapFeature) {
	switch {
	case f.AmmoCache:
		w := r.Player.ActiveWeapon()
		if w == nil {
			return
		}
		stack := worldgen.AmmoFor(r.rng, w.Name, utils.RandRange(r.rng, CacheAmmoMin, CacheAmmoMax))
		if !r.Player.AddItem(stack) {
			return
		}
		name := f.Name
		r.Grid.RemoveFeatureAt(f.Pos.X, f.Pos.Y)
		r.Messages.Push(r.tick, fmt.Sprintf("%s вскрыт: +%d патронов", name, stack.Count), domain.LogLoot)

	case f.Healing:
		if r.Player.Health >= r.Player.MaxHealth {
			return
		}
		name := f.Name
		r.Grid.RemoveFeatureAt(f.Pos.X, f.Pos.Y)
		r.Player.Heal(SpringHealHP)
		r.Messages.Push(r.tick, fmt.Sprintf("%s: +%d HP", name, SpringHealHP), domain.LogInfo)
	}
}

// Shoot выпускает веер снарядов по раскладке разброса оружия:
// 0 - крест из 4 за 1 патрон, 1 - роза из 8 за 1 патрон,
// >=2 - крест из 4 вообще без расхода ("бесплатный" режим).
func (r *Raid) Shoot() {
	if r.state != RaidActive {
		return
	}

	w := r.Player.ActiveWeapon()
	if w == nil {
		r.Messages.Push(r.tick, "Нет оружия в руках!", domain.LogError)
		return
	}
	if w.Loaded <= 0 {
		r.Messages.Push(r.tick, "Нет патронов! Нужна перезарядка.", domain.LogError)
		return
	}
	if r.tick-r.Player.LastShotTick < w.FireRate {
		return
	}

	dirs := domain.CardinalDirections
	if w.Spread == 1 {
		dirs = domain.AllDirections
	}

	w.Loaded--
	if w.Spread >= 2 {
		w.Loaded++
	}

	for _, dir := range dirs {
		proj := r.Objects.GetProjectile()
		proj.Initialize(r.Player.Pos, dir.Dx, dir.Dy, w.Damage, w.Range, true)
	}
	r.Player.LastShotTick = r.tick
}

// Reload переливает патроны из первого подходящего стака инвентаря.
// Стак, опустевший до нуля, исчезает из инвентаря.
func (r *Raid) Reload() {
	if r.state != RaidActive {
		return
	}

	w := r.Player.ActiveWeapon()
	if w == nil {
		return
	}
	deficit := w.MagazineSize - w.Loaded
	if deficit <= 0 {
		return
	}

	for _, it := range r.Player.Inventory {
		if it.Kind != domain.ItemAmmo || it.WeaponTag != w.Name {
			continue
		}

		n := it.Count
		if n > deficit {
			n = deficit
		}
		w.Loaded += n
		it.Count -= n
		if it.Count <= 0 {
			r.Player.RemoveItem(it)
		}

		r.Messages.Push(r.tick, fmt.Sprintf("%s перезаряжен (+%d)", w.Name, n), domain.LogInfo)
		return
	}
	r.Messages.Push(r.tick, "Нет подходящих патронов.", domain.LogError)
}

// SelectWeapon переключает активный ствол.
func (r *Raid) SelectWeapon(index int) {
	if r.state != RaidActive {
		return
	}
	if r.Player.SelectWeapon(index) {
		r.Messages.Push(r.tick, fmt.Sprintf("В руках: %s", r.Player.ActiveWeapon().Name), domain.LogInfo)
	}
}

// UseQuickSlot применяет предмет из быстрого слота. Сейчас осмысленное
// применение есть только у аптечек; остальное молча игнорируется.
func (r *Raid) UseQuickSlot(slot int) {
	if r.state != RaidActive {
		return
	}

	item := r.Player.QuickSlot(slot)
	if item == nil {
		return
	}

	if item.Kind == domain.ItemMedkit {
		r.Player.Heal(item.HealAmount)
		r.Player.RemoveItem(item)
		r.Messages.Push(r.tick, fmt.Sprintf("%s использован (+%d HP)", item.Name, item.HealAmount), domain.LogInfo)
	}
}

// Extract завершает рейд, если оперативник стоит на точке эвакуации.
func (r *Raid) Extract() {
	if r.state != RaidActive {
		return
	}

	if !r.Grid.IsExtractionPoint(r.Player.Pos.X, r.Player.Pos.Y) {
		r.Messages.Push(r.tick, "Здесь нет точки эвакуации.", domain.LogError)
		return
	}

	r.state = RaidExtracted
	r.Player.AddExperience(ExtractionBonusXP)
	r.Messages.Push(r.tick, fmt.Sprintf("Эвакуация успешна (+%d опыта). Рейд завершен.", ExtractionBonusXP), domain.LogInfo)
	r.log.WithFields(logrus.Fields{
		"tick":  r.tick,
		"kills": r.Player.KillCount,
		"value": r.Player.CollectedValue(),
	}).Info("Player extracted")
}

// pickupLoot перекладывает контейнер в инвентарь: оружие - в арсенал,
// броня - сразу на себя, остальное - в рюкзак до упора по емкости.
// Контейнер гаснет сам, как только пустеет.
func (r *Raid) pickupLoot(c *objects.LootContainer) {
	i := 0
	for i < len(c.Items) {
		item := c.Items[i]

		var taken bool
		switch item.Kind {
		case domain.ItemWeapon:
			taken = r.Player.AddWeapon(item)
		case domain.ItemArmor:
			// через инвентарь, чтобы работал предел емкости
			if r.Player.AddItem(item) {
				taken = r.Player.EquipArmor(item)
			}
		default:
			taken = r.Player.AddItem(item)
		}

		if !taken {
			i++
			continue
		}
		c.TakeItem(i)
		r.Messages.Push(r.tick, fmt.Sprintf("Подобрано: %s", item.Name), domain.LogLoot)
	}
}
