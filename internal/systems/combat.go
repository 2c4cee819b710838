package systems

import "github.com/The404Studios/outcasted/internal/domain"

// MitigateDamage применяет поглощение брони к входящему урону.
// Броня срезает целые проценты, но любой удар оставляет минимум 1 HP урона.
func MitigateDamage(raw, armorRating int) int {
	mitigated := raw - raw*armorRating/100
	if mitigated < 1 {
		mitigated = 1
	}
	return mitigated
}

// AimAt возвращает единичное направление выстрела по знакам дельт.
// Стрелок не упреждает движение цели - целится в её текущую клетку.
func AimAt(from, target domain.Position) domain.Direction {
	dx, dy := from.DirectionTo(target)
	return domain.Direction{Dx: dx, Dy: dy}
}
