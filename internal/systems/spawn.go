package systems

import (
	"math/rand"

	"github.com/The404Studios/outcasted/internal/domain"
)

// MaxSpawnBias - потолок смещения таблицы спавна в пользу тяжёлых классов.
const MaxSpawnBias = 30

// RollEnemyClass выбирает класс врага по взвешенной таблице.
// С ростом уровня оперативника вес обычных мусорщиков перетекает к трём
// опасным классам поровну; смещение растёт на 3 за уровень до потолка.
//
//	класс         базовый вес   с учётом смещения b
//	Мусорщик      55            55 - b
//	Тяжёлый       25            25 + b/3
//	Снайпер       12            12 + b/3
//	Бегун          8             8 + b/3
func RollEnemyClass(playerLevel int, rng *rand.Rand) domain.EnemyClass {
	bias := playerLevel * 3
	if bias > MaxSpawnBias {
		bias = MaxSpawnBias
	}

	weights := [...]struct {
		class  domain.EnemyClass
		weight int
	}{
		{domain.EnemyScav, 55 - bias},
		{domain.EnemyHeavyScav, 25 + bias/3},
		{domain.EnemySniper, 12 + bias/3},
		{domain.EnemyRusher, 8 + bias/3},
	}

	total := 0
	for _, w := range weights {
		total += w.weight
	}

	roll := rng.Intn(total)
	for _, w := range weights {
		roll -= w.weight
		if roll < 0 {
			return w.class
		}
	}
	return domain.EnemyScav
}

// MoveInterval - пауза между ходами врага, в тиках.
func MoveInterval(class domain.EnemyClass, rng *rand.Rand) int {
	switch class {
	case domain.EnemyHeavyScav:
		return 12 + rng.Intn(5)
	case domain.EnemySniper:
		return 10 + rng.Intn(5)
	case domain.EnemyRusher:
		return 5 + rng.Intn(3)
	default:
		return 8 + rng.Intn(4)
	}
}

// ShootInterval - пауза между выстрелами врага, в тиках.
func ShootInterval(class domain.EnemyClass, rng *rand.Rand) int {
	switch class {
	case domain.EnemyHeavyScav:
		return 25 + rng.Intn(6)
	case domain.EnemySniper:
		return 40 + rng.Intn(11)
	case domain.EnemyRusher:
		return 15 + rng.Intn(6)
	default:
		return 20 + rng.Intn(6)
	}
}
