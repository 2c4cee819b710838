package worldgen

import (
	"math/rand"

	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/pkg/utils"
)

// WeaponDropChance - шанс (в процентах) дропа оружия с не-скавов.
const WeaponDropChance = 8

// RollEnemyLoot собирает добычу с убитого врага.
//
// Правила:
//   - малый стак патронов падает ВСЕГДА;
//   - аптечка, ценность и броня - вероятностно, от базового
//     шанса класса (броня - вдвое реже);
//   - оружие с подходящими патронами - редкий дроп, только не со скавов.
func RollEnemyLoot(class domain.EnemyClass, rng *rand.Rand) []*domain.Item {
	chance := class.BaseLootChance()

	loot := []*domain.Item{
		AmmoFor(rng, AllWeapons[rng.Intn(len(AllWeapons))].Name, utils.RandRange(rng, 5, 15)),
	}

	if rng.Intn(100) < chance {
		loot = append(loot, SmallMedkit(rng))
	}
	if rng.Intn(100) < chance {
		loot = append(loot, RandomValuable(rng))
	}
	if rng.Intn(100) < chance/2 {
		loot = append(loot, RandomArmor(rng))
	}

	if class != domain.EnemyScav && rng.Intn(100) < WeaponDropChance {
		weapon := AllWeapons[rng.Intn(len(AllWeapons))]
		loot = append(loot,
			weapon.Spawn(rng),
			AmmoFor(rng, weapon.Name, utils.RandRange(rng, 10, 20)),
		)
	}

	return loot
}
