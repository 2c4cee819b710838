package domain

// EnemyClass - тип врага. Назначается один раз при спавне и не меняется.
type EnemyClass uint8

const (
	EnemyScav EnemyClass = iota
	EnemyHeavyScav
	EnemySniper
	EnemyRusher
)

var enemyClassNames = map[EnemyClass]string{
	EnemyScav:      "Scav",
	EnemyHeavyScav: "HeavyScav",
	EnemySniper:    "Sniper",
	EnemyRusher:    "Rusher",
}

func (c EnemyClass) String() string {
	if name, ok := enemyClassNames[c]; ok {
		return name
	}
	return "Scav"
}

// Symbol - символ врага на карте.
func (c EnemyClass) Symbol() rune {
	switch c {
	case EnemyHeavyScav:
		return 'H'
	case EnemySniper:
		return 'S'
	case EnemyRusher:
		return 'R'
	default:
		return 's'
	}
}

// ViewRange - манхэттенский радиус обнаружения игрока.
// Пока игрок дальше - таймеры врага стоят, он "спит".
func (c EnemyClass) ViewRange() int {
	switch c {
	case EnemyHeavyScav:
		return 12
	case EnemySniper:
		return 30
	case EnemyRusher:
		return 20
	default:
		return 15
	}
}

// AttackRange - манхэттенский радиус, внутри которого враг стреляет.
func (c EnemyClass) AttackRange() int {
	switch c {
	case EnemySniper:
		return 20
	case EnemyHeavyScav:
		return 10
	case EnemyRusher:
		return 8
	default:
		return 12
	}
}

// Damage - урон одного снаряда.
func (c EnemyClass) Damage() int {
	switch c {
	case EnemySniper:
		return 35
	case EnemyHeavyScav:
		return 25
	case EnemyRusher:
		return 15
	default:
		return 20
	}
}

// ProjectileRange - дальность снаряда в клетках.
func (c EnemyClass) ProjectileRange() int {
	switch c {
	case EnemySniper:
		return 25
	case EnemyRusher:
		return 8
	default:
		return 15
	}
}

// MaxHealth - здоровье при спавне.
func (c EnemyClass) MaxHealth() int {
	switch c {
	case EnemyHeavyScav:
		return 120
	case EnemySniper:
		return 60
	case EnemyRusher:
		return 50
	default:
		return 80
	}
}

// RewardXP - опыт за убийство.
func (c EnemyClass) RewardXP() int {
	switch c {
	case EnemyHeavyScav:
		return 50
	case EnemySniper:
		return 75
	case EnemyRusher:
		return 100
	default:
		return 25
	}
}

// BaseLootChance - базовый шанс (в процентах) на каждый
// необязательный предмет в луте.
func (c EnemyClass) BaseLootChance() int {
	switch c {
	case EnemyHeavyScav:
		return 45
	case EnemySniper:
		return 55
	case EnemyRusher:
		return 35
	default:
		return 25
	}
}

// Enemy - состояние одного врага. Поведение считает internal/systems,
// исполняет менеджер врагов.
type Enemy struct {
	ID    string     `json:"id"`
	Class EnemyClass `json:"class"`
	Name  string     `json:"name"`

	Pos       Position `json:"pos"`
	Health    int      `json:"health"`
	MaxHealth int      `json:"maxHealth"`

	// Таймеры действий, в тиках. Тикают вниз только когда игрок в ViewRange.
	MoveTimer  int `json:"-"`
	ShootTimer int `json:"-"`
}

// IsDead проверяет, мертв ли враг.
func (e *Enemy) IsDead() bool {
	return e.Health <= 0
}
