package engine

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/internal/objects"
	"github.com/The404Studios/outcasted/internal/systems"
	"github.com/The404Studios/outcasted/pkg/logger"
	"github.com/The404Studios/outcasted/pkg/utils"
	"github.com/The404Studios/outcasted/pkg/worldgen"
)

const (
	// SpawnSafeRadius - ближе этой дистанции к игроку враги не спавнятся.
	SpawnSafeRadius = 10

	// spawnAttempts - попыток найти свободную клетку под спавн.
	spawnAttempts = 100

	// respawnWaveSize - сколько врагов приходит одной волной респавна.
	respawnWaveSize = 2
)

// Русские имена классов для ленты событий и HUD.
var enemyDisplayNames = map[domain.EnemyClass]string{
	domain.EnemyScav:      "Мусорщик",
	domain.EnemyHeavyScav: "Штурмовик",
	domain.EnemySniper:    "Снайпер",
	domain.EnemyRusher:    "Бегун",
}

// EnemyManager владеет активной коллекцией врагов: спавн по взвешенной
// таблице, тактика по таймерам, разбор попаданий снарядов игрока,
// выдача наград и лута при смерти, периодические волны респавна.
type EnemyManager struct {
	enemies []*domain.Enemy

	objects *objects.Manager
	msgLog  *MessageLog
	rng     *rand.Rand

	maxEnemies   int
	respawnTicks int
	respawnTimer int

	log *logrus.Entry
}

func NewEnemyManager(om *objects.Manager, msgLog *MessageLog, rng *rand.Rand, maxEnemies, respawnTicks int) *EnemyManager {
	return &EnemyManager{
		objects:      om,
		msgLog:       msgLog,
		rng:          rng,
		maxEnemies:   maxEnemies,
		respawnTicks: respawnTicks,
		log:          logger.Log.WithFields(logrus.Fields{"component": "enemies"}),
	}
}

// Reset выставляет стартовую популяцию нового рейда.
func (m *EnemyManager) Reset(g *domain.WorldGrid, player *domain.Player) {
	m.enemies = m.enemies[:0]
	m.respawnTimer = m.respawnTicks

	for len(m.enemies) < m.maxEnemies {
		if !m.spawnOne(g, player) {
			break
		}
	}
	m.log.WithFields(logrus.Fields{"count": len(m.enemies)}).Info("Enemy population spawned")
}

// Update - ход менеджера внутри тика: сначала разбор попаданий снарядов
// игрока (снаряды уже продвинуты этим тиком), затем тактика живых,
// затем волна респавна по таймеру.
func (m *EnemyManager) Update(tick int, g *domain.WorldGrid, player *domain.Player) {
	m.resolvePlayerShots(tick, g, player)
	m.runTactics(g, player)
	m.respawn(g, player)
}

// Enemies возвращает живой список (только чтение).
func (m *EnemyManager) Enemies() []*domain.Enemy {
	return m.enemies
}

// EnemyAt - линейный поиск врага в клетке.
func (m *EnemyManager) EnemyAt(pos domain.Position) *domain.Enemy {
	for _, e := range m.enemies {
		if e.Pos == pos {
			return e
		}
	}
	return nil
}

// resolvePlayerShots гасит снаряды игрока о геометрию и врагов.
// Вражеские снаряды здесь не трогаем - их разбирает ход игрока.
func (m *EnemyManager) resolvePlayerShots(tick int, g *domain.WorldGrid, player *domain.Player) {
	for _, proj := range m.objects.ActiveProjectiles() {
		if !proj.FromPlayer {
			continue
		}
		if g.IsCollision(proj.Pos.X, proj.Pos.Y) {
			proj.Deactivate()
			m.objects.SpawnImpact(proj.Pos)
			continue
		}
		if e := m.EnemyAt(proj.Pos); e != nil {
			e.Health -= proj.Damage
			proj.Deactivate()
			m.objects.SpawnBlood(proj.Pos)
		}
	}

	alive := m.enemies[:0]
	for _, e := range m.enemies {
		if e.IsDead() {
			m.onDeath(tick, player, e)
			continue
		}
		alive = append(alive, e)
	}
	m.enemies = alive
}

// onDeath срабатывает ровно один раз: награда, счетчик, контейнер с лутом.
func (m *EnemyManager) onDeath(tick int, player *domain.Player, e *domain.Enemy) {
	reward := e.Class.RewardXP()
	player.AddExperience(reward)
	player.KillCount++

	loot := worldgen.RollEnemyLoot(e.Class, m.rng)
	container := m.objects.GetLootContainer()
	container.Initialize(e.Pos, fmt.Sprintf("Труп: %s", e.Name), loot)

	m.msgLog.Push(tick, fmt.Sprintf("%s убит (+%d опыта)", e.Name, reward), domain.LogCombat)
	m.log.WithFields(logrus.Fields{
		"enemy_id": e.ID,
		"class":    e.Class.String(),
		"reward":   reward,
	}).Debug("Enemy killed")
}

// runTactics - таймерная тактика: оба таймера тикают вниз только пока
// игрок в зоне видимости класса; на нуле действие срабатывает и таймер
// перезаряжается случайным интервалом класса.
func (m *EnemyManager) runTactics(g *domain.WorldGrid, player *domain.Player) {
	for _, e := range m.enemies {
		dist := e.Pos.ManhattanTo(player.Pos)
		if dist > e.Class.ViewRange() {
			continue
		}

		e.MoveTimer--
		e.ShootTimer--

		if e.MoveTimer <= 0 {
			attempts := systems.MoveAttempts(e.Class, m.rng)
			for i := 0; i < attempts; i++ {
				if dir, ok := systems.NextStep(e, player.Pos, g, m.rng); ok {
					e.Pos = e.Pos.Shift(dir.Dx, dir.Dy)
				}
			}
			e.MoveTimer = systems.MoveInterval(e.Class, m.rng)
		}

		if e.ShootTimer <= 0 {
			if dist <= e.Class.AttackRange() {
				m.shootAt(e, player.Pos)
			}
			e.ShootTimer = systems.ShootInterval(e.Class, m.rng)
		}
	}
}

// shootAt выпускает один снаряд по грубому (знаковому) направлению на цель.
func (m *EnemyManager) shootAt(e *domain.Enemy, target domain.Position) {
	dir := systems.AimAt(e.Pos, target)
	proj := m.objects.GetProjectile()
	proj.Initialize(e.Pos, dir.Dx, dir.Dy, e.Class.Damage(), e.Class.ProjectileRange(), false)
}

// respawn добирает популяцию волнами по таймеру.
func (m *EnemyManager) respawn(g *domain.WorldGrid, player *domain.Player) {
	m.respawnTimer--
	if m.respawnTimer > 0 {
		return
	}
	m.respawnTimer = m.respawnTicks

	for i := 0; i < respawnWaveSize && len(m.enemies) < m.maxEnemies; i++ {
		if !m.spawnOne(g, player) {
			return
		}
	}
}

// spawnOne ищет свободную клетку вне безопасного радиуса игрока.
func (m *EnemyManager) spawnOne(g *domain.WorldGrid, player *domain.Player) bool {
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		pos := domain.Position{
			X: m.rng.Intn(g.Width),
			Y: m.rng.Intn(g.Height),
		}
		if g.IsCollision(pos.X, pos.Y) || pos.ManhattanTo(player.Pos) < SpawnSafeRadius {
			continue
		}

		class := systems.RollEnemyClass(player.Level, m.rng)
		e := &domain.Enemy{
			ID:         utils.GenerateDeterministicID(m.rng, "e_"),
			Class:      class,
			Name:       enemyDisplayNames[class],
			Pos:        pos,
			Health:     class.MaxHealth(),
			MaxHealth:  class.MaxHealth(),
			MoveTimer:  systems.MoveInterval(class, m.rng),
			ShootTimer: systems.ShootInterval(class, m.rng),
		}
		m.enemies = append(m.enemies, e)
		return true
	}
	return false
}
