package engine

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/The404Studios/outcasted/internal/config"
	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/internal/objects"
	"github.com/The404Studios/outcasted/internal/systems"
	"github.com/The404Studios/outcasted/pkg/logger"
	"github.com/The404Studios/outcasted/pkg/worldgen"
)

// RaidState - грубое состояние рейда.
type RaidState uint8

const (
	RaidIdle RaidState = iota
	RaidActive
	RaidExtracted
	RaidDead
)

var raidStateNames = map[RaidState]string{
	RaidIdle:      "IDLE",
	RaidActive:    "ACTIVE",
	RaidExtracted: "EXTRACTED",
	RaidDead:      "DEAD",
}

func (s RaidState) String() string {
	if name, ok := raidStateNames[s]; ok {
		return name
	}
	return "IDLE"
}

// PlayerSymbol - оперативник на карте.
const PlayerSymbol = '@'

// Raid - одна сессия рейда: мир, оперативник, враги, задачи и все
// переходные объекты. Мутируется только потоком тиков, блокировок нет.
type Raid struct {
	cfg config.Simulation
	rng *rand.Rand

	Grid     *domain.WorldGrid
	Player   *domain.Player
	Objects  *objects.Manager
	Enemies  *EnemyManager
	Missions *MissionTracker
	Messages *MessageLog

	tick    int
	state   RaidState
	weather Weather

	log *logrus.Entry
}

// NewRaid собирает граф зависимостей сессии. Мир появляется в Start.
func NewRaid(cfg config.Simulation, rng *rand.Rand) *Raid {
	msgLog := NewMessageLog()
	om := objects.NewManager()

	return &Raid{
		cfg:      cfg,
		rng:      rng,
		Player:   domain.NewPlayer(),
		Objects:  om,
		Enemies:  NewEnemyManager(om, msgLog, rng, cfg.MaxEnemies, cfg.RespawnTicks),
		Missions: NewMissionTracker(rng, msgLog),
		Messages: msgLog,
		log:      logger.Log.WithFields(logrus.Fields{"component": "raid"}),
	}
}

// Start генерирует мир заново и сбрасывает все состояние рейда.
// Уровень и опыт оперативника переживают рейды, остальное - нет.
func (r *Raid) Start() error {
	g, err := worldgen.Generate(r.cfg.WorldWidth, r.cfg.WorldHeight, r.cfg.ExtractionPoints, r.rng)
	if err != nil {
		return err
	}

	r.Grid = g
	r.tick = 0
	r.state = RaidActive
	r.weather = RollWeather(r.rng)
	r.Messages.Reset()
	r.Objects.Reset()

	spawn := domain.Position{X: r.cfg.WorldWidth / 2, Y: r.cfg.WorldHeight / 2}
	r.Player.ResetForRaid(spawn)
	r.Player.LastShotTick = -100 // первый выстрел рейда без кулдауна

	weapon, extras := worldgen.StarterKit(r.rng)
	r.Player.AddWeapon(weapon)
	for _, it := range extras {
		r.Player.AddItem(it)
	}

	r.Enemies.Reset(g, r.Player)
	r.Missions.GenerateForRaid(r.Player.Level)

	r.Messages.Push(0, "Рейд начался. Доберитесь до точки эвакуации.", domain.LogInfo)
	r.log.WithFields(logrus.Fields{
		"world":   [2]int{g.Width, g.Height},
		"weather": r.weather.String(),
		"level":   r.Player.Level,
	}).Info("Raid started")
	return nil
}

// Tick - один логический шаг симуляции. Порядок стадий фиксирован:
// задачи -> переходные объекты -> враги -> игрок. Снаряд, добравшийся
// до предела дальности, гаснет на продвижении и до проверок попадания
// этого тика уже не доживает.
func (r *Raid) Tick() {
	if r.state != RaidActive {
		return
	}
	r.tick++

	r.Missions.Update(r.tick, r.Player, r.Grid)
	r.Objects.Update()
	r.Enemies.Update(r.tick, r.Grid, r.Player)
	r.resolveHostileShots()

	if r.state == RaidActive {
		r.renderFrame()
	}
}

// resolveHostileShots - стадия игрока: вражеские снаряды в его клетке
// наносят урон сквозь броню и гаснут.
func (r *Raid) resolveHostileShots() {
	for _, proj := range r.Objects.ActiveProjectiles() {
		if proj.FromPlayer || !proj.IsActive() {
			continue
		}
		if proj.Pos != r.Player.Pos {
			continue
		}

		proj.Deactivate()
		r.Objects.SpawnBlood(r.Player.Pos)

		dealt := systems.MitigateDamage(proj.Damage, r.Player.TotalArmorRating())
		died := r.Player.TakeDamage(proj.Damage)
		r.Messages.Push(r.tick, fmt.Sprintf("Попадание! Получено урона: %d", dealt), domain.LogCombat)

		if died {
			r.state = RaidDead
			r.Messages.Push(r.tick, "Вы погибли в рейде.", domain.LogError)
			r.log.WithFields(logrus.Fields{"tick": r.tick}).Info("Player died")
			return
		}
	}
}

// renderFrame перерисовывает косметический слой тайлов под снимок.
func (r *Raid) renderFrame() {
	r.Grid.ClearTiles()
	r.Grid.PrepareForRendering()
	r.Objects.Render(r.Grid)
	for _, e := range r.Enemies.Enemies() {
		r.Grid.SetTile(e.Pos.X, e.Pos.Y, e.Class.Symbol())
	}
	r.Grid.SetTile(r.Player.Pos.X, r.Player.Pos.Y, PlayerSymbol)
	r.weather.RenderOverlay(r.Grid, r.rng)
}

// State возвращает текущее состояние рейда.
func (r *Raid) State() RaidState {
	return r.state
}

// CurrentTick возвращает номер тика.
func (r *Raid) CurrentTick() int {
	return r.tick
}

// CurrentWeather возвращает погоду рейда.
func (r *Raid) CurrentWeather() Weather {
	return r.weather
}
