package engine

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/The404Studios/outcasted/internal/config"
	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/pkg/api"
)

func commandFor(action string) api.ClientCommand {
	return api.ClientCommand{Action: action}
}

func commandWithPayload(action, payload string) api.ClientCommand {
	return api.ClientCommand{Action: action, Payload: json.RawMessage(payload)}
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Simulation.WorldWidth = 40
	cfg.Simulation.WorldHeight = 20
	cfg.Simulation.MaxEnemies = 5
	cfg.Simulation.RespawnTicks = 1000
	return cfg
}

func newTestRaid(t *testing.T, seed int64) *Raid {
	t.Helper()
	r := NewRaid(testConfig().Simulation, rand.New(rand.NewSource(seed)))
	require.NoError(t, r.Start())
	return r
}

// givePlayerWeapon вооружает оперативника ровно одним тестовым стволом.
func givePlayerWeapon(r *Raid, spread int) *domain.Item {
	w := &domain.Item{
		Kind:         domain.ItemWeapon,
		Name:         "Тестовый ствол",
		Damage:       10,
		FireRate:     1,
		Spread:       spread,
		Range:        10,
		MagazineSize: 10,
		Loaded:       5,
	}
	r.Player.Weapons = nil
	r.Player.CurrentWeapon = -1
	r.Player.AddWeapon(w)
	return w
}

func playerProjectileCount(r *Raid) int {
	count := 0
	for _, p := range r.Objects.ActiveProjectiles() {
		if p.FromPlayer {
			count++
		}
	}
	return count
}

func TestRaidStart(t *testing.T) {
	r := newTestRaid(t, 1)

	assert.Equal(t, RaidActive, r.State())
	assert.Equal(t, 0, r.CurrentTick())
	require.NotNil(t, r.Grid)

	// стартовый набор: ствол в руках, патроны и аптечка в рюкзаке
	require.NotNil(t, r.Player.ActiveWeapon())
	assert.NotEmpty(t, r.Player.Inventory)

	// стартовая популяция врагов вне безопасного радиуса
	require.NotEmpty(t, r.Enemies.Enemies())
	for _, e := range r.Enemies.Enemies() {
		assert.GreaterOrEqual(t, e.Pos.ManhattanTo(r.Player.Pos), SpawnSafeRadius)
	}

	assert.NotEmpty(t, r.Missions.Objectives())
}

func TestRaidStartPreservesProgression(t *testing.T) {
	r := newTestRaid(t, 2)
	r.Player.AddExperience(2500) // уровень 3

	require.NoError(t, r.Start())
	assert.Equal(t, 3, r.Player.Level)
	assert.Equal(t, 2500, r.Player.Experience)
	assert.Equal(t, 0, r.Player.KillCount)
}

func TestShootSpreadZero(t *testing.T) {
	r := newTestRaid(t, 3)
	w := givePlayerWeapon(r, 0)

	r.Shoot()

	assert.Equal(t, 4, playerProjectileCount(r), "крест из 4 снарядов")
	assert.Equal(t, 4, w.Loaded, "минус один патрон")
}

func TestShootSpreadOne(t *testing.T) {
	r := newTestRaid(t, 3)
	w := givePlayerWeapon(r, 1)

	r.Shoot()

	assert.Equal(t, 8, playerProjectileCount(r), "роза из 8 снарядов")
	assert.Equal(t, 4, w.Loaded, "минус один патрон")
}

func TestShootSpreadTwoFreeShot(t *testing.T) {
	r := newTestRaid(t, 3)
	w := givePlayerWeapon(r, 2)

	r.Shoot()

	assert.Equal(t, 4, playerProjectileCount(r), "крест из 4 снарядов")
	assert.Equal(t, 5, w.Loaded, "расход патронов нулевой")
}

func TestShootEmptyMagazine(t *testing.T) {
	r := newTestRaid(t, 3)
	w := givePlayerWeapon(r, 0)
	w.Loaded = 0

	r.Shoot()

	assert.Zero(t, playerProjectileCount(r))
	entries := r.Messages.Entries()
	require.NotEmpty(t, entries)
	assert.Contains(t, entries[len(entries)-1].Text, "Нет патронов")
}

func TestShootFireRateCooldown(t *testing.T) {
	r := newTestRaid(t, 3)
	w := givePlayerWeapon(r, 0)
	w.FireRate = 10

	r.Shoot()
	r.Shoot() // тот же тик - кулдаун

	assert.Equal(t, 4, playerProjectileCount(r))
	assert.Equal(t, 4, w.Loaded)
}

func TestReloadFirstMatchingStack(t *testing.T) {
	r := newTestRaid(t, 4)
	w := givePlayerWeapon(r, 0)
	w.Loaded = 0
	w.MagazineSize = 8

	r.Player.Inventory = nil
	first := &domain.Item{Kind: domain.ItemAmmo, Name: "Патроны (5)", WeaponTag: w.Name, Count: 5}
	second := &domain.Item{Kind: domain.ItemAmmo, Name: "Патроны (10)", WeaponTag: w.Name, Count: 10}
	require.True(t, r.Player.AddItem(first))
	require.True(t, r.Player.AddItem(second))

	r.Reload()

	assert.Equal(t, 5, w.Loaded, "весь первый стак в магазин")
	assert.Len(t, r.Player.Inventory, 1, "опустевший стак исчез")

	r.Reload()

	assert.Equal(t, 8, w.Loaded, "добор до дефицита")
	assert.Equal(t, 7, second.Count)
}

func TestReloadNoMatchingAmmo(t *testing.T) {
	r := newTestRaid(t, 4)
	w := givePlayerWeapon(r, 0)
	w.Loaded = 0
	r.Player.Inventory = nil

	r.Reload()

	assert.Zero(t, w.Loaded)
}

// Снаряд, исчерпавший дальность на продвижении этого тика, гаснет до
// проверок попадания и уже никому не наносит урон.
func TestProjectileTerminalTickNeverHits(t *testing.T) {
	r := newTestRaid(t, 5)

	target := domain.Position{X: r.Player.Pos.X + 2, Y: r.Player.Pos.Y}
	e := &domain.Enemy{
		ID: "e_test", Class: domain.EnemyScav, Name: "Мусорщик",
		Pos: target, Health: 80, MaxHealth: 80,
		MoveTimer: 100, ShootTimer: 100,
	}
	r.Enemies.enemies = []*domain.Enemy{e}

	proj := r.Objects.GetProjectile()
	proj.Initialize(domain.Position{X: target.X - 1, Y: target.Y}, 1, 0, 50, 1, true)

	r.Tick()

	assert.Equal(t, 80, e.Health, "терминальный тик не засчитывает попадание")
	assert.False(t, proj.IsActive())
}

func TestProjectileHitsBeforeRangeLimit(t *testing.T) {
	r := newTestRaid(t, 5)

	target := domain.Position{X: r.Player.Pos.X + 2, Y: r.Player.Pos.Y}
	e := &domain.Enemy{
		ID: "e_test", Class: domain.EnemyScav, Name: "Мусорщик",
		Pos: target, Health: 80, MaxHealth: 80,
		MoveTimer: 100, ShootTimer: 100,
	}
	r.Enemies.enemies = []*domain.Enemy{e}

	proj := r.Objects.GetProjectile()
	proj.Initialize(domain.Position{X: target.X - 1, Y: target.Y}, 1, 0, 50, 5, true)

	r.Tick()

	assert.Equal(t, 30, e.Health)
	assert.False(t, proj.IsActive(), "попадание гасит снаряд")
}

func TestEnemyDeathRewardsOnce(t *testing.T) {
	r := newTestRaid(t, 6)

	target := domain.Position{X: r.Player.Pos.X + 2, Y: r.Player.Pos.Y}
	e := &domain.Enemy{
		ID: "e_test", Class: domain.EnemyScav, Name: "Мусорщик",
		Pos: target, Health: 1, MaxHealth: 80,
		MoveTimer: 100, ShootTimer: 100,
	}
	r.Enemies.enemies = []*domain.Enemy{e}

	proj := r.Objects.GetProjectile()
	proj.Initialize(domain.Position{X: target.X - 1, Y: target.Y}, 1, 0, 50, 5, true)

	r.Tick()

	assert.Empty(t, r.Enemies.Enemies(), "мертвый враг покидает активный набор")
	assert.Equal(t, 1, r.Player.KillCount)
	assert.Equal(t, domain.EnemyScav.RewardXP(), r.Player.Experience)

	loot := r.Objects.LootContainerAt(target)
	require.NotNil(t, loot, "труп оставляет контейнер")
	assert.NotEmpty(t, loot.Items)
}

func TestHostileProjectileDamagesPlayer(t *testing.T) {
	r := newTestRaid(t, 7)
	r.Player.EquippedArmor = nil

	proj := r.Objects.GetProjectile()
	proj.Initialize(domain.Position{X: r.Player.Pos.X - 1, Y: r.Player.Pos.Y}, 1, 0, 20, 5, false)

	r.Tick()

	assert.Equal(t, r.Player.MaxHealth-20, r.Player.Health)
	assert.False(t, proj.IsActive())
}

func TestHostileProjectileKillsPlayer(t *testing.T) {
	r := newTestRaid(t, 7)
	r.Player.Health = 10

	proj := r.Objects.GetProjectile()
	proj.Initialize(domain.Position{X: r.Player.Pos.X - 1, Y: r.Player.Pos.Y}, 1, 0, 35, 5, false)

	r.Tick()

	assert.Equal(t, RaidDead, r.State())

	// после смерти симуляция не идет
	tick := r.CurrentTick()
	r.Tick()
	assert.Equal(t, tick, r.CurrentTick())
}

func TestMoveRejectsCollision(t *testing.T) {
	r := newTestRaid(t, 8)

	pos := r.Player.Pos
	r.Grid.SetCollision(pos.X+1, pos.Y, true)

	r.Move(1, 0)
	assert.Equal(t, pos, r.Player.Pos)

	r.Move(-1, 0)
	assert.Equal(t, pos.Shift(-1, 0), r.Player.Pos)
}

func TestMovePicksUpLoot(t *testing.T) {
	r := newTestRaid(t, 9)

	lootPos := r.Player.Pos.Shift(1, 0)
	r.Grid.SetCollision(lootPos.X, lootPos.Y, false)

	c := r.Objects.GetLootContainer()
	c.Initialize(lootPos, "Ящик", []*domain.Item{
		{Kind: domain.ItemValuable, Name: "Золотые часы", Value: 120},
	})

	r.Move(1, 0)

	assert.NotNil(t, r.Player.FindItemByName("Золотые часы"))
	assert.False(t, c.IsActive(), "опустевший контейнер гаснет сам")
}

func TestMoveEquipsArmorFromLoot(t *testing.T) {
	r := newTestRaid(t, 9)

	lootPos := r.Player.Pos.Shift(1, 0)
	r.Grid.SetCollision(lootPos.X, lootPos.Y, false)

	c := r.Objects.GetLootContainer()
	c.Initialize(lootPos, "Труп: Штурмовик", []*domain.Item{
		{Kind: domain.ItemArmor, Name: "Бронежилет 6Б2", ArmorRating: 25},
	})

	r.Move(1, 0)

	assert.Equal(t, 25, r.Player.TotalArmorRating(), "броня из контейнера надевается сразу")
	assert.Nil(t, r.Player.FindItemByName("Бронежилет 6Б2"), "надетая броня не лежит в рюкзаке")
	assert.False(t, c.IsActive(), "контейнер не должен застрять с броней внутри")
}

func TestMoveOpensAmmoCache(t *testing.T) {
	r := newTestRaid(t, 9)
	w := givePlayerWeapon(r, 0)

	cachePos := r.Player.Pos.Shift(1, 0)
	r.Grid.SetCollision(cachePos.X, cachePos.Y, false)
	r.Grid.AddFeature(domain.MapFeature{
		Pos: cachePos, Symbol: '=', Name: "Схрон с патронами", AmmoCache: true,
	})

	r.Move(1, 0)

	stack := r.Player.FindItemByName("Патроны (" + w.Name + ")")
	require.NotNil(t, stack, "схрон выдает патроны под текущее оружие")
	assert.GreaterOrEqual(t, stack.Count, CacheAmmoMin)
	assert.LessOrEqual(t, stack.Count, CacheAmmoMax)
	assert.Nil(t, r.Grid.GetFeatureAt(cachePos.X, cachePos.Y), "схрон одноразовый")
}

func TestMoveDrinksFromSpring(t *testing.T) {
	r := newTestRaid(t, 9)
	r.Player.Health = 40

	springPos := r.Player.Pos.Shift(0, 1)
	r.Grid.SetCollision(springPos.X, springPos.Y, false)
	r.Grid.AddFeature(domain.MapFeature{
		Pos: springPos, Symbol: '+', Name: "Родник", Healing: true,
	})

	r.Move(0, 1)

	assert.Equal(t, 40+SpringHealHP, r.Player.Health)
	assert.Nil(t, r.Grid.GetFeatureAt(springPos.X, springPos.Y), "родник одноразовый")
}

func TestExtractionOnlyOnPoint(t *testing.T) {
	r := newTestRaid(t, 10)

	r.Extract()
	assert.Equal(t, RaidActive, r.State(), "вне точки эвакуации рейд продолжается")

	points := r.Grid.GetExtractionPoints()
	require.NotEmpty(t, points)
	r.Player.Pos = points[0]

	r.Extract()
	assert.Equal(t, RaidExtracted, r.State())
}

func TestQuickSlotMedkit(t *testing.T) {
	r := newTestRaid(t, 11)
	r.Player.Health = 40

	kit := &domain.Item{Kind: domain.ItemMedkit, Name: "Малая аптечка", HealAmount: 25}
	require.True(t, r.Player.AddItem(kit))
	require.True(t, r.Player.AssignQuickSlot(0, kit))

	r.UseQuickSlot(0)

	assert.Equal(t, 65, r.Player.Health)
	assert.Nil(t, r.Player.FindItemByName("Малая аптечка"), "аптечка одноразовая")
}

func TestMissionRewardGrantedOnce(t *testing.T) {
	msgLog := NewMessageLog()
	tr := NewMissionTracker(rand.New(rand.NewSource(1)), msgLog)
	obj := &domain.MissionObjective{
		Type:        domain.ObjectiveKillEnemies,
		Description: "Устранить врагов: 5",
		Target:      5,
		RewardXP:    100,
	}
	tr.objectives = []*domain.MissionObjective{obj}

	g, err := domain.NewWorldGrid(10, 10)
	require.NoError(t, err)
	p := domain.NewPlayer()
	p.KillCount = 5

	tr.Update(1, p, g)
	assert.True(t, obj.Completed)
	assert.Equal(t, 100, p.Experience)
	assert.Zero(t, obj.RewardXP, "награда обнулена после выдачи")

	tr.Update(2, p, g)
	assert.Equal(t, 100, p.Experience, "повторной выдачи нет")
}

func TestMissionPresenceStyleObjectives(t *testing.T) {
	msgLog := NewMessageLog()
	tr := NewMissionTracker(rand.New(rand.NewSource(1)), msgLog)

	find := &domain.MissionObjective{
		Type: domain.ObjectiveFindItem, TargetName: "Золотые часы", RewardXP: 50,
	}
	visit := &domain.MissionObjective{
		Type: domain.ObjectiveVisitLocation, TargetName: "склад", RewardXP: 50,
	}
	tr.objectives = []*domain.MissionObjective{find, visit}

	g, err := domain.NewWorldGrid(10, 10)
	require.NoError(t, err)
	g.AddFeature(domain.MapFeature{Pos: domain.Position{X: 5, Y: 5}, Symbol: '#', Name: "Заброшенный склад"})

	p := domain.NewPlayer()
	p.Pos = domain.Position{X: 0, Y: 0}

	tr.Update(1, p, g)
	assert.False(t, find.Completed)
	assert.False(t, visit.Completed)

	p.AddItem(&domain.Item{Kind: domain.ItemValuable, Name: "Золотые часы", Value: 120})
	p.Pos = domain.Position{X: 4, Y: 5}

	tr.Update(2, p, g)
	assert.True(t, find.Completed)
	assert.True(t, visit.Completed, "подстрока имени локации найдена рядом")
}

func TestMissionCountScalesWithLevel(t *testing.T) {
	msgLog := NewMessageLog()
	tr := NewMissionTracker(rand.New(rand.NewSource(1)), msgLog)

	tr.GenerateForRaid(1)
	assert.Len(t, tr.Objectives(), 1)

	tr.GenerateForRaid(4)
	assert.Len(t, tr.Objectives(), 3)

	tr.GenerateForRaid(20)
	assert.Len(t, tr.Objectives(), MaxObjectives, "не больше пяти задач")
}

func TestBuildSnapshot(t *testing.T) {
	r := newTestRaid(t, 12)
	r.Tick()

	snap := r.BuildSnapshot()

	assert.Equal(t, "STATE", snap.Type)
	assert.Equal(t, 1, snap.Tick)
	assert.Equal(t, "ACTIVE", snap.RaidState)
	require.NotNil(t, snap.Grid)
	assert.Len(t, snap.Map, r.Grid.Height)
	require.NotNil(t, snap.Player)
	assert.Equal(t, r.Player.Health, snap.Player.HP)
	assert.Len(t, snap.Enemies, len(r.Enemies.Enemies()))
}

func TestServicePauseResume(t *testing.T) {
	svc := NewService(testConfig(), 13)
	require.NoError(t, svc.raid.Start())

	svc.ProcessCommand(commandFor("PAUSE"))
	svc.drainCommands()
	assert.True(t, svc.paused)

	svc.ProcessCommand(commandFor("RESUME"))
	svc.drainCommands()
	assert.False(t, svc.paused)
}

func TestServicePauseFreezesGameplay(t *testing.T) {
	svc := NewService(testConfig(), 13)
	require.NoError(t, svc.raid.Start())
	pos := svc.raid.Player.Pos

	svc.ProcessCommand(commandFor("PAUSE"))
	svc.ProcessCommand(commandWithPayload("MOVE", `{"dx": 1, "dy": 0}`))
	svc.drainCommands()
	assert.Equal(t, pos, svc.raid.Player.Pos, "на паузе игрок заморожен вместе с миром")

	svc.ProcessCommand(commandFor("RESUME"))
	svc.ProcessCommand(commandWithPayload("MOVE", `{"dx": 1, "dy": 0}`))
	svc.drainCommands()
	assert.Equal(t, pos.Shift(1, 0), svc.raid.Player.Pos, "после RESUME команды снова исполняются")
}

func TestServiceIgnoresMalformedCommands(t *testing.T) {
	svc := NewService(testConfig(), 13)
	require.NoError(t, svc.raid.Start())

	svc.ProcessCommand(commandFor("WARP"))
	svc.ProcessCommand(commandWithPayload("MOVE", `{"dx": 5, "dy": 0}`))
	svc.ProcessCommand(commandWithPayload("MOVE", `not json`))

	pos := svc.raid.Player.Pos
	svc.drainCommands()
	assert.Equal(t, pos, svc.raid.Player.Pos)
}

func TestServiceRunStopsOnContextCancel(t *testing.T) {
	svc := NewService(testConfig(), 14)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := svc.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Greater(t, svc.raid.CurrentTick(), 0, "цикл успел сделать хотя бы один тик")
}
