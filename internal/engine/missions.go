package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/pkg/worldgen"
)

const (
	// MaxObjectives - потолок задач на рейд.
	MaxObjectives = 5

	// VisitRadius - в скольких клетках от игрока ищется целевая локация.
	VisitRadius = 3
)

// MissionTracker генерирует задачи рейда и каждый тик сверяет их
// с живым состоянием игрока и мира.
//
// Пороговые задачи (Kill/Collect/Survive) закрываются по Current >= Target,
// задачи-проверки (FindItem/VisitLocation) - только явным булевым условием.
// Награда выдается ровно в тот тик, когда флаг перещелкнулся, после чего
// обнуляется.
type MissionTracker struct {
	objectives []*domain.MissionObjective

	rng    *rand.Rand
	msgLog *MessageLog
}

func NewMissionTracker(rng *rand.Rand, msgLog *MessageLog) *MissionTracker {
	return &MissionTracker{rng: rng, msgLog: msgLog}
}

// GenerateForRaid создает свежий набор задач: 1 + уровень/2, не более пяти.
// Тип каждой выбирается равновероятно, масштаб цели растет с уровнем.
func (t *MissionTracker) GenerateForRaid(level int) {
	count := 1 + level/2
	if count > MaxObjectives {
		count = MaxObjectives
	}

	t.objectives = make([]*domain.MissionObjective, 0, count)
	for i := 0; i < count; i++ {
		t.objectives = append(t.objectives, t.rollObjective(level))
	}
}

func (t *MissionTracker) rollObjective(level int) *domain.MissionObjective {
	o := &domain.MissionObjective{
		Type: domain.ObjectiveType(t.rng.Intn(domain.ObjectiveTypeCount)),
	}

	switch o.Type {
	case domain.ObjectiveKillEnemies:
		o.Target = 3 + level + t.rng.Intn(3)
		o.RewardXP = 150 + level*50
		o.Description = fmt.Sprintf("Устранить врагов: %d", o.Target)
	case domain.ObjectiveCollectValue:
		o.Target = 100 + level*50 + t.rng.Intn(100)
		o.RewardXP = 200 + level*50
		o.Description = fmt.Sprintf("Собрать ценностей на %d", o.Target)
	case domain.ObjectiveFindItem:
		names := worldgen.ValuableNames()
		o.TargetName = names[t.rng.Intn(len(names))]
		o.RewardXP = 250 + level*50
		o.Description = fmt.Sprintf("Найти: %s", o.TargetName)
	case domain.ObjectiveVisitLocation:
		names := worldgen.LandmarkNames()
		o.TargetName = names[t.rng.Intn(len(names))]
		o.RewardXP = 150 + level*50
		o.Description = fmt.Sprintf("Разведать локацию: %s", o.TargetName)
	case domain.ObjectiveSurviveTime:
		o.Target = 600 + level*100 + t.rng.Intn(200)
		o.RewardXP = 100 + level*50
		o.Description = fmt.Sprintf("Продержаться %d тиков", o.Target)
	}
	return o
}

// Update подтягивает прогресс каждой незакрытой задачи из живого состояния.
func (t *MissionTracker) Update(tick int, player *domain.Player, g *domain.WorldGrid) {
	for _, o := range t.objectives {
		if o.Completed {
			continue
		}

		switch o.Type {
		case domain.ObjectiveKillEnemies:
			o.Current = player.KillCount
		case domain.ObjectiveCollectValue:
			o.Current = player.CollectedValue()
		case domain.ObjectiveSurviveTime:
			o.Current++
		case domain.ObjectiveFindItem:
			if player.FindItemByName(o.TargetName) != nil {
				o.Completed = true
			}
		case domain.ObjectiveVisitLocation:
			if t.nearLandmark(player.Pos, g, o.TargetName) {
				o.Completed = true
			}
		}

		// пороговые типы
		if !o.Completed && o.Target > 0 {
			switch o.Type {
			case domain.ObjectiveKillEnemies, domain.ObjectiveCollectValue, domain.ObjectiveSurviveTime:
				o.Completed = o.Current >= o.Target
			}
		}

		if o.Completed && o.RewardXP > 0 {
			player.AddExperience(o.RewardXP)
			t.msgLog.Push(tick, fmt.Sprintf("Задача выполнена: %s (+%d опыта)", o.Description, o.RewardXP), domain.LogInfo)
			o.RewardXP = 0
		}
	}
}

// nearLandmark проверяет, есть ли рядом с игроком объект, чье имя
// содержит целевую подстроку.
func (t *MissionTracker) nearLandmark(pos domain.Position, g *domain.WorldGrid, substring string) bool {
	for _, f := range g.GetMapFeatures() {
		if f.Pos.ManhattanTo(pos) <= VisitRadius && strings.Contains(f.Name, substring) {
			return true
		}
	}
	return false
}

// Objectives возвращает задачи для HUD.
func (t *MissionTracker) Objectives() []*domain.MissionObjective {
	return t.objectives
}
