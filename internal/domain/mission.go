package domain

// ObjectiveType - закрытый набор типов задач рейда.
type ObjectiveType uint8

const (
	ObjectiveKillEnemies ObjectiveType = iota
	ObjectiveCollectValue
	ObjectiveFindItem
	ObjectiveVisitLocation
	ObjectiveSurviveTime
)

// ObjectiveTypeCount - количество типов (для равномерного выбора).
const ObjectiveTypeCount = 5

var objectiveTypeNames = map[ObjectiveType]string{
	ObjectiveKillEnemies:   "KillEnemies",
	ObjectiveCollectValue:  "CollectValue",
	ObjectiveFindItem:      "FindItem",
	ObjectiveVisitLocation: "VisitLocation",
	ObjectiveSurviveTime:   "SurviveTime",
}

func (t ObjectiveType) String() string {
	if name, ok := objectiveTypeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// MissionObjective - одна задача рейда.
//
// Пороговые задачи (Kill/Collect/Survive) закрываются по Current >= Target.
// Задачи-проверки (FindItem/VisitLocation) закрываются ТОЛЬКО явным
// булевым условием - сравнение счетчиков для них не используется.
type MissionObjective struct {
	Type        ObjectiveType `json:"type"`
	Description string        `json:"description"`

	Target  int `json:"target,omitempty"`
	Current int `json:"current"`

	// TargetName - имя предмета (FindItem) или подстрока названия
	// локации (VisitLocation).
	TargetName string `json:"targetName,omitempty"`

	Completed bool `json:"completed"`

	// RewardXP обнуляется сразу после выдачи: повторная выдача невозможна
	// по построению.
	RewardXP int `json:"rewardXp"`
}
