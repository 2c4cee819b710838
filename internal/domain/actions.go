package domain

import "strings"

// ActionType - внутренний числовой идентификатор намерения игрока.
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionMove
	ActionShoot
	ActionReload
	ActionSelectWeapon
	ActionQuickSlot
	ActionExtract
	ActionPause
	ActionResume
	ActionStartRaid
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":          ActionInit,
	"MOVE":          ActionMove,
	"SHOOT":         ActionShoot,
	"RELOAD":        ActionReload,
	"SELECT_WEAPON": ActionSelectWeapon,
	"QUICKSLOT":     ActionQuickSlot,
	"EXTRACT":       ActionExtract,
	"PAUSE":         ActionPause,
	"RESUME":        ActionResume,
	"START_RAID":    ActionStartRaid,
}

// Маппинг для логов Domain -> String
var actionCmdToString = func() map[ActionType]string {
	m := make(map[ActionType]string, len(actionStringToCmd))
	for s, a := range actionStringToCmd {
		m[a] = s
	}
	return m
}()

// ParseAction конвертирует строку из JSON в ActionType.
// Нечувствительна к регистру для надежности.
func ParseAction(s string) ActionType {
	if val, ok := actionStringToCmd[strings.ToUpper(s)]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
