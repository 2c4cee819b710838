package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse - корневой объект, который сервер отправляет клиенту:
// полный снимок мира на конец тика. Рассылается всем подписчикам раз в тик.
type ServerResponse struct {
	// Type тип сообщения. На данный момент всегда "STATE".
	Type string `json:"type"`

	// Tick текущий логический тик рейда.
	Tick int `json:"tick"`

	// RaidState - грубое состояние: IDLE, ACTIVE, EXTRACTED, DEAD.
	RaidState string `json:"raidState"`

	// Weather - погода рейда (косметика для клиента).
	Weather string `json:"weather,omitempty"`

	// Grid метаданные о размере карты.
	Grid *GridMeta `json:"grid,omitempty"`

	// Map построчный слепок слоя тайлов: Height строк по Width рун.
	Map []string `json:"map,omitempty"`

	// Player состояние оперативника.
	Player *PlayerView `json:"player,omitempty"`

	// Enemies все живые враги.
	Enemies []EnemyView `json:"enemies,omitempty"`

	// Objectives задачи рейда для HUD.
	Objectives []ObjectiveView `json:"objectives,omitempty"`

	// Logs лента событий рейда, от старых к новым.
	Logs []LogEntry `json:"logs,omitempty"`
}

// GridMeta содержит размеры карты, чтобы клиент подготовил сетку рендера.
type GridMeta struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// PlayerView - DTO оперативника.
type PlayerView struct {
	Pos PositionView `json:"pos"`

	HP    int `json:"hp"`
	MaxHP int `json:"maxHp"`

	Level      int `json:"level"`
	Experience int `json:"experience"`
	KillCount  int `json:"killCount"`

	Armor int `json:"armor"`

	Weapon *WeaponView `json:"weapon,omitempty"`

	Inventory *InventoryView `json:"inventory,omitempty"`
}

// WeaponView - активный ствол и его магазин.
type WeaponView struct {
	Name         string `json:"name"`
	Damage       int    `json:"damage"`
	Loaded       int    `json:"loaded"`
	MagazineSize int    `json:"magazineSize"`
}

// InventoryView - рюкзак оперативника.
type InventoryView struct {
	Items    []ItemView `json:"items"`
	Capacity int        `json:"capacity"`
}

// ItemView - DTO одного предмета.
type ItemView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Symbol string `json:"symbol"`
	Count  int    `json:"count,omitempty"`
	Value  int    `json:"value,omitempty"`
}

// EnemyView - DTO врага. Таймеры и класс-специфика клиенту не видны.
type EnemyView struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Symbol string       `json:"symbol"`
	Pos    PositionView `json:"pos"`
	HP     int          `json:"hp"`
	MaxHP  int          `json:"maxHp"`
}

// ObjectiveView - DTO задачи рейда.
type ObjectiveView struct {
	Description string `json:"description"`
	Current     int    `json:"current"`
	Target      int    `json:"target,omitempty"`
	Completed   bool   `json:"completed"`
}

// PositionView - координаты на карте.
type PositionView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LogEntry представляет одну запись в ленте событий.
type LogEntry struct {
	Tick int    `json:"tick"`
	Text string `json:"text"`
	Type string `json:"type"` // INFO, COMBAT, LOOT, ERROR
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// --- Payloads ---

// DirectionPayload используется для MOVE.
type DirectionPayload struct {
	Dx int `json:"dx"` // Смещение по X (-1, 0, 1)
	Dy int `json:"dy"` // Смещение по Y (-1, 0, 1)
}

// IndexPayload используется для SELECT_WEAPON и QUICKSLOT.
type IndexPayload struct {
	Index int `json:"index"`
}
