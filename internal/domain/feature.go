package domain

// MapFeature - статический объект на карте (дерево, ящик, стена здания...).
// Генерируется один раз при старте рейда и после этого не двигается.
type MapFeature struct {
	Pos     Position `json:"pos"`
	Symbol  rune     `json:"symbol"`
	Name    string   `json:"name"`
	Blocked bool     `json:"blocked"` // занимает ли клетку (коллизия)

	// Флаги взаимодействия. Большинство объектов - просто декорации.
	Lootable  bool `json:"lootable,omitempty"`  // можно обыскать
	Healing   bool `json:"healing,omitempty"`   // восстанавливает здоровье
	AmmoCache bool `json:"ammoCache,omitempty"` // пополняет боезапас
	Water     bool `json:"water,omitempty"`     // источник воды
}
