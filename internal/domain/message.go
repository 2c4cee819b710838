package domain

// Типы записей игрового лога.
const (
	LogInfo   = "INFO"
	LogCombat = "COMBAT"
	LogLoot   = "LOOT"
	LogError  = "ERROR"
)

// LogEntry - запись в ленте событий рейда.
// Сюда же попадает сигнал "нет патронов" и сообщения о луте.
type LogEntry struct {
	Tick int    `json:"tick"`
	Text string `json:"text"`
	Type string `json:"type"`
}
