package engine

import "github.com/The404Studios/outcasted/internal/domain"

// MessageLogCapacity - глубина ленты событий рейда.
const MessageLogCapacity = 50

// MessageLog - кольцевая лента событий: сигналы боя, лут, системные
// сообщения. Старые записи вытесняются новыми.
type MessageLog struct {
	entries []domain.LogEntry
}

func NewMessageLog() *MessageLog {
	return &MessageLog{entries: make([]domain.LogEntry, 0, MessageLogCapacity)}
}

// Push добавляет запись, вытесняя самую старую при переполнении.
func (l *MessageLog) Push(tick int, text, entryType string) {
	if len(l.entries) >= MessageLogCapacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, domain.LogEntry{Tick: tick, Text: text, Type: entryType})
}

// Entries возвращает снимок ленты от старых к новым.
func (l *MessageLog) Entries() []domain.LogEntry {
	out := make([]domain.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Reset очищает ленту (новый рейд).
func (l *MessageLog) Reset() {
	l.entries = l.entries[:0]
}
