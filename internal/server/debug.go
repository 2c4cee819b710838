package server

import (
	"encoding/json"
	"net/http"

	"github.com/The404Studios/outcasted/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию симуляции.
// Читает состояние мимо потока тиков без блокировок - для отладки сойдет,
// но строить на этих эндпоинтах что-то боевое нельзя.
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/raid", h.handleRaid)
	mux.HandleFunc("/debug/enemies", h.handleEnemies)
	mux.HandleFunc("/debug/objectives", h.handleObjectives)
}

// /debug/raid - сводка по текущему рейду
func (h *DebugHandler) handleRaid(w http.ResponseWriter, r *http.Request) {
	raid := h.Service.Raid()

	type RaidSummary struct {
		State       string `json:"state"`
		Tick        int    `json:"tick"`
		Weather     string `json:"weather"`
		Width       int    `json:"width,omitempty"`
		Height      int    `json:"height,omitempty"`
		EnemyCount  int    `json:"enemy_count"`
		Subscribers int    `json:"subscribers"`
	}

	summary := RaidSummary{
		State:       raid.State().String(),
		Tick:        raid.CurrentTick(),
		Weather:     raid.CurrentWeather().String(),
		EnemyCount:  len(raid.Enemies.Enemies()),
		Subscribers: h.Service.Hub.SubscriberCount(),
	}
	if raid.Grid != nil {
		summary.Width = raid.Grid.Width
		summary.Height = raid.Grid.Height
	}

	writeJSON(w, summary)
}

// /debug/enemies - дамп всех врагов, включая скрытые от клиента поля
func (h *DebugHandler) handleEnemies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Raid().Enemies.Enemies())
}

// /debug/objectives - задачи рейда с полными целями
func (h *DebugHandler) handleObjectives(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Raid().Missions.Objectives())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (например, пустой список), возвращаем [] а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
