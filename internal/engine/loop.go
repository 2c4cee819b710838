package engine

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/The404Studios/outcasted/internal/config"
	"github.com/The404Studios/outcasted/internal/domain"
	"github.com/The404Studios/outcasted/internal/network"
	"github.com/The404Studios/outcasted/pkg/api"
	"github.com/The404Studios/outcasted/pkg/logger"
)

// commandBuffer - емкость входной очереди намерений.
const commandBuffer = 256

// GameService - внешняя граница симуляции: цикл тиков с фиксированной
// частотой, входная очередь команд и рассылка снимков.
//
// Вся мутация состояния происходит в потоке Run. Команды клиентов
// складываются в канал и применяются пачкой на границе тика, поэтому
// внутри ядра блокировки не нужны.
type GameService struct {
	cfg  config.Config
	Hub  *network.Broadcaster
	raid *Raid

	commands chan api.ClientCommand
	paused   bool

	log *logrus.Entry
}

// NewService собирает сервис. Нулевое зерно означает случайный мир.
func NewService(cfg config.Config, seed int64) *GameService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	svc := &GameService{
		cfg:      cfg,
		Hub:      network.NewBroadcaster(),
		raid:     NewRaid(cfg.Simulation, rng),
		commands: make(chan api.ClientCommand, commandBuffer),
		log:      logger.Log.WithFields(logrus.Fields{"component": "game_loop"}),
	}
	svc.log.WithFields(logrus.Fields{"seed": seed}).Info("Game service created")
	return svc
}

// Raid открывает сессию для debug-эндпоинтов и тестов.
func (s *GameService) Raid() *Raid {
	return s.raid
}

// ProcessCommand кладет намерение клиента в очередь тика.
// Яростно спамящий клиент теряет лишние команды, а не стопорит цикл.
func (s *GameService) ProcessCommand(cmd api.ClientCommand) {
	select {
	case s.commands <- cmd:
	default:
		s.log.Warn("Command queue full, dropping command")
	}
}

// Run крутит цикл тиков до отмены контекста.
//
// Каждая итерация меряет потраченное время и досыпает остаток бюджета.
// Опоздавший тик молча бежит следом: наверстывания и пропусков нет,
// симуляция никогда не обгоняет реальное время.
func (s *GameService) Run(ctx context.Context) error {
	if err := s.raid.Start(); err != nil {
		return err
	}

	tickBudget := s.cfg.Simulation.TickDuration()
	s.log.WithFields(logrus.Fields{
		"tick_rate": s.cfg.Simulation.TickRate,
		"budget":    tickBudget.String(),
	}).Info("Simulation loop started")

	for {
		started := time.Now()

		s.drainCommands()
		if !s.paused {
			s.raid.Tick()
		}
		s.Hub.Broadcast(s.raid.BuildSnapshot())

		remaining := tickBudget - time.Since(started)
		if remaining <= 0 {
			// перерасход бюджета: сразу следующий тик
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(remaining):
		}
	}
}

// drainCommands применяет все накопившиеся команды на границе тика.
func (s *GameService) drainCommands() {
	for {
		select {
		case cmd := <-s.commands:
			s.apply(cmd)
		default:
			return
		}
	}
}

func (s *GameService) apply(cmd api.ClientCommand) {
	action := domain.ParseAction(cmd.Action)

	// На паузе мир заморожен целиком, игрок в том числе.
	// Проходят только команды управления самой паузой.
	if s.paused && action != domain.ActionPause && action != domain.ActionResume {
		return
	}

	switch action {
	case domain.ActionInit:
		// снимок и так уходит каждый тик, отдельного ответа не нужно

	case domain.ActionStartRaid:
		if s.raid.State() == RaidActive {
			return
		}
		if err := s.raid.Start(); err != nil {
			s.log.WithError(err).Error("Failed to restart raid")
		}

	case domain.ActionMove:
		var p api.DirectionPayload
		if !decodePayload(cmd, &p, s.log) {
			return
		}
		s.raid.Move(p.Dx, p.Dy)

	case domain.ActionShoot:
		s.raid.Shoot()

	case domain.ActionReload:
		s.raid.Reload()

	case domain.ActionSelectWeapon:
		var p api.IndexPayload
		if !decodePayload(cmd, &p, s.log) {
			return
		}
		s.raid.SelectWeapon(p.Index)

	case domain.ActionQuickSlot:
		var p api.IndexPayload
		if !decodePayload(cmd, &p, s.log) {
			return
		}
		s.raid.UseQuickSlot(p.Index)

	case domain.ActionExtract:
		s.raid.Extract()

	case domain.ActionPause:
		s.paused = true

	case domain.ActionResume:
		s.paused = false

	default:
		s.log.WithFields(logrus.Fields{"action": cmd.Action}).Warn("Unknown action")
	}
}

// decodePayload разбирает и проверяет payload команды.
func decodePayload(cmd api.ClientCommand, dst api.Validator, log *logrus.Entry) bool {
	if err := json.Unmarshal(cmd.Payload, dst); err != nil {
		log.WithError(err).Warn("Malformed payload")
		return false
	}
	if err := dst.Validate(); err != nil {
		log.WithError(err).Warn("Invalid payload")
		return false
	}
	return true
}
