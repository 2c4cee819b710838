package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Server содержит сетевые настройки оболочки (WebSocket/HTTP).
type Server struct {
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`
}

// Simulation содержит параметры ядра симуляции.
// Это единственное место, где конфигурация может "сломать" запуск:
// все проверки делаются в Validate, до создания мира.
type Simulation struct {
	// Seed - мастер-зерно. 0 означает "выбрать случайно при старте".
	Seed int64 `yaml:"seed"`

	// TickRate - логических тиков в секунду.
	TickRate int `yaml:"tick_rate"`

	WorldWidth  int `yaml:"world_width"`
	WorldHeight int `yaml:"world_height"`

	// ExtractionPoints - сколько точек эвакуации размещает генератор.
	ExtractionPoints int `yaml:"extraction_points"`

	// MaxEnemies - потолок одновременно живых врагов в рейде.
	MaxEnemies int `yaml:"max_enemies"`

	// RespawnTicks - интервал между волнами респавна.
	RespawnTicks int `yaml:"respawn_ticks"`
}

// Config - корневая конфигурация сервера.
type Config struct {
	Server     Server     `yaml:"server"`
	Simulation Simulation `yaml:"simulation"`
}

// Default возвращает конфигурацию по умолчанию.
func Default() Config {
	return Config{
		Server: Server{
			BindAddress: "0.0.0.0",
			Port:        8080,
		},
		Simulation: Simulation{
			Seed:             0,
			TickRate:         20,
			WorldWidth:       60,
			WorldHeight:      30,
			ExtractionPoints: 4,
			MaxEnemies:       12,
			RespawnTicks:     600, // ~30 секунд при 20 TPS
		},
	}
}

// Load читает YAML-файл поверх значений по умолчанию.
// Отсутствие файла не является ошибкой: работаем на дефолтах.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate отвергает заведомо сломанную конфигурацию.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	s := c.Simulation
	if s.TickRate <= 0 {
		return fmt.Errorf("tick_rate must be positive, got %d", s.TickRate)
	}
	if s.WorldWidth <= 0 || s.WorldHeight <= 0 {
		return fmt.Errorf("world size %dx%d is not usable", s.WorldWidth, s.WorldHeight)
	}
	if s.ExtractionPoints <= 0 {
		return fmt.Errorf("extraction_points must be positive, got %d", s.ExtractionPoints)
	}
	if s.MaxEnemies < 0 {
		return fmt.Errorf("max_enemies cannot be negative, got %d", s.MaxEnemies)
	}
	return nil
}

// TickDuration возвращает длительность одного логического тика.
func (s Simulation) TickDuration() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}
