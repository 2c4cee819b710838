package engine

import (
	"math/rand"

	"github.com/The404Studios/outcasted/internal/domain"
)

// Weather - погода рейда. Чисто косметический слой: рисуется поверх
// тайлов и ни на что в симуляции не влияет.
type Weather uint8

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherFog
)

var weatherNames = map[Weather]string{
	WeatherClear: "Ясно",
	WeatherRain:  "Дождь",
	WeatherFog:   "Туман",
}

func (w Weather) String() string {
	if name, ok := weatherNames[w]; ok {
		return name
	}
	return "Ясно"
}

// RollWeather выбирает погоду на рейд: ясно чаще остального.
func RollWeather(rng *rand.Rand) Weather {
	switch roll := rng.Intn(100); {
	case roll < 60:
		return WeatherClear
	case roll < 85:
		return WeatherRain
	default:
		return WeatherFog
	}
}

// RenderOverlay подмешивает погодные символы в пустые тайлы.
func (w Weather) RenderOverlay(g *domain.WorldGrid, rng *rand.Rand) {
	var symbol rune
	var density int
	switch w {
	case WeatherRain:
		symbol, density = '\'', 20
	case WeatherFog:
		symbol, density = '░', 12
	default:
		return
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.GetTile(x, y) == domain.TileBlank && rng.Intn(density) == 0 {
				g.SetTile(x, y, symbol)
			}
		}
	}
}
