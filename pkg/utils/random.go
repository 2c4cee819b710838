package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
)

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() string {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// GenerateDeterministicID создает воспроизводимый ID из сида симуляции.
// Используется генератором мира и спавнером, чтобы один сид давал один рейд.
func GenerateDeterministicID(rng *mrand.Rand, prefix string) string {
	return fmt.Sprintf("%s%08x", prefix, rng.Uint32())
}

// RandRange возвращает целое в диапазоне [min, max] включительно.
func RandRange(rng *mrand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}
