package telegram

import (
	"fmt"
	"strings"

	"wound-analyzer/internal/domain/entity"
)

// MaxMessageLength лимит Telegram на длину текстового сообщения в символах
const MaxMessageLength = 4096

// FormatMeasurement подпись к фото с размерами раны
func FormatMeasurement(m entity.Measurement) string {
	return fmt.Sprintf("📏 Длина: %.2f см\n📐 Ширина: %.2f см\n🩹 Площадь раны: %.2f см²\n🩺 Площадь повязки: %.2f см²",
		m.Length, m.Width, m.WoundArea, m.CustomAidArea)
}

// SplitMessage режет текст на части не длиннее limit символов.
// Разрез по возможности делается на переводе строки во второй половине части.
func SplitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var parts []string
	for len(runes) > limit {
		cut := limit
		for i := limit; i > limit/2; i-- {
			if runes[i-1] == '\n' {
				cut = i
				break
			}
		}
		if part := strings.TrimRight(string(runes[:cut]), "\n"); part != "" {
			parts = append(parts, part)
		}
		runes = runes[cut:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}

	return parts
}
