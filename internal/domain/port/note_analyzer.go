package port

import "context"

// NoteAnalyzer интерфейс внешней языковой модели
type NoteAnalyzer interface {
	// Complete отправляет промпт модели и возвращает текст ответа
	Complete(ctx context.Context, prompt string) (string, error)
}
