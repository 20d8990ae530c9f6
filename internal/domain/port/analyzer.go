package port

import (
	"context"

	"wound-analyzer/internal/domain/entity"
)

// WoundAnalyzer интерфейс детектора раны
type WoundAnalyzer interface {
	// Analyze находит самую большую красную область и отрисовывает
	// аннотированное изображение, маску и маскированный кадр.
	Analyze(ctx context.Context, imageData []byte) (*entity.WoundAnalysis, error)
}
