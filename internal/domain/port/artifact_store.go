package port

import (
	"context"

	"wound-analyzer/internal/domain/entity"
)

// ArtifactStore интерфейс хранилища промежуточных изображений
type ArtifactStore interface {
	// Save записывает четыре изображения под общей меткой времени и возвращает её
	Save(ctx context.Context, images entity.WoundImages) (string, error)
}
