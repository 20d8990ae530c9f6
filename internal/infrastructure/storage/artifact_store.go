package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"wound-analyzer/internal/domain/entity"
	"wound-analyzer/internal/domain/port"
)

// TimestampLayout формат метки времени в именах файлов (сортируемый, до секунды)
const TimestampLayout = "20060102_150405"

// Подкаталоги базовой директории
const (
	DirOriginal  = "original"
	DirAnnotated = "annotated"
	DirMask      = "mask"
	DirResult    = "result"
)

// Subdirs все подкаталоги в порядке записи
var Subdirs = []string{DirOriginal, DirAnnotated, DirMask, DirResult}

// FileArtifactStore сохраняет изображения анализа в виде файлов.
// Два запроса в пределах одной секунды перезапишут файлы друг друга.
type FileArtifactStore struct {
	baseDir string
	now     func() time.Time
	logger  *zap.Logger
}

// NewFileArtifactStore создаёт файловое хранилище в baseDir
func NewFileArtifactStore(baseDir string, logger *zap.Logger) *FileArtifactStore {
	return &FileArtifactStore{
		baseDir: baseDir,
		now:     time.Now,
		logger:  logger,
	}
}

// WithClock подменяет источник времени
func (s *FileArtifactStore) WithClock(now func() time.Time) *FileArtifactStore {
	s.now = now
	return s
}

// BaseDir возвращает базовую директорию
func (s *FileArtifactStore) BaseDir() string {
	return s.baseDir
}

// Init создаёт дерево каталогов. Вызывается один раз при старте процесса.
func (s *FileArtifactStore) Init() error {
	for _, dir := range Subdirs {
		if err := os.MkdirAll(filepath.Join(s.baseDir, dir), 0o755); err != nil {
			return fmt.Errorf("%w: create %s directory: %v", entity.ErrStorage, dir, err)
		}
	}
	return nil
}

// Path возвращает путь к файлу артефакта
func (s *FileArtifactStore) Path(dir, timestamp string) string {
	return filepath.Join(s.baseDir, dir, "image_"+timestamp+".jpg")
}

// Save записывает четыре изображения под общей меткой времени.
func (s *FileArtifactStore) Save(ctx context.Context, images entity.WoundImages) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	timestamp := s.now().Format(TimestampLayout)
	files := []struct {
		dir  string
		data []byte
	}{
		{DirOriginal, images.Original},
		{DirAnnotated, images.Annotated},
		{DirMask, images.Mask},
		{DirResult, images.Result},
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := s.Path(f.dir, timestamp)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			s.discard(written)
			return "", fmt.Errorf("%w: write %s: %v", entity.ErrStorage, path, err)
		}
		written = append(written, path)
	}

	s.logger.Info("images saved",
		zap.String("timestamp", timestamp),
		zap.String("original", s.Path(DirOriginal, timestamp)),
		zap.String("annotated", s.Path(DirAnnotated, timestamp)),
		zap.String("mask", s.Path(DirMask, timestamp)),
		zap.String("result", s.Path(DirResult, timestamp)))

	return timestamp, nil
}

// discard удаляет файлы неудачного сохранения, частичный набор на диске не остаётся
func (s *FileArtifactStore) discard(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("failed to remove partial artifact", zap.String("path", path), zap.Error(err))
		}
	}
}

// Проверка реализации интерфейса
var _ port.ArtifactStore = (*FileArtifactStore)(nil)
