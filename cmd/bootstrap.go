package main

import (
	"fmt"

	"go.uber.org/zap"

	"wound-analyzer/config"
	"wound-analyzer/internal/container"
	"wound-analyzer/internal/infrastructure/imagecodec"
	"wound-analyzer/internal/infrastructure/llm"
	applog "wound-analyzer/internal/infrastructure/logger"
	"wound-analyzer/internal/infrastructure/storage"
	"wound-analyzer/internal/infrastructure/vision"
)

// runtime собранные зависимости процесса
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *storage.FileArtifactStore
	app    *container.Container
}

func bootstrap(configPath string) (*runtime, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := applog.New(cfg.Server.Mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	// Каталоги создаются один раз до приёма запросов
	store := storage.NewFileArtifactStore(cfg.Storage.SaveDir, logger.Named("storage"))
	if err := store.Init(); err != nil {
		return nil, err
	}

	detector := newDetector(cfg.Storage.JPEGQuality, logger)

	notes, err := llm.New(llm.Config{
		Provider:    cfg.LLM.Provider,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		APIKey:      cfg.LLM.APIKey(),
		BaseURL:     cfg.LLM.OpenAIBaseURL,
		Timeout:     cfg.LLM.Timeout,
	})
	if err != nil {
		return nil, err
	}

	app := container.New(container.Deps{
		UserRepo:    storage.NewMemoryUserRepository(),
		Analyzer:    detector,
		Store:       store,
		Codec:       imagecodec.Codec{},
		Notes:       notes,
		Calibration: cfg.EntityCalibration(),
		Logger:      logger,
	})

	return &runtime{cfg: cfg, logger: logger, store: store, app: app}, nil
}

// newDetector собирает детектор и предупреждает, если бинарник собран без OpenCV
func newDetector(jpegQuality int, logger *zap.Logger) *vision.WoundDetector {
	opts := vision.DefaultOptions()
	opts.JPEGQuality = jpegQuality

	if !vision.OpenCVEnabled {
		logger.Warn("built without the gocv tag, /analyze-wound will fail on every request",
			zap.String("rebuild", "go build -tags gocv ./cmd"))
	}

	return vision.NewWoundDetector(opts, logger.Named("vision"))
}
