package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"wound-analyzer/internal/domain/entity"
	"wound-analyzer/internal/domain/port"
)

// WoundService проводит фото через детектор, измерение и сохранение.
type WoundService struct {
	analyzer    port.WoundAnalyzer
	store       port.ArtifactStore
	codec       port.ImageCodec
	calibration entity.Calibration
	logger      *zap.Logger
}

// NewWoundService создаёт сервис анализа раны.
func NewWoundService(analyzer port.WoundAnalyzer, store port.ArtifactStore, codec port.ImageCodec, calibration entity.Calibration, logger *zap.Logger) *WoundService {
	return &WoundService{
		analyzer:    analyzer,
		store:       store,
		codec:       codec,
		calibration: calibration,
		logger:      logger,
	}
}

// AnalyzePayload принимает base64 или data-URL.
func (s *WoundService) AnalyzePayload(ctx context.Context, payload string) (*entity.CaptureResult, error) {
	if s.codec == nil {
		return nil, errors.New("image codec is not configured")
	}
	data, err := s.codec.Decode(payload)
	if err != nil {
		return nil, err
	}
	return s.AnalyzeImage(ctx, data)
}

// AnalyzeImage измеряет рану на изображении и сохраняет артефакты.
// Файлы пишутся только после успешного измерения.
func (s *WoundService) AnalyzeImage(ctx context.Context, imageData []byte) (*entity.CaptureResult, error) {
	if s.analyzer == nil || s.codec == nil {
		return nil, errors.New("wound analyzer is not configured")
	}

	start := time.Now()
	analysis, err := s.analyzer.Analyze(ctx, imageData)
	if err != nil {
		return nil, err
	}

	measurement := s.calibration.Measure(analysis.Region)

	timestamp, err := s.store.Save(ctx, analysis.Images)
	if err != nil {
		return nil, fmt.Errorf("save images: %w", err)
	}

	s.logger.Info("wound analyzed",
		zap.String("timestamp", timestamp),
		zap.Int("image_width", analysis.ImageWidth),
		zap.Int("image_height", analysis.ImageHeight),
		zap.Float64("area_px", analysis.Region.Area),
		zap.Float64("wound_area", measurement.WoundArea),
		zap.Float64("length", measurement.Length),
		zap.Float64("width", measurement.Width),
		zap.Duration("duration", time.Since(start)))

	return &entity.CaptureResult{
		Timestamp:    timestamp,
		Measurements: measurement,
		Images: entity.CaptureImages{
			Annotated: s.codec.DataURL(analysis.Images.Annotated),
			Mask:      s.codec.DataURL(analysis.Images.Mask),
			Result:    s.codec.DataURL(analysis.Images.Result),
		},
		Region:    analysis.Region,
		Annotated: analysis.Images.Annotated,
	}, nil
}
