//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"wound-analyzer/internal/domain/entity"
)

// OpenCVEnabled сборка без OpenCV, Analyze всегда возвращает ErrNoOpenCV
const OpenCVEnabled = false

// ErrNoOpenCV сборка без тега gocv
var ErrNoOpenCV = errors.New("gocv build tag is not enabled")

// WoundDetector детектор-заглушка (без OpenCV).
type WoundDetector struct {
	opts   Options
	logger *zap.Logger
}

// NewWoundDetector создаёт детектор-заглушку.
func NewWoundDetector(opts Options, logger *zap.Logger) *WoundDetector {
	return &WoundDetector{opts: opts, logger: logger}
}

// Analyze возвращает ошибку, если сборка без тега gocv.
func (d *WoundDetector) Analyze(ctx context.Context, imageData []byte) (*entity.WoundAnalysis, error) {
	_ = ctx
	_ = imageData
	return nil, ErrNoOpenCV
}
