//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gocv.io/x/gocv"

	"wound-analyzer/internal/domain/entity"
	"wound-analyzer/internal/domain/port"
)

// OpenCVEnabled сборка с OpenCV
const OpenCVEnabled = true

// WoundDetector находит рану по красному цвету и отрисовывает результаты.
type WoundDetector struct {
	opts   Options
	logger *zap.Logger
}

// NewWoundDetector создаёт детектор с заданными настройками.
func NewWoundDetector(opts Options, logger *zap.Logger) *WoundDetector {
	return &WoundDetector{opts: opts, logger: logger}
}

// Analyze декодирует изображение, строит маску, выбирает самый большой контур
// и возвращает его вместе с закодированными в JPEG изображениями.
func (d *WoundDetector) Analyze(ctx context.Context, imageData []byte) (*entity.WoundAnalysis, error) {
	frame, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer frame.Close()

	mask := d.Segment(frame)
	defer mask.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	region, err := LargestRegion(mask)
	if err != nil {
		return nil, err
	}

	annotated := d.Annotate(frame, region.Box)
	defer annotated.Close()

	result := MaskedOnly(frame, mask)
	defer result.Close()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	images, err := d.encodeAll(frame, annotated, mask, result)
	if err != nil {
		return nil, err
	}

	d.logger.Debug("wound region detected",
		zap.Int("width", frame.Cols()),
		zap.Int("height", frame.Rows()),
		zap.Float64("area_px", region.Area),
		zap.Int("box_width", region.Box.Width()),
		zap.Int("box_height", region.Box.Height()))

	return &entity.WoundAnalysis{
		ImageWidth:  frame.Cols(),
		ImageHeight: frame.Rows(),
		Region:      region,
		Images:      images,
	}, nil
}

func (d *WoundDetector) encodeAll(original, annotated, mask, result gocv.Mat) (entity.WoundImages, error) {
	var images entity.WoundImages
	targets := []struct {
		name string
		mat  gocv.Mat
		dst  *[]byte
	}{
		{"original", original, &images.Original},
		{"annotated", annotated, &images.Annotated},
		{"mask", mask, &images.Mask},
		{"result", result, &images.Result},
	}

	for _, t := range targets {
		data, err := EncodeJPEG(t.mat, d.opts.JPEGQuality)
		if err != nil {
			return entity.WoundImages{}, fmt.Errorf("encode %s: %w", t.name, err)
		}
		*t.dst = data
	}

	return images, nil
}

// decodeToMat превращает байты изображения в BGR gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	if len(imageData) == 0 {
		return gocv.NewMat(), fmt.Errorf("%w: empty image", entity.ErrDecode)
	}
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	if err == nil {
		err = errors.New("unrecognized image container")
	}
	return gocv.NewMat(), fmt.Errorf("%w: %v", entity.ErrDecode, err)
}

// Проверка реализации интерфейса
var _ port.WoundAnalyzer = (*WoundDetector)(nil)
