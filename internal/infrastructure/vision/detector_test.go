//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocv.io/x/gocv"

	"wound-analyzer/internal/domain/entity"
)

var (
	bgrRed  = gocv.NewScalar(0, 0, 255, 0)
	bgrGrey = gocv.NewScalar(128, 128, 128, 0)
	bgrBlue = gocv.NewScalar(255, 0, 0, 0)
)

// syntheticFrame заливает кадр фоном и рисует сплошные прямоугольники.
func syntheticFrame(w, h int, background gocv.Scalar, fill gocv.Scalar, rects ...image.Rectangle) gocv.Mat {
	mat := gocv.NewMatWithSizeFromScalar(background, h, w, gocv.MatTypeCV8UC3)
	for _, r := range rects {
		roi := mat.Region(r)
		roi.SetTo(fill)
		roi.Close()
	}
	return mat
}

func encodePNG(t *testing.T, mat gocv.Mat) []byte {
	t.Helper()
	buf, err := gocv.IMEncode(gocv.PNGFileExt, mat)
	require.NoError(t, err)
	defer buf.Close()
	return bytes.Clone(buf.GetBytes())
}

func newDetector() *WoundDetector {
	return NewWoundDetector(DefaultOptions(), zap.NewNop())
}

func TestAnalyze_RedRectangle(t *testing.T) {
	frame := syntheticFrame(300, 200, bgrGrey, bgrRed, image.Rect(40, 30, 140, 80))
	defer frame.Close()

	res, err := newDetector().Analyze(context.Background(), encodePNG(t, frame))
	require.NoError(t, err)

	require.Equal(t, 300, res.ImageWidth)
	require.Equal(t, 200, res.ImageHeight)
	require.Equal(t, entity.NewBoundingBox(40, 30, 100, 50), res.Region.Box)
	require.Equal(t, float64(99*49), res.Region.Area)

	m := entity.DefaultCalibration().Measure(res.Region)
	require.Equal(t, 1.49, m.CustomAidArea)
	require.Equal(t, 1.05, m.Length)
	require.Equal(t, 0.53, m.Width)

	for name, data := range map[string][]byte{
		"original":  res.Images.Original,
		"annotated": res.Images.Annotated,
		"mask":      res.Images.Mask,
		"result":    res.Images.Result,
	} {
		decoded, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
		require.NoError(t, err, name)
		require.Equal(t, 300, decoded.Cols(), name)
		require.Equal(t, 200, decoded.Rows(), name)
		decoded.Close()
	}
}

func TestAnalyze_PicksLargestRegion(t *testing.T) {
	frame := syntheticFrame(320, 240, bgrGrey, bgrRed,
		image.Rect(10, 10, 30, 30),
		image.Rect(100, 120, 220, 200),
		image.Rect(280, 10, 300, 60),
	)
	defer frame.Close()

	res, err := newDetector().Analyze(context.Background(), encodePNG(t, frame))
	require.NoError(t, err)
	require.Equal(t, entity.NewBoundingBox(100, 120, 120, 80), res.Region.Box)
}

func TestAnalyze_NoRedPixels(t *testing.T) {
	for name, bg := range map[string]gocv.Scalar{
		"black": gocv.NewScalar(0, 0, 0, 0),
		"blue":  bgrBlue,
	} {
		frame := syntheticFrame(120, 80, bg, bg)
		_, err := newDetector().Analyze(context.Background(), encodePNG(t, frame))
		frame.Close()
		require.ErrorIs(t, err, entity.ErrNoRegionDetected, name)
	}
}

func TestAnalyze_NotAnImage(t *testing.T) {
	_, err := newDetector().Analyze(context.Background(), []byte("definitely not an image"))
	require.ErrorIs(t, err, entity.ErrDecode)

	_, err = newDetector().Analyze(context.Background(), nil)
	require.ErrorIs(t, err, entity.ErrDecode)
}

func TestAnalyze_CancelledContext(t *testing.T) {
	frame := syntheticFrame(100, 100, bgrGrey, bgrRed, image.Rect(10, 10, 50, 50))
	defer frame.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newDetector().Analyze(ctx, encodePNG(t, frame))
	require.ErrorIs(t, err, context.Canceled)
}

func TestSegment_IsDeterministic(t *testing.T) {
	frame := syntheticFrame(200, 150, bgrGrey, bgrRed, image.Rect(20, 20, 90, 70))
	defer frame.Close()
	d := newDetector()

	first := d.Segment(frame)
	defer first.Close()
	second := d.Segment(frame)
	defer second.Close()

	require.Equal(t, first.ToBytes(), second.ToBytes())
	require.Equal(t, 70*50, gocv.CountNonZero(first))
}

func TestSegment_HighRedBand(t *testing.T) {
	// BGR (60, 0, 255): оттенок около 173 в шкале OpenCV.
	frame := syntheticFrame(60, 60, bgrGrey, gocv.NewScalar(60, 0, 255, 0), image.Rect(0, 0, 30, 30))
	defer frame.Close()

	mask := newDetector().Segment(frame)
	defer mask.Close()
	require.Equal(t, 30*30, gocv.CountNonZero(mask))
}

func TestSegment_LowSaturationIgnored(t *testing.T) {
	// Бледно-розовый: оттенок красный, но насыщенность ниже 120.
	frame := syntheticFrame(60, 60, bgrGrey, gocv.NewScalar(180, 180, 255, 0), image.Rect(0, 0, 30, 30))
	defer frame.Close()

	mask := newDetector().Segment(frame)
	defer mask.Close()
	require.Zero(t, gocv.CountNonZero(mask))
}

func TestMaskedOnly_KeepsOnlySelectedPixels(t *testing.T) {
	frame := syntheticFrame(100, 100, bgrGrey, bgrRed, image.Rect(10, 10, 40, 40))
	defer frame.Close()

	mask := newDetector().Segment(frame)
	defer mask.Close()

	result := MaskedOnly(frame, mask)
	defer result.Close()

	inside := result.GetVecbAt(20, 20)
	require.Equal(t, []uint8{0, 0, 255}, []uint8{inside[0], inside[1], inside[2]})

	outside := result.GetVecbAt(80, 80)
	require.Equal(t, []uint8{0, 0, 0}, []uint8{outside[0], outside[1], outside[2]})
}

func TestAnnotate_DoesNotTouchOriginal(t *testing.T) {
	frame := syntheticFrame(300, 200, bgrGrey, bgrRed, image.Rect(40, 30, 140, 80))
	defer frame.Close()
	before := frame.ToBytes()

	annotated := newDetector().Annotate(frame, entity.NewBoundingBox(40, 30, 100, 50))
	defer annotated.Close()

	require.Equal(t, before, frame.ToBytes())
	require.NotEqual(t, before, annotated.ToBytes())

	// Левая грань рамки синего цвета.
	edge := annotated.GetVecbAt(55, 40)
	require.Greater(t, edge[0], uint8(200))
	require.Less(t, edge[2], uint8(100))
}
