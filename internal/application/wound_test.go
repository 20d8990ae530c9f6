package app

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wound-analyzer/internal/domain/entity"
	"wound-analyzer/internal/infrastructure/imagecodec"
)

func sampleAnalysis() *entity.WoundAnalysis {
	return &entity.WoundAnalysis{
		ImageWidth:  300,
		ImageHeight: 200,
		Region:      entity.Region{Area: 99 * 49, Box: entity.NewBoundingBox(40, 30, 100, 50)},
		Images: entity.WoundImages{
			Original:  []byte("o"),
			Annotated: []byte("a"),
			Mask:      []byte("m"),
			Result:    []byte("r"),
		},
	}
}

func TestWoundService_AnalyzePayload(t *testing.T) {
	analyzer := &fakeAnalyzer{analysis: sampleAnalysis()}
	store := &fakeStore{}
	svc := NewWoundService(analyzer, store, imagecodec.Codec{}, entity.DefaultCalibration(), zap.NewNop())

	payload := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))
	res, err := svc.AnalyzePayload(context.Background(), payload)
	require.NoError(t, err)

	require.Equal(t, []byte("png-bytes"), analyzer.got)
	require.Len(t, store.saved, 1)
	require.Equal(t, "20240101_120000", res.Timestamp)
	require.Equal(t, entity.Measurement{WoundArea: 1.54, CustomAidArea: 1.49, Length: 1.05, Width: 0.53}, res.Measurements)
	require.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString([]byte("a")), res.Images.Annotated)
	require.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString([]byte("m")), res.Images.Mask)
	require.Equal(t, "data:image/jpeg;base64,"+base64.StdEncoding.EncodeToString([]byte("r")), res.Images.Result)
	require.Equal(t, []byte("a"), res.Annotated)
}

func TestWoundService_InvalidBase64(t *testing.T) {
	analyzer := &fakeAnalyzer{analysis: sampleAnalysis()}
	store := &fakeStore{}
	svc := NewWoundService(analyzer, store, imagecodec.Codec{}, entity.DefaultCalibration(), zap.NewNop())

	_, err := svc.AnalyzePayload(context.Background(), "not-base64!!")
	require.ErrorIs(t, err, entity.ErrDecode)
	require.Zero(t, analyzer.calls)
	require.Empty(t, store.saved)
}

func TestWoundService_NoRegionWritesNothing(t *testing.T) {
	analyzer := &fakeAnalyzer{err: entity.ErrNoRegionDetected}
	store := &fakeStore{}
	svc := NewWoundService(analyzer, store, imagecodec.Codec{}, entity.DefaultCalibration(), zap.NewNop())

	_, err := svc.AnalyzeImage(context.Background(), []byte("img"))
	require.ErrorIs(t, err, entity.ErrNoRegionDetected)
	require.Empty(t, store.saved)
}

func TestWoundService_StorageFailure(t *testing.T) {
	store := &fakeStore{err: errors.Join(entity.ErrStorage, errors.New("disk full"))}
	svc := NewWoundService(&fakeAnalyzer{analysis: sampleAnalysis()}, store, imagecodec.Codec{}, entity.DefaultCalibration(), zap.NewNop())

	_, err := svc.AnalyzeImage(context.Background(), []byte("img"))
	require.ErrorIs(t, err, entity.ErrStorage)
}

func TestWoundService_CustomCalibration(t *testing.T) {
	cal := entity.DefaultCalibration()
	cal.PixelsPerCm = 50
	svc := NewWoundService(&fakeAnalyzer{analysis: sampleAnalysis()}, &fakeStore{}, imagecodec.Codec{}, cal, zap.NewNop())

	res, err := svc.AnalyzeImage(context.Background(), []byte("img"))
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Measurements.Length)
	require.Equal(t, 1.0, res.Measurements.Width)
}

func TestWoundService_NotConfigured(t *testing.T) {
	svc := NewWoundService(nil, &fakeStore{}, imagecodec.Codec{}, entity.DefaultCalibration(), zap.NewNop())
	_, err := svc.AnalyzeImage(context.Background(), []byte("img"))
	require.Error(t, err)
}

func TestWoundService_UsesInjectedCodec(t *testing.T) {
	analyzer := &fakeAnalyzer{analysis: sampleAnalysis()}
	codec := &fakeCodec{decoded: []byte("raw")}
	svc := NewWoundService(analyzer, &fakeStore{}, codec, entity.DefaultCalibration(), zap.NewNop())

	res, err := svc.AnalyzePayload(context.Background(), "ignored")
	require.NoError(t, err)
	require.Equal(t, []byte("raw"), analyzer.got)
	require.Equal(t, entity.CaptureImages{Annotated: "jpeg:a", Mask: "jpeg:m", Result: "jpeg:r"}, res.Images)

	codec.err = entity.ErrDecode
	_, err = svc.AnalyzePayload(context.Background(), "ignored")
	require.ErrorIs(t, err, entity.ErrDecode)
	require.Equal(t, 1, analyzer.calls)
}
