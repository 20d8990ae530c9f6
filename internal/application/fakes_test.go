package app

import (
	"context"

	"wound-analyzer/internal/domain/entity"
)

type fakeAnalyzer struct {
	analysis *entity.WoundAnalysis
	err      error
	calls    int
	got      []byte
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, imageData []byte) (*entity.WoundAnalysis, error) {
	f.calls++
	f.got = imageData
	if f.err != nil {
		return nil, f.err
	}
	return f.analysis, nil
}

type fakeStore struct {
	saved []entity.WoundImages
	err   error
}

func (f *fakeStore) Save(ctx context.Context, images entity.WoundImages) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, images)
	return "20240101_120000", nil
}

type fakeCompleter struct {
	prompt string
	out    string
	err    error
}

func (f *fakeCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.out, f.err
}

type fakeCodec struct {
	decoded []byte
	err     error
}

func (f *fakeCodec) Decode(payload string) ([]byte, error) {
	return f.decoded, f.err
}

func (f *fakeCodec) DataURL(jpegData []byte) string {
	return "jpeg:" + string(jpegData)
}
