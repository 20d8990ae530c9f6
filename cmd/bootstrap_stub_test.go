//go:build !gocv
// +build !gocv

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"wound-analyzer/internal/infrastructure/vision"
)

func TestNewDetector_WarnsWithoutOpenCV(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	detector := newDetector(90, zap.New(core))
	require.NotNil(t, detector)

	warnings := logs.FilterMessageSnippet("without the gocv tag").All()
	require.Len(t, warnings, 1)
	require.Equal(t, zapcore.WarnLevel, warnings[0].Level)

	_, err := detector.Analyze(context.Background(), []byte("img"))
	require.ErrorIs(t, err, vision.ErrNoOpenCV)
}
