package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wound-analyzer/internal/domain/entity"
	"wound-analyzer/internal/domain/port"
)

const notePrompt = "Analyze the following doctor's note and provide possible diagnoses:\n%s"

// NoteService пересылает заключение врача языковой модели.
type NoteService struct {
	analyzer port.NoteAnalyzer
	logger   *zap.Logger
}

func NewNoteService(analyzer port.NoteAnalyzer, logger *zap.Logger) *NoteService {
	return &NoteService{analyzer: analyzer, logger: logger}
}

// Analyze возвращает ответ модели без пробелов по краям.
func (s *NoteService) Analyze(ctx context.Context, note string) (string, error) {
	if s.analyzer == nil {
		return "", fmt.Errorf("%w: note analyzer is not configured", entity.ErrUpstream)
	}

	out, err := s.analyzer.Complete(ctx, fmt.Sprintf(notePrompt, note))
	if err != nil {
		s.logger.Error("note analysis failed", zap.Error(err))
		return "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	return strings.TrimSpace(out), nil
}
