package container

import (
	"go.uber.org/zap"

	app "wound-analyzer/internal/application"
	"wound-analyzer/internal/domain/entity"
	"wound-analyzer/internal/domain/port"
)

type Container struct {
	UserService  *app.UserService
	WoundService *app.WoundService
	NoteService  *app.NoteService
}

// Deps внешние зависимости сервисов
type Deps struct {
	UserRepo    port.UserRepository
	Analyzer    port.WoundAnalyzer
	Store       port.ArtifactStore
	Codec       port.ImageCodec
	Notes       port.NoteAnalyzer
	Calibration entity.Calibration
	Logger      *zap.Logger
}

func New(d Deps) *Container {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Container{
		UserService:  app.NewUserService(d.UserRepo),
		WoundService: app.NewWoundService(d.Analyzer, d.Store, d.Codec, d.Calibration, logger.Named("wound")),
		NoteService:  app.NewNoteService(d.Notes, logger.Named("note")),
	}
}
