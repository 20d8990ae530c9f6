package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ModeRelease режим продакшена (совпадает с gin.ReleaseMode)
const ModeRelease = "release"

// New создаёт zap-логгер: JSON в release, цветной консольный вывод иначе.
func New(mode string) (*zap.Logger, error) {
	var config zap.Config

	if mode == ModeRelease {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return config.Build()
}

// Sync сбрасывает буферы логгера, ошибку синхронизации stderr игнорирует.
func Sync(l *zap.Logger) {
	if l != nil {
		_ = l.Sync()
	}
}
