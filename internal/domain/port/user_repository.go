package port

import (
	"context"

	"wound-analyzer/internal/domain/entity"
)

// UserRepository хранит состояние диалога пользователя в Telegram.
// Реализации отдают копии, изменения применяются только через Save или Transition.
type UserRepository interface {
	// Get возвращает пользователя по ID, создаёт нового в главном меню если не найден
	Get(ctx context.Context, userID, chatID int64) (*entity.User, error)

	// Save сохраняет пользователя целиком
	Save(ctx context.Context, user *entity.User) error

	// Transition атомарно переводит пользователя из from в to.
	// Возвращает false, если текущее состояние отличается от from.
	Transition(ctx context.Context, userID, chatID int64, from, to entity.UserState) (bool, error)
}
