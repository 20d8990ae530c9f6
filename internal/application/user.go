package app

import (
	"context"

	"wound-analyzer/internal/domain/entity"
	"wound-analyzer/internal/domain/port"
)

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

// move переводит пользователя в новое состояние, если он не занят.
// Если состояние успело измениться между чтением и записью, переход отклоняется.
func (s *UserService) move(ctx context.Context, userID, chatID int64, to entity.UserState) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if user.IsBusy() {
		return user, entity.ErrUserBusy
	}

	ok, err := s.repo.Transition(ctx, userID, chatID, user.State, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return user, entity.ErrUserBusy
	}

	user.SetState(to)
	return user, nil
}

// BeginWound ждёт фото раны
func (s *UserService) BeginWound(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.move(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

// BeginNote ждёт текст заключения врача
func (s *UserService) BeginNote(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.move(ctx, userID, chatID, entity.StateAwaitingNote)
}

// Process занимает пользователя на время обработки запроса.
// Возвращает ErrUserBusy, если предыдущий запрос ещё не завершён.
func (s *UserService) Process(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.move(ctx, userID, chatID, entity.StateProcessing)
}

// Release возвращает пользователя в главное меню после обработки запроса
func (s *UserService) Release(ctx context.Context, userID, chatID int64) error {
	_, err := s.repo.Transition(ctx, userID, chatID, entity.StateProcessing, entity.StateMainMenu)
	return err
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.move(ctx, userID, chatID, entity.StateMainMenu)
}
