package entity

import "errors"

var (
	// ErrInvalidRequest некорректный запрос клиента
	ErrInvalidRequest = errors.New("invalid request")
	// ErrDecode base64 или контейнер изображения не распознан
	ErrDecode = errors.New("failed to decode image")
	// ErrNoRegionDetected на изображении нет подходящей области
	ErrNoRegionDetected = errors.New("no wound area detected in the image")
	// ErrStorage ошибка записи артефактов на диск
	ErrStorage = errors.New("storage failure")
	// ErrUpstream ошибка внешней языковой модели
	ErrUpstream = errors.New("upstream failure")
	// ErrUserBusy предыдущий запрос пользователя ещё обрабатывается
	ErrUserBusy = errors.New("previous request is still processing")
)
