package rest

import "wound-analyzer/internal/domain/entity"

// NoteRequest тело POST /analyze-note
type NoteRequest struct {
	Note *string `json:"note"`
}

// NoteResponse успешный анализ заключения
type NoteResponse struct {
	Success  bool   `json:"success"`
	Analysis string `json:"analysis"`
}

// WoundRequest тело POST /analyze-wound
type WoundRequest struct {
	Image *string `json:"image"`
}

// WoundResponse успешный анализ раны
type WoundResponse struct {
	Success bool `json:"success"`
	*entity.CaptureResult
}

// ErrorResponse ошибка запроса
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse ошибка внешнего сервиса
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
