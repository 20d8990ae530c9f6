// Package rest HTTP API сервиса на gin.
package rest

import (
	"context"
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wound-analyzer/internal/domain/entity"
)

const (
	msgInvalidContentType = "Invalid content type, expecting application/json"
	msgNoNote             = "No doctor's note provided"
	msgNoImage            = "No image data provided"
	msgBodyTooLarge       = "Request body too large"
)

// WoundAnalyzer сценарий анализа раны
type WoundAnalyzer interface {
	AnalyzePayload(ctx context.Context, payload string) (*entity.CaptureResult, error)
}

// NoteAnalyzer сценарий анализа заключения врача
type NoteAnalyzer interface {
	Analyze(ctx context.Context, note string) (string, error)
}

type Handler struct {
	wounds WoundAnalyzer
	notes  NoteAnalyzer
	logger *zap.Logger
}

func NewHandler(wounds WoundAnalyzer, notes NoteAnalyzer, logger *zap.Logger) *Handler {
	return &Handler{
		wounds: wounds,
		notes:  notes,
		logger: logger,
	}
}

// AnalyzeNote обрабатывает POST /analyze-note
func (h *Handler) AnalyzeNote(c *gin.Context) {
	var req NoteRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.Note == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoNote})
		return
	}

	analysis, err := h.notes.Analyze(c.Request.Context(), *req.Note)
	if err != nil {
		h.logger.Error("error analyzing doctor's note", zap.Error(err))
		c.JSON(http.StatusInternalServerError, FailureResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, NoteResponse{Success: true, Analysis: analysis})
}

// AnalyzeWound обрабатывает POST /analyze-wound
func (h *Handler) AnalyzeWound(c *gin.Context) {
	var req WoundRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if req.Image == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgNoImage})
		return
	}

	result, err := h.wounds.AnalyzePayload(c.Request.Context(), *req.Image)
	if err != nil {
		h.logger.Error("error processing image",
			zap.Bool("no_region", errors.Is(err, entity.ErrNoRegionDetected)),
			zap.Bool("decode", errors.Is(err, entity.ErrDecode)),
			zap.Bool("storage", errors.Is(err, entity.ErrStorage)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, WoundResponse{Success: true, CaptureResult: result})
}

// Preflight отвечает на OPTIONS пустым 200
func (h *Handler) Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Health проверка здоровья сервиса
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindJSON проверяет Content-Type и разбирает тело, при ошибке пишет 400.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	if !isJSON(c.GetHeader("Content-Type")) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidContentType})
		return false
	}

	if err := c.ShouldBindJSON(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: msgBodyTooLarge})
			return false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON: " + err.Error()})
		return false
	}

	return true
}

// isJSON принимает application/json и application/*+json
func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mt == "application/json" || (strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json"))
}
