package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/aidar/greenlink/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой. Клиенты различают ошибки по тексту
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{Error: message})
}

// HandleError преобразует доменные ошибки в HTTP ответы.
// Клиентские ошибки отдаются как 400 с сообщением, остальные логируются и скрываются за 500
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsClientError(err) {
		RespondWithError(w, r, http.StatusBadRequest, clientMessage(err))
		return
	}

	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)
	RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
}

// clientMessage извлекает сообщение доменной ошибки, даже если она обернута
func clientMessage(err error) string {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return domainErr.Message
	}
	return err.Error()
}
