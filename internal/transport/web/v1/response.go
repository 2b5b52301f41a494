package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/setiawanwcksn/weddingorg-sub000/internal/domain"
	"github.com/setiawanwcksn/weddingorg-sub000/internal/transport/web/mw"
)

// Конверт ответа API: success всегда присутствует
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func OkData(data any) Envelope      { return Envelope{Success: true, Data: data} }
func OkMessage(msg string) Envelope { return Envelope{Success: true, Message: msg} }
func Fail(text string) Envelope     { return Envelope{Success: false, Error: text} }

// MapDomainError решает HTTP-статус + текст ошибки для конверта
func MapDomainError(err error) (httpStatus int, env Envelope) {
	switch {
	case errors.Is(err, domain.ErrBadParams),
		errors.Is(err, domain.ErrInvalidType),
		errors.Is(err, domain.ErrTooLarge),
		errors.Is(err, domain.ErrReadFailure):
		return http.StatusBadRequest, Fail(err.Error())
	case errors.Is(err, domain.ErrAuthMissing),
		errors.Is(err, domain.ErrAuthInvalid),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusUnauthorized, Fail(err.Error())
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, Fail(err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, Fail(err.Error())
	case errors.Is(err, domain.ErrInvalidRange):
		return http.StatusRequestedRangeNotSatisfiable, Fail(err.Error())
	case errors.Is(err, domain.ErrStoreFailure):
		return http.StatusInternalServerError, Fail(err.Error())
	default:
		// Таймауты/отмены — как 500
		return http.StatusInternalServerError, Fail(domain.ErrUnexpected.Error())
	}
}

// WriteJSON пишет произвольное тело (для нестандартных форм конверта)
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", mw.RequestIDFromCtx(r.Context()))
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// Шорткаты
func WriteOKData(w http.ResponseWriter, r *http.Request, data any) {
	WriteJSON(w, r, http.StatusOK, OkData(data))
}

func WriteDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status, env := MapDomainError(err)
	WriteJSON(w, r, status, env)
}
