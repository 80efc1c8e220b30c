package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-MarketplaceBFF/internal/integrations/gateway"
)

// APIVersion версия ответа, отдаваемая в конверте
const APIVersion = "1.0.0"

const (
	msgInternalError = "внутренняя ошибка сервера"
	msgUnavailable   = "сервис маркетплейса временно недоступен"
	msgUnauthorized  = "требуется авторизация"
	msgForbidden     = "доступ запрещен"
	msgSuccess       = "success"
)

// Envelope формат всех ответов BFF, совпадает с форматом API маркетплейса
type Envelope struct {
	Status    bool        `json:"status"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
}

// RespondJSON отправляет успешный ответ с данными
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	respond(w, status, Envelope{Status: true, Message: msgSuccess, Data: data})
}

// RespondMessage отправляет успешный ответ с сообщением
func RespondMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	respond(w, status, Envelope{Status: true, Message: message, Data: data})
}

// RespondError отправляет ответ с ошибкой
func RespondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, Envelope{Status: false, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = msgForbidden
	}
	RespondError(w, http.StatusForbidden, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = msgUnauthorized
	}
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondUnavailable ответ, когда внешний API недоступен
func RespondUnavailable(w http.ResponseWriter) {
	RespondError(w, http.StatusBadGateway, msgUnavailable)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// UpstreamFailed сообщает, что ошибка пришла от API маркетплейса: сеть, 5xx или битый конверт
func UpstreamFailed(err error) bool {
	return errors.Is(err, gateway.ErrTransport) ||
		errors.Is(err, gateway.ErrUpstream) ||
		errors.Is(err, gateway.ErrInvalidResponse)
}

// RespondFailure отвечает 502 на сбой API маркетплейса и 500 на локальную ошибку
func RespondFailure(w http.ResponseWriter, err error) {
	if UpstreamFailed(err) {
		RespondUnavailable(w)
		return
	}
	RespondInternalError(w)
}

func respond(w http.ResponseWriter, status int, envelope Envelope) {
	envelope.Version = APIVersion
	envelope.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope)
}
