package openai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// StatusError is a non-2xx reply from the external service.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("external API returned status %d: %s", e.StatusCode, e.Body)
}

// CallError is the classified form of an outbound failure: a stable
// machine code, a short title, and a user-safe message that never echoes
// the raw exception text. Detail holds the technical message and is only
// exposed in development mode.
type CallError struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Detail  string `json:"details,omitempty"`
}

func (e *CallError) Error() string {
	return e.Message
}

// Classify maps a raw failure from an outbound call onto exactly one
// taxonomy entry. It is pure: one failure in, one classified outcome out.
func Classify(err error) *CallError {
	lower := strings.ToLower(err.Error())
	detail := err.Error()

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) ||
		strings.Contains(lower, "no such host") ||
		strings.Contains(lower, "connection refused") {
		return &CallError{
			Code:    "NETWORK_ERROR",
			Title:   "Sin conexión",
			Message: "No se pudo conectar al servicio. Por favor, verifica tu conexión a internet y vuelve a intentarlo.",
			Status:  503,
			Detail:  detail,
		}
	}

	var netErr net.Error
	if (errors.As(err, &netErr) && netErr.Timeout()) ||
		errors.Is(err, context.DeadlineExceeded) ||
		strings.Contains(lower, "timeout") {
		return &CallError{
			Code:    "TIMEOUT_ERROR",
			Title:   "Tiempo de espera agotado",
			Message: "La solicitud tardó demasiado tiempo. Por favor, intenta nuevamente.",
			Status:  504,
			Detail:  detail,
		}
	}

	var statusErr *StatusError
	statusCode := 0
	if errors.As(err, &statusErr) {
		statusCode = statusErr.StatusCode
	}

	if statusCode == 401 || strings.Contains(lower, "unauthorized") ||
		strings.Contains(lower, "invalid api key") {
		return &CallError{
			Code:    "AUTH_ERROR",
			Title:   "Error de autenticación",
			Message: "Hubo un problema con las credenciales del servicio. Contacta al administrador.",
			Status:  502,
			Detail:  detail,
		}
	}

	if statusCode == 429 || strings.Contains(lower, "rate limit") {
		return &CallError{
			Code:    "RATE_LIMIT",
			Title:   "Demasiadas solicitudes",
			Message: "Has alcanzado el límite de solicitudes. Por favor, espera un momento e intenta de nuevo.",
			Status:  429,
			Detail:  detail,
		}
	}

	return &CallError{
		Code:    "EXTERNAL_SERVICE_ERROR",
		Title:   "Error del servicio",
		Message: "El servicio de IA no está disponible en este momento. Por favor, intenta más tarde.",
		Status:  502,
		Detail:  detail,
	}
}
