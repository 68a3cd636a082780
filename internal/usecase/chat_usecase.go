package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/openai"
)

// ErrAINotConfigured signals a missing API key. Handlers map it to a
// configuration error instead of an external-service failure.
var ErrAINotConfigured = errors.New("openai api key not configured")

// AIClient is the outbound surface the chat usecase depends on.
type AIClient interface {
	Configured() bool
	ChatCompletion(ctx context.Context, system, user string) (string, error)
	Respond(ctx context.Context, input string) (string, error)
}

const assistantSystemPrompt = "Eres un asistente virtual que ayuda a buscar empleos en Bolivia. " +
	"Proporciona información sobre portales de empleo, empresas que contratan, y consejos para la búsqueda de trabajo."

var askSuggestions = []string{
	"Portales de empleo en Bolivia",
	"Empresas que contratan",
	"Consejos para entrevistas",
}

const jobSearchInstructions = `Eres un asistente de búsqueda de empleos en BOLIVIA.

SÉ BREVE Y CONCISO. Responde en máximo 10 líneas.

FORMATO DE RESPUESTA:
1. Lista 2-3 portales de empleo bolivianos con links
2. Lista 2-3 empresas que contratan para "%s" en Bolivia

EJEMPLO:
Portales:
- CompuTrabajo: https://www.computrabajo.com.bo
- LinkedIn: https://www.linkedin.com/jobs/search/?location=Bolivia

Empresas que contratan:
- Banco Mercantil
- Deloitte Bolivia
- Tigo`

const jobSearchFallback = `Portales en Bolivia:
- CompuTrabajo: https://www.computrabajo.com.bo
- LinkedIn: https://www.linkedin.com/jobs/search/?location=Bolivia
- Indeed: https://bo.indeed.com

Empresas bolivianas:
- Bancos: BNB, Banco Mercantil
- Tech: Viva, Tigo, Entel
- Consultoras: Deloitte, EY, KPMG`

type chatUsecase struct {
	ai  AIClient
	env string
}

func NewChatUsecase(ai AIClient, env string) domain.ChatUsecase {
	return &chatUsecase{ai: ai, env: env}
}

// Ask proxies a free-form question to the assistant. Failures come back
// classified; technical detail survives only in development mode.
func (u *chatUsecase) Ask(ctx context.Context, message string) (*domain.ChatReply, error) {
	if !u.ai.Configured() {
		return nil, ErrAINotConfigured
	}

	reply, err := u.ai.ChatCompletion(ctx, assistantSystemPrompt, message)
	if err != nil {
		callErr := openai.Classify(err)
		if u.env != "development" {
			callErr.Detail = ""
		}
		return nil, callErr
	}

	return &domain.ChatReply{Reply: reply, Suggestions: askSuggestions}, nil
}

// JobSearch asks the assistant for portals and companies matching the
// query. The caller decides how to pair a failure with Fallback.
func (u *chatUsecase) JobSearch(ctx context.Context, userQuery string) (string, error) {
	if !u.ai.Configured() {
		return "", ErrAINotConfigured
	}

	input := fmt.Sprintf(jobSearchInstructions, userQuery) +
		fmt.Sprintf("\n\nBusco: %s en Bolivia\n\nDame SOLO portales y empresas. Máximo 10 líneas.", userQuery)
	return u.ai.Respond(ctx, input)
}

// Fallback is the canned directory served when the assistant is down.
func (u *chatUsecase) Fallback() string {
	return jobSearchFallback
}

func (u *chatUsecase) Health() domain.ChatHealth {
	status := "OK"
	if !u.ai.Configured() {
		status = "NOT_CONFIGURED"
	}
	return domain.ChatHealth{
		Status:           status,
		Service:          "Chat AI",
		APIKeyConfigured: u.ai.Configured(),
	}
}
