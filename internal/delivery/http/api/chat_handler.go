package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/logger"
	"go-jobmarket-backend/pkg/openai"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the AI proxy. Both route families are public so
// the frontend widget works for anonymous visitors.
type ChatHandler struct {
	chatUC domain.ChatUsecase
}

func NewChatHandler(public *gin.RouterGroup, chatUC domain.ChatUsecase) {
	handler := &ChatHandler{chatUC: chatUC}

	chat := public.Group("/chat")
	{
		chat.POST("/ask", handler.Ask)
		chat.GET("/health", handler.Health)
	}

	public.POST("/openai", handler.JobSearch)
}

type ChatAskRequest struct {
	Message string `json:"message"`
}

func chatError(c *gin.Context, status int, code, title, message string) {
	c.JSON(status, gin.H{
		"ok": false,
		"error": gin.H{
			"code":    code,
			"title":   title,
			"message": message,
		},
	})
}

// Ask godoc
// @Summary      Preguntar al asistente
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        question  body      ChatAskRequest  true  "Mensaje del usuario"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /chat/ask [post]
func (h *ChatHandler) Ask(c *gin.Context) {
	var req ChatAskRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		chatError(c, http.StatusBadRequest, "INVALID_INPUT", "Mensaje inválido", "Por favor, escribe un mensaje para continuar.")
		return
	}

	reply, err := h.chatUC.Ask(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, usecase.ErrAINotConfigured) {
			chatError(c, http.StatusInternalServerError, "CONFIG_ERROR", "Configuración incompleta", "El servicio de IA no está configurado. Contacta al administrador.")
			return
		}

		var callErr *openai.CallError
		if errors.As(err, &callErr) {
			logger.Log.Error("chat request failed", "code", callErr.Code, "status", callErr.Status)
			c.JSON(callErr.Status, gin.H{"ok": false, "error": callErr})
			return
		}

		logger.Log.Error("chat request failed", "error", err)
		chatError(c, http.StatusInternalServerError, "EXTERNAL_SERVICE_ERROR", "Error del servicio", "El servicio de IA no está disponible en este momento. Por favor, intenta más tarde.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": reply})
}

// Health godoc
// @Summary      Estado del servicio de chat
// @Tags         chat
// @Produce      json
// @Success      200  {object}  domain.ChatHealth
// @Router       /chat/health [get]
func (h *ChatHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.chatUC.Health())
}

type JobSearchRequest struct {
	UserQuery string `json:"userQuery"`
}

// JobSearch godoc
// @Summary      Búsqueda de empleo asistida
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        query  body      JobSearchRequest  true  "Consulta de empleo"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /openai [post]
func (h *ChatHandler) JobSearch(c *gin.Context) {
	var req JobSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.UserQuery) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userQuery es requerido"})
		return
	}

	result, err := h.chatUC.JobSearch(c.Request.Context(), req.UserQuery)
	if err != nil {
		if errors.Is(err, usecase.ErrAINotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":    "API key de OpenAI no configurada",
				"fallback": h.chatUC.Fallback(),
			})
			return
		}

		logger.Log.Error("job search request failed", "error", err)

		var statusErr *openai.StatusError
		if errors.As(err, &statusErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":    fmt.Sprintf("Error de OpenAI API: %d", statusErr.StatusCode),
				"fallback": h.chatUC.Fallback(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":    err.Error(),
			"fallback": h.chatUC.Fallback(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}
