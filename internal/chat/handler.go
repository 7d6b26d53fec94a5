package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-assistant/internal/llm"
	"resume-assistant/internal/shared/server/respond"
)

// Handler wires the chat endpoint to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches the chat route.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/chat", h.chat)
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *Handler) chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		respond.Error(c, http.StatusBadRequest, ErrEmptyMessage.Error())
		return
	}

	reply, err := h.Svc.Reply(c.Request.Context(), req.Message)
	if err != nil {
		// Model failures keep the 200 reply shape clients already render.
		respond.OK(c, chatResponse{Reply: llm.FormatError(err)})
		return
	}
	respond.OK(c, chatResponse{Reply: reply})
}
