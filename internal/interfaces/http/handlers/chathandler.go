package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/nhadat/marketplace/internal/application/chat/dto"
	"github.com/nhadat/marketplace/internal/application/chat/usecases"
	"github.com/nhadat/marketplace/internal/infrastructure/realtime"
	"github.com/nhadat/marketplace/internal/shared/id"
	"github.com/nhadat/marketplace/internal/shared/logger"
	"github.com/nhadat/marketplace/internal/shared/utils"
)

type ChatHandler struct {
	getOrCreateUC getOrCreateChatUseCase
	listUC        listChatsUseCase
	getUC         getChatUseCase
	messagesUC    getMessagesUseCase
	sendUC        sendMessageUseCase
	hub           *realtime.Hub
	upgrader      websocket.Upgrader
	logger        logger.Interface
}

func NewChatHandler(
	getOrCreateUC getOrCreateChatUseCase,
	listUC listChatsUseCase,
	getUC getChatUseCase,
	messagesUC getMessagesUseCase,
	sendUC sendMessageUseCase,
	hub *realtime.Hub,
	allowedOrigins []string,
	logger logger.Interface,
) *ChatHandler {
	return &ChatHandler{
		getOrCreateUC: getOrCreateUC,
		listUC:        listUC,
		getUC:         getUC,
		messagesUC:    messagesUC,
		sendUC:        sendUC,
		hub:           hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

// GetOrCreate opens the conversation with a listing's owner
// @Summary Open chat about a listing
// @Tags Chat
// @Produce json
// @Param propertyId path string true "Property ID"
// @Success 200 {object} utils.APIResponse{data=dto.ChatResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/chat/property/{propertyId} [get]
func (h *ChatHandler) GetOrCreate(c *gin.Context) {
	userID, _, ok := requireCaller(c)
	if !ok {
		return
	}
	propertySID, err := utils.ParseSIDParam(c, "propertyId", id.PrefixProperty, "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getOrCreateUC.Execute(c.Request.Context(), usecases.GetOrCreateChatCommand{
		PropertySID: propertySID,
		CallerID:    userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMine returns the caller's conversations, most recent first
// @Summary My chats
// @Tags Chat
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]dto.ChatResponse}
// @Router /api/chat/me [get]
func (h *ChatHandler) ListMine(c *gin.Context) {
	userID, _, ok := requireCaller(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get returns one conversation to a participant
// @Summary Chat detail
// @Tags Chat
// @Produce json
// @Param chatId path string true "Chat ID"
// @Success 200 {object} utils.APIResponse{data=dto.ChatResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/chat/{chatId} [get]
func (h *ChatHandler) Get(c *gin.Context) {
	userID, sid, ok := h.chatParams(c)
	if !ok {
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), sid, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Messages returns the latest messages oldest first and marks the other
// participant's messages as read
// @Summary Chat messages
// @Tags Chat
// @Produce json
// @Param chatId path string true "Chat ID"
// @Success 200 {object} utils.APIResponse{data=[]dto.MessageResponse}
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/chat/{chatId}/messages [get]
func (h *ChatHandler) Messages(c *gin.Context) {
	userID, sid, ok := h.chatParams(c)
	if !ok {
		return
	}

	result, err := h.messagesUC.Execute(c.Request.Context(), sid, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Send posts a message to a conversation
// @Summary Send message
// @Tags Chat
// @Accept json
// @Produce json
// @Param chatId path string true "Chat ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} utils.APIResponse{data=dto.MessageResponse}
// @Failure 400 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /api/chat/{chatId}/messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	userID, sid, ok := h.chatParams(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !bindJSON(c, &req, h.logger) {
		return
	}

	result, err := h.sendUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		ChatSID:  sid,
		SenderID: userID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Message sent")
}

// Connect upgrades to a websocket that receives new messages addressed to
// the caller. The connection is push-only.
// @Summary Chat event stream
// @Tags Chat
// @Success 101
// @Router /api/chat/ws [get]
func (h *ChatHandler) Connect(c *gin.Context) {
	userID, _, ok := requireCaller(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		h.logger.Warnw("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	realtime.NewClient(h.hub, conn, userID).Run()
}

func (h *ChatHandler) chatParams(c *gin.Context) (uint, string, bool) {
	userID, _, ok := requireCaller(c)
	if !ok {
		return 0, "", false
	}
	sid, err := utils.ParseSIDParam(c, "chatId", id.PrefixConversation, "chat")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return 0, "", false
	}
	return userID, sid, true
}

// originChecker accepts same-origin requests and the configured client
// origins.
func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, ok := set[origin]; ok {
			return true
		}
		return origin == "http://"+r.Host || origin == "https://"+r.Host
	}
}
