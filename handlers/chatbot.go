package handlers

import (
	"errors"
	"net/http"

	"servease/models"
	"servease/services/chatbot"
	"servease/services/user"
	"servease/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatbotHandler serves the conversational assistant endpoints.
type ChatbotHandler struct {
	ChatbotSvc chatbot.ChatbotService
	UserSvc    user.UserService
}

// NewChatbotHandler creates a new ChatbotHandler.
func NewChatbotHandler(cs chatbot.ChatbotService, us user.UserService) *ChatbotHandler {
	return &ChatbotHandler{ChatbotSvc: cs, UserSvc: us}
}

// resolveUser loads the authenticated caller. Anonymous requests yield
// (nil, nil); a user-store failure yields an error so an authenticated caller
// is never silently downgraded to anonymous.
func (h *ChatbotHandler) resolveUser(c *gin.Context) (*models.User, error) {
	userID := currentUserID(c)
	if userID == "" {
		return nil, nil
	}
	usr, err := h.UserSvc.GetUserByID(userID)
	if err != nil {
		utils.GetLogger().Error("chatbot: failed to load user",
			zap.String("userID", userID), zap.Error(err))
		return nil, err
	}
	return usr, nil
}

// ProcessMessageHandler handles POST /api/chatbot/message.
func (h *ChatbotHandler) ProcessMessageHandler(c *gin.Context) {
	var req struct {
		Message string              `json:"message"`
		Context *models.ChatContext `json:"context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Message is required"})
		return
	}

	usr, err := h.resolveUser(c)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "response": chatbot.ErrorResponse(err)})
		return
	}

	response := h.ChatbotSvc.ProcessMessage(req.Message, req.Context, usr)
	c.JSON(http.StatusOK, gin.H{"success": true, "response": response})
}

// QuickBookHandler handles POST /api/chatbot/quick-book.
func (h *ChatbotHandler) QuickBookHandler(c *gin.Context) {
	var req struct {
		ServiceID string `json:"serviceId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	usr, err := h.resolveUser(c)
	if err != nil {
		c.JSON(http.StatusOK, quickBookFailure(chatbot.PersistenceError{Err: err}))
		return
	}

	result, err := h.ChatbotSvc.QuickBook(req.ServiceID, usr)
	if err != nil {
		c.JSON(http.StatusOK, quickBookFailure(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": result})
}

// quickBookFailure translates the quick-book error taxonomy into the
// {success: false, message, action?} wire shape. Raw faults never reach the
// caller.
func quickBookFailure(err error) gin.H {
	var validationErr chatbot.ValidationError
	var notFoundErr chatbot.ServiceNotFoundError
	var persistErr chatbot.PersistenceError

	switch {
	case errors.Is(err, chatbot.ErrLoginRequired):
		return gin.H{"success": false, "message": "Please login first", "action": models.ActionRedirectLogin}
	case errors.As(err, &validationErr):
		return gin.H{"success": false, "message": "Service ID is required"}
	case errors.As(err, &notFoundErr):
		return gin.H{"success": false, "message": "Service not found"}
	case errors.Is(err, chatbot.ErrIncompleteAddress):
		return gin.H{"success": false, "message": "Please add your address first", "action": models.ActionAddAddress}
	case errors.As(err, &persistErr):
		utils.GetLogger().Error("quick book persistence failure", zap.Error(err))
		return gin.H{"success": false, "message": "Failed to create booking"}
	default:
		utils.GetLogger().Error("quick book failed", zap.Error(err))
		return gin.H{"success": false, "message": "Failed to create booking"}
	}
}
