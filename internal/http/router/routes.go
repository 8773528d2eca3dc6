package router

import (
	"github.com/gin-gonic/gin"

	"jobpromax.app/agent-api/internal/http/handler"
)

// CustomerRouter sets up customer routes
func CustomerRouter(rg *gin.RouterGroup, h *handler.CustomerHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}

// ConversationRouter sets up conversation routes
func ConversationRouter(rg *gin.RouterGroup, h *handler.ConversationHandler) {
	rg.POST("", h.Create)
	rg.GET("/customer/:customerID", h.ListByCustomer)
	rg.DELETE("/:id", h.Delete)
}

// ChatRouter sets up the chat-turn route. The body is JSON or multipart.
func ChatRouter(rg *gin.RouterGroup, h *handler.ChatHandler) {
	rg.POST("/conversations/:id/messages", h.Send)
}

// MessageRouter sets up message history routes
func MessageRouter(rg *gin.RouterGroup, h *handler.MessageHandler) {
	rg.GET("/conversation/:conversationID", h.ListByConversation)
}

// DocumentRouter sets up document routes
func DocumentRouter(rg *gin.RouterGroup, h *handler.DocumentHandler) {
	rg.POST("/upload", h.Upload)
	rg.GET("/customer/:customerID", h.ListByCustomer)
}

// ToolsRouter sets up the admin tool-registry routes, guarded by API key
func ToolsRouter(rg *gin.RouterGroup, h *handler.ToolsHandler) {
	rg.Use(h.RequireAdminAPIKey())
	rg.GET("", h.List)
}
