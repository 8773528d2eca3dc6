package router

import (
	"github.com/gin-gonic/gin"

	"jobpromax.app/agent-api/internal/http/handler"
	"jobpromax.app/agent-api/internal/service"
	"jobpromax.app/agent-api/internal/tools"
)

type RouterConfig struct {
	AdminAPIKey  string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, registry *tools.Registry, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		customerHandler := handler.NewCustomerHandler(services.Customers())
		CustomerRouter(v1.Group("/customers"), customerHandler)

		convHandler := handler.NewConversationHandler(services.Conversations())
		ConversationRouter(v1.Group("/conversations"), convHandler)

		chatHandler := handler.NewChatHandler(services.Chat())
		ChatRouter(v1.Group("/chat"), chatHandler)

		msgHandler := handler.NewMessageHandler(services.Messages())
		MessageRouter(v1.Group("/messages"), msgHandler)

		docHandler := handler.NewDocumentHandler(services.Documents())
		DocumentRouter(v1.Group("/documents"), docHandler)

		toolsHandler := handler.NewToolsHandler(registry, cfg.AdminAPIKey)
		ToolsRouter(v1.Group("/admin/tools"), toolsHandler)
	}
}
