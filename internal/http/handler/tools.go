package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobpromax.app/agent-api/internal/tools"
)

// ToolsHandler exposes the local tool registry so operators can diagnose
// name or schema mismatches against the assistant's configured tools.
type ToolsHandler struct {
	registry    *tools.Registry
	adminAPIKey string
}

func NewToolsHandler(registry *tools.Registry, adminAPIKey string) *ToolsHandler {
	return &ToolsHandler{
		registry:    registry,
		adminAPIKey: adminAPIKey,
	}
}

// List returns every registered tool definition (admin only).
func (h *ToolsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.Definitions(),
		"names": h.registry.Names(),
	})
}

func (h *ToolsHandler) RequireAdminAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.adminAPIKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin API not configured"})
			c.Abort()
			return
		}

		apiKey := c.GetHeader("X-Admin-API-Key")
		if apiKey == "" {
			apiKey = c.GetHeader("Authorization")
			if len(apiKey) > 7 && apiKey[:7] == "Bearer " {
				apiKey = apiKey[7:]
			}
		}

		if apiKey != h.adminAPIKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			c.Abort()
			return
		}

		c.Next()
	}
}
