package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.POST("/search", h.Search)

	group := g.Group("/bookings")
	{
		group.POST("", h.Create)
		group.GET("", h.ListPending)
	}
}
