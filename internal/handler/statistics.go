package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hienthq-zcv/admin-service/internal/dto"
)

func (h *Handler) statisticsGet(c *gin.Context) {
	h.services.Statistics.Load(c.Request.Context())

	c.JSON(http.StatusOK, dto.GetStatisticsResponse{
		Statistics: h.services.Statistics.Snapshot(),
		BarChart: h.services.Statistics.BarData(),
		PieChart: h.services.Statistics.PieData(),
		Theme: h.services.Statistics.Theme(),
		IsLoading: h.services.Statistics.IsLoading(),
	})
}

func (h *Handler) menuGet(c *gin.Context) {
	path := c.DefaultQuery("path", "/admin")

	items, destructive := h.services.Menu.Resolve(path)

	c.JSON(http.StatusOK, dto.GetMenuResponse{
		Items: items,
		Destructive: destructive,
	})
}

func (h *Handler) notificationsGet(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Notifications.Drain())
}
