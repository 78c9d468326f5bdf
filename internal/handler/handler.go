package handler

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hienthq-zcv/admin-service/internal/model"
	"github.com/hienthq-zcv/admin-service/internal/service"
	"github.com/spf13/viper"
)

type Handler struct {
	services *service.Service
}

func New(services *service.Service) *Handler {
	return &Handler{
		services: services,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{viper.GetString("client.origin")},
		AllowMethods: []string{"POST", "GET", "DELETE"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		admin := v1.Group("/admin", h.adminMiddleware)
		{
			community := admin.Group("/community")
			{
				community.GET("", h.communityGet)
				community.POST("/refresh", h.communityRefresh)
				community.POST("/:postID/delete", h.communityRequestDelete)
				community.POST("/delete/confirm", h.communityConfirmDelete)
				community.POST("/delete/cancel", h.communityCancelDelete)
			}

			admin.GET("/statistics", h.statisticsGet)
			admin.GET("/menu", h.menuGet)
			admin.GET("/notifications", h.notificationsGet)
			admin.GET("/audit", h.auditGet)
		}
	}

	return r
}

func (h *Handler) getAdminFromRequest(c *gin.Context) *model.AdminUser {
	adminReq, _ := c.Get("admin-user")

	admin, ok := adminReq.(model.AdminUser)
	if !ok {
		return nil
	}

	return &admin
}
