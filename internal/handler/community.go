package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hienthq-zcv/admin-service/internal/dto"
	"github.com/hienthq-zcv/admin-service/pkg/utils"
)

func (h *Handler) communityGet(c *gin.Context) {
	if q, ok := c.GetQuery("q"); ok {
		h.services.Community.SetQuery(q)
	}

	c.JSON(http.StatusOK, h.communityResponse())
}

func (h *Handler) communityRefresh(c *gin.Context) {
	h.services.Community.Refresh(c.Request.Context())

	c.JSON(http.StatusOK, h.communityResponse())
}

func (h *Handler) communityRequestDelete(c *gin.Context) {
	postID := strings.TrimSpace(c.Param("postID"))
	if postID == "" {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	admin := h.getAdminFromRequest(c)
	if admin == nil {
		c.JSON(http.StatusUnauthorized, dto.NewBasicResponse(false, errNotAuthorized.Error()))
		return
	}

	token := h.services.Community.RequestDelete(postID, admin.Username)

	c.JSON(http.StatusOK, dto.RequestDeleteResponse{
		PostID: postID,
		ConfirmToken: token.String(),
	})
}

func (h *Handler) communityConfirmDelete(c *gin.Context) {
	var input dto.ConfirmDeleteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	token, err := uuid.Parse(input.ConfirmToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidConfirmToken.Error()))
		return
	}

	deleted := h.services.Community.ConfirmDelete(c.Request.Context(), token)
	if !deleted {
		c.JSON(http.StatusOK, dto.NewBasicResponse(false, "delete was not performed"))
		return
	}

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "post deleted"))
}

func (h *Handler) communityCancelDelete(c *gin.Context) {
	h.services.Community.CancelDelete()

	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "delete canceled"))
}

func (h *Handler) communityResponse() dto.GetCommunityResponse {
	posts := h.services.Community.Posts()

	postsDto := make([]dto.CommunityPost, 0, len(posts))
	for _, post := range posts {
		postsDto = append(postsDto, dto.CommunityPost{
			Post: post,
			CreatedText: utils.FormatDate(post.CreatedAt),
		})
	}

	return dto.GetCommunityResponse{
		Posts: postsDto,
		Summary: h.services.Community.Summary(),
		Query: h.services.Community.Query(),
		IsLoading: h.services.Community.IsLoading(),
	}
}
