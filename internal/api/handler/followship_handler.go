package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/simple-twitter/pkg/response"
)

type followRequest struct {
    ID string `json:"id" binding:"required"`
}

// Follow 关注用户
// @Summary 关注用户
// @Tags 关系链
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body followRequest true "被关注者ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/followships [post]
func (h *Handler) Follow(c *gin.Context) {
    var req followRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    if err := h.followshipService.Follow(c.Request.Context(), viewerID(c), req.ID); err != nil {
        writeError(c, err)
        return
    }
    response.SuccessMessage(c, "followed")
}

// Unfollow 取消关注
// @Summary 取消关注
// @Tags 关系链
// @Produce json
// @Security BearerAuth
// @Param following_id path string true "被关注者ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/followships/{following_id} [delete]
func (h *Handler) Unfollow(c *gin.Context) {
    if err := h.followshipService.Unfollow(c.Request.Context(), viewerID(c), c.Param("following_id")); err != nil {
        writeError(c, err)
        return
    }
    response.SuccessMessage(c, "unfollowed")
}

// TopFollowed 热门用户
// @Summary 粉丝数前 10 的用户（实时计数，老账号优先破平）
// @Tags 关系链
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/followships/top [get]
func (h *Handler) TopFollowed(c *gin.Context) {
    users, err := h.followshipService.TopFollowed(c.Request.Context(), viewerID(c), 10)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, users)
}
