package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/simple-twitter/pkg/response"
)

// GetUser 个人页
// @Summary 个人页（含推文数 / 粉丝数 / 关注数与 isFollowed）
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/users/{user_id} [get]
func (h *Handler) GetUser(c *gin.Context) {
    profile, err := h.feedService.GetUser(c.Request.Context(), viewerID(c), c.Param("user_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, profile)
}

// GetUserTweets 用户发布的推文
// @Summary 用户的推文（时间倒序）
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/users/{user_id}/tweets [get]
func (h *Handler) GetUserTweets(c *gin.Context) {
    tweets, err := h.feedService.GetUserTweets(c.Request.Context(), viewerID(c), c.Param("user_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    if len(tweets) == 0 {
        response.SuccessMessage(c, "no tweets yet")
        return
    }
    response.Success(c, tweets)
}

// GetUserReplies 用户发过的回复
// @Summary 用户的回复（时间倒序）
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/users/{user_id}/replied_tweets [get]
func (h *Handler) GetUserReplies(c *gin.Context) {
    replies, err := h.feedService.GetUserReplies(c.Request.Context(), c.Param("user_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    if len(replies) == 0 {
        response.SuccessMessage(c, "no replies yet")
        return
    }
    response.Success(c, replies)
}

// GetUserLikes 用户喜欢过的推文
// @Summary 用户喜欢的推文（按喜欢时间倒序）
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/users/{user_id}/likes [get]
func (h *Handler) GetUserLikes(c *gin.Context) {
    tweets, err := h.feedService.GetUserLikes(c.Request.Context(), viewerID(c), c.Param("user_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    if len(tweets) == 0 {
        response.SuccessMessage(c, "no liked tweets yet")
        return
    }
    response.Success(c, tweets)
}

// GetUserFollowings 用户关注的人
// @Summary 关注列表
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/users/{user_id}/followings [get]
func (h *Handler) GetUserFollowings(c *gin.Context) {
    users, err := h.feedService.GetUserFollowings(c.Request.Context(), viewerID(c), c.Param("user_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    if len(users) == 0 {
        response.SuccessMessage(c, "not following anyone yet")
        return
    }
    response.Success(c, users)
}

// GetUserFollowers 用户的粉丝
// @Summary 粉丝列表（观察者已关注的在前）
// @Tags 用户
// @Produce json
// @Security BearerAuth
// @Param user_id path string true "用户ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/users/{user_id}/followers [get]
func (h *Handler) GetUserFollowers(c *gin.Context) {
    users, err := h.feedService.GetUserFollowers(c.Request.Context(), viewerID(c), c.Param("user_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    if len(users) == 0 {
        response.SuccessMessage(c, "no followers yet")
        return
    }
    response.Success(c, users)
}

// ListUsers 管理端用户列表
// @Summary 全部用户（仅管理员）
// @Tags 管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
    users, err := h.userService.ListUsers(c.Request.Context())
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, users)
}
