package handler

import (
    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/simple-twitter/pkg/response"
)

type postTweetRequest struct {
    Description string `json:"description" binding:"required"`
}

type postReplyRequest struct {
    Comment string `json:"comment" binding:"required"`
}

// ListTweets 全站推文流
// @Summary 推文流（时间倒序，带观察者视角计数）
// @Tags 推文
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/tweets [get]
func (h *Handler) ListTweets(c *gin.Context) {
    tweets, err := h.feedService.ListTweets(c.Request.Context(), viewerID(c))
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

// PostTweet 发布推文
// @Summary 发布推文（去除首尾空白后 1–140 字）
// @Tags 推文
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body postTweetRequest true "推文内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/tweets [post]
func (h *Handler) PostTweet(c *gin.Context) {
    var req postTweetRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    tweet, err := h.tweetService.PostTweet(c.Request.Context(), viewerID(c), req.Description)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, tweet)
}

// GetTweet 单条推文
// @Summary 单条推文（观察者视角）
// @Tags 推文
// @Produce json
// @Security BearerAuth
// @Param tweet_id path string true "推文ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/tweets/{tweet_id} [get]
func (h *Handler) GetTweet(c *gin.Context) {
    tweet, err := h.feedService.GetTweet(c.Request.Context(), viewerID(c), c.Param("tweet_id"))
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, tweet)
}

// ListReplies 推文的回复列表
// @Summary 回复列表（时间倒序）
// @Tags 推文
// @Produce json
// @Security BearerAuth
// @Param tweet_id path string true "推文ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/tweets/{tweet_id}/replies [get]
func (h *Handler) ListReplies(c *gin.Context) {
    replies, err := h.feedService.ListReplies(c.Request.Context(), c.Param("tweet_id"))
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

// PostReply 回复推文
// @Summary 回复推文
// @Tags 推文
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tweet_id path string true "推文ID"
// @Param request body postReplyRequest true "回复内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/tweets/{tweet_id}/replies [post]
func (h *Handler) PostReply(c *gin.Context) {
    var req postReplyRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    reply, err := h.tweetService.PostReply(c.Request.Context(), viewerID(c), c.Param("tweet_id"), req.Comment)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, reply)
}

// Like 喜欢推文
// @Summary 喜欢推文
// @Tags 推文
// @Produce json
// @Security BearerAuth
// @Param tweet_id path string true "推文ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/tweets/{tweet_id}/like [post]
func (h *Handler) Like(c *gin.Context) {
    if err := h.tweetService.Like(c.Request.Context(), viewerID(c), c.Param("tweet_id")); err != nil {
        writeError(c, err)
        return
    }
    response.SuccessMessage(c, "tweet liked")
}

// Unlike 取消喜欢
// @Summary 取消喜欢
// @Tags 推文
// @Produce json
// @Security BearerAuth
// @Param tweet_id path string true "推文ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/tweets/{tweet_id}/unlike [post]
func (h *Handler) Unlike(c *gin.Context) {
    if err := h.tweetService.Unlike(c.Request.Context(), viewerID(c), c.Param("tweet_id")); err != nil {
        writeError(c, err)
        return
    }
    response.SuccessMessage(c, "like removed")
}
