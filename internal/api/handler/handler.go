package handler

import (
    "errors"

    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/simple-twitter/internal/auth"
    "github.com/d60-Lab/simple-twitter/internal/service"
    "github.com/d60-Lab/simple-twitter/pkg/logger"
    "github.com/d60-Lab/simple-twitter/pkg/response"
)

// ClaimsKey 认证中间件注入观察者身份所用的 context key
const ClaimsKey = "auth_claims"

type Handler struct {
    userService       service.UserService
    tweetService      service.TweetService
    feedService       service.FeedService
    followshipService service.FollowshipService
    tokenMaker        *auth.TokenMaker
}

func New(
    userService service.UserService,
    tweetService service.TweetService,
    feedService service.FeedService,
    followshipService service.FollowshipService,
    tokenMaker *auth.TokenMaker,
) *Handler {
    return &Handler{
        userService:       userService,
        tweetService:      tweetService,
        feedService:       feedService,
        followshipService: followshipService,
        tokenMaker:        tokenMaker,
    }
}

// viewerID 取当前请求的观察者身份（由认证中间件注入）
func viewerID(c *gin.Context) string {
    if v, ok := c.Get(ClaimsKey); ok {
        if claims, ok := v.(*auth.Claims); ok {
            return claims.UserID
        }
    }
    return ""
}

// writeError 把服务层的类型化错误映射为响应状态：
// 校验类 400，未找到类 404，冲突类 409，其余按基础设施故障处理。
func writeError(c *gin.Context, err error) {
    switch {
    case errors.Is(err, service.ErrSelfFollow),
        errors.Is(err, service.ErrEmptyDescription),
        errors.Is(err, service.ErrDescriptionTooLong),
        errors.Is(err, service.ErrEmptyComment):
        response.BadRequest(c, err.Error())
    case errors.Is(err, service.ErrUserNotFound),
        errors.Is(err, service.ErrTweetNotFound):
        response.NotFound(c, err.Error())
    case errors.Is(err, service.ErrAlreadyFollowing),
        errors.Is(err, service.ErrNotFollowing),
        errors.Is(err, service.ErrAlreadyLiked),
        errors.Is(err, service.ErrNotLiked),
        errors.Is(err, service.ErrAccountTaken),
        errors.Is(err, service.ErrEmailTaken):
        response.Conflict(c, err.Error())
    case errors.Is(err, service.ErrInvalidCredentials):
        response.Unauthorized(c, err.Error())
    default:
        logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
        response.InternalError(c, err)
    }
}
