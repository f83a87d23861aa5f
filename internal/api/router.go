package api

import (
    "regexp"

    sentrygin "github.com/getsentry/sentry-go/gin"
    "github.com/gin-contrib/gzip"
    "github.com/gin-gonic/gin"
    "github.com/gin-gonic/gin/binding"
    "github.com/go-playground/validator/v10"
    swaggerFiles "github.com/swaggo/files"
    ginSwagger "github.com/swaggo/gin-swagger"
    "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

    "github.com/d60-Lab/simple-twitter/config"
    _ "github.com/d60-Lab/simple-twitter/docs"
    "github.com/d60-Lab/simple-twitter/internal/api/handler"
    "github.com/d60-Lab/simple-twitter/internal/api/middleware"
    "github.com/d60-Lab/simple-twitter/internal/auth"
)

var accountPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// NewRouter 组装路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler, maker *auth.TokenMaker) *gin.Engine {
    gin.SetMode(cfg.Server.Mode)

    if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
        _ = v.RegisterValidation("account", func(fl validator.FieldLevel) bool {
            return accountPattern.MatchString(fl.Field().String())
        })
    }

    r := gin.New()
    r.Use(gin.Logger(), gin.Recovery())
    r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
    r.Use(otelgin.Middleware("simple-twitter"))
    r.Use(gzip.Gzip(gzip.DefaultCompression))

    r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

    api := r.Group("/api")
    {
        api.POST("/users", h.SignUp)
        api.POST("/signin", h.SignIn)

        authed := api.Group("", middleware.JWTAuth(maker))
        {
            authed.POST("/signout", h.SignOut)

            authed.GET("/tweets", h.ListTweets)
            authed.POST("/tweets", h.PostTweet)
            authed.GET("/tweets/:tweet_id", h.GetTweet)
            authed.GET("/tweets/:tweet_id/replies", h.ListReplies)
            authed.POST("/tweets/:tweet_id/replies", h.PostReply)
            authed.POST("/tweets/:tweet_id/like", h.Like)
            authed.POST("/tweets/:tweet_id/unlike", h.Unlike)

            authed.POST("/followships", h.Follow)
            authed.DELETE("/followships/:following_id", h.Unfollow)
            authed.GET("/followships/top", h.TopFollowed)

            authed.GET("/users/:user_id", h.GetUser)
            authed.GET("/users/:user_id/tweets", h.GetUserTweets)
            authed.GET("/users/:user_id/replied_tweets", h.GetUserReplies)
            authed.GET("/users/:user_id/likes", h.GetUserLikes)
            authed.GET("/users/:user_id/followings", h.GetUserFollowings)
            authed.GET("/users/:user_id/followers", h.GetUserFollowers)

            authed.GET("/admin/users", middleware.AdminOnly(), h.ListUsers)
        }
    }
    return r
}
