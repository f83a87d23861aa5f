package middleware

import (
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/simple-twitter/internal/auth"
    "github.com/d60-Lab/simple-twitter/internal/api/handler"
    "github.com/d60-Lab/simple-twitter/internal/model"
    "github.com/d60-Lab/simple-twitter/pkg/response"
)

// JWTAuth 校验 Bearer token 并注入观察者身份
func JWTAuth(maker *auth.TokenMaker) gin.HandlerFunc {
    return func(c *gin.Context) {
        header := c.GetHeader("Authorization")
        if !strings.HasPrefix(header, "Bearer ") {
            response.Unauthorized(c, "missing bearer token")
            c.Abort()
            return
        }
        claims, err := maker.Parse(c.Request.Context(), strings.TrimPrefix(header, "Bearer "))
        if err != nil {
            response.Unauthorized(c, err.Error())
            c.Abort()
            return
        }
        c.Set(handler.ClaimsKey, claims)
        c.Next()
    }
}

// AdminOnly 仅管理员可访问
func AdminOnly() gin.HandlerFunc {
    return func(c *gin.Context) {
        v, ok := c.Get(handler.ClaimsKey)
        if !ok {
            response.Unauthorized(c, "missing bearer token")
            c.Abort()
            return
        }
        claims, ok := v.(*auth.Claims)
        if !ok || claims.Role != model.RoleAdmin {
            response.Forbidden(c, "admin only")
            c.Abort()
            return
        }
        c.Next()
    }
}
