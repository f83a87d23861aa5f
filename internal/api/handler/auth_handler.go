package handler

import (
    "strings"

    "github.com/gin-gonic/gin"

    "github.com/d60-Lab/simple-twitter/internal/service"
    "github.com/d60-Lab/simple-twitter/pkg/response"
)

type signUpRequest struct {
    Name     string `json:"name" binding:"required,max=50"`
    Account  string `json:"account" binding:"required,max=50,account"`
    Email    string `json:"email" binding:"required,email"`
    Password string `json:"password" binding:"required,min=6,max=72"`
}

type signInRequest struct {
    Account  string `json:"account" binding:"required"`
    Password string `json:"password" binding:"required"`
}

// SignUp 注册
// @Summary 注册新账号
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body signUpRequest true "注册信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /api/users [post]
func (h *Handler) SignUp(c *gin.Context) {
    var req signUpRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    _, err := h.userService.SignUp(c.Request.Context(), service.SignUpInput{
        Name:     req.Name,
        Account:  req.Account,
        Email:    req.Email,
        Password: req.Password,
    })
    if err != nil {
        writeError(c, err)
        return
    }
    response.SuccessMessage(c, "registered")
}

// SignIn 登录
// @Summary 登录并签发 JWT
// @Tags 认证
// @Accept json
// @Produce json
// @Param request body signInRequest true "登录信息"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /api/signin [post]
func (h *Handler) SignIn(c *gin.Context) {
    var req signInRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        response.BadRequest(c, err.Error())
        return
    }
    user, err := h.userService.Authenticate(c.Request.Context(), req.Account, req.Password)
    if err != nil {
        writeError(c, err)
        return
    }
    token, err := h.tokenMaker.Generate(user)
    if err != nil {
        writeError(c, err)
        return
    }
    response.Success(c, gin.H{"token": token, "user": user})
}

// SignOut 注销当前 token
// @Summary 注销（token 进入黑名单）
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /api/signout [post]
func (h *Handler) SignOut(c *gin.Context) {
    raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
    if err := h.tokenMaker.Revoke(c.Request.Context(), raw); err != nil {
        writeError(c, err)
        return
    }
    response.SuccessMessage(c, "signed out")
}
