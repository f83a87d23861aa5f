package response

import (
    "net/http"

    "github.com/gin-gonic/gin"
)

// Response 统一响应包裹
type Response struct {
    Status  string `json:"status"`
    Message string `json:"message,omitempty"`
    Data    any    `json:"data,omitempty"`
}

func Success(c *gin.Context, data any) {
    c.JSON(http.StatusOK, Response{Status: "success", Data: data})
}

// SuccessMessage 成功但无数据（例如列表为空时的提示）
func SuccessMessage(c *gin.Context, msg string) {
    c.JSON(http.StatusOK, Response{Status: "success", Message: msg})
}

func BadRequest(c *gin.Context, msg string) {
    c.JSON(http.StatusBadRequest, Response{Status: "error", Message: msg})
}

func Unauthorized(c *gin.Context, msg string) {
    c.JSON(http.StatusUnauthorized, Response{Status: "error", Message: msg})
}

func Forbidden(c *gin.Context, msg string) {
    c.JSON(http.StatusForbidden, Response{Status: "error", Message: msg})
}

func NotFound(c *gin.Context, msg string) {
    c.JSON(http.StatusNotFound, Response{Status: "error", Message: msg})
}

func Conflict(c *gin.Context, msg string) {
    c.JSON(http.StatusConflict, Response{Status: "error", Message: msg})
}

func InternalError(c *gin.Context, err error) {
    c.JSON(http.StatusInternalServerError, Response{Status: "error", Message: err.Error()})
}
