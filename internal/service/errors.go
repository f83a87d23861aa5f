package service

import "errors"

// 校验类、冲突类、未找到类错误分开定义，handler 据此映射状态码。
// 基础设施故障不在此列，原样向上传递。
var (
    ErrSelfFollow       = errors.New("cannot follow yourself")
    ErrAlreadyFollowing = errors.New("already following this user")
    ErrNotFollowing     = errors.New("not following this user")

    ErrAlreadyLiked = errors.New("already liked this tweet")
    ErrNotLiked     = errors.New("have not liked this tweet")

    ErrEmptyDescription   = errors.New("description cannot be blank")
    ErrDescriptionTooLong = errors.New("description exceeds 140 characters")
    ErrEmptyComment       = errors.New("comment cannot be blank")

    ErrUserNotFound  = errors.New("user not found")
    ErrTweetNotFound = errors.New("tweet not found")

    ErrAccountTaken       = errors.New("account already registered")
    ErrEmailTaken         = errors.New("email already registered")
    ErrInvalidCredentials = errors.New("incorrect account or password")
)
