package service

import (
    "context"
    "errors"
    "time"

    "github.com/google/uuid"
    "golang.org/x/crypto/bcrypt"
    "gorm.io/gorm"

    "github.com/d60-Lab/simple-twitter/internal/model"
    "github.com/d60-Lab/simple-twitter/internal/repository"
)

const (
    defaultAvatar = "https://i.imgur.com/q6bwDGO.png"
    defaultCover  = "https://i.imgur.com/1jDf2Me.png"
)

type SignUpInput struct {
    Name     string
    Account  string
    Email    string
    Password string
}

// UserService 账号注册与凭证校验
type UserService interface {
    SignUp(ctx context.Context, in SignUpInput) (*model.User, error)
    Authenticate(ctx context.Context, account, password string) (*model.User, error)
    ListUsers(ctx context.Context) ([]*model.User, error)
}

type userService struct {
    userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
    return &userService{userRepo: userRepo}
}

// SignUp 注册新账号；account 与 email 各自唯一。
func (s *userService) SignUp(ctx context.Context, in SignUpInput) (*model.User, error) {
    if _, err := s.userRepo.GetByAccount(ctx, in.Account); err == nil {
        return nil, ErrAccountTaken
    } else if !errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, err
    }
    if _, err := s.userRepo.GetByEmail(ctx, in.Email); err == nil {
        return nil, ErrEmailTaken
    } else if !errors.Is(err, gorm.ErrRecordNotFound) {
        return nil, err
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
    if err != nil {
        return nil, err
    }
    user := &model.User{
        ID:        uuid.New().String(),
        Name:      in.Name,
        Account:   in.Account,
        Email:     in.Email,
        Password:  string(hash),
        Role:      model.RoleUser,
        Avatar:    defaultAvatar,
        Cover:     defaultCover,
        CreatedAt: time.Now(),
    }
    if err := s.userRepo.Create(ctx, user); err != nil {
        // 唯一索引兜底并发重复注册
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            return nil, ErrAccountTaken
        }
        return nil, err
    }
    return user, nil
}

// Authenticate 校验账号密码；不区分账号不存在与密码错误。
func (s *userService) Authenticate(ctx context.Context, account, password string) (*model.User, error) {
    user, err := s.userRepo.GetByAccount(ctx, account)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrInvalidCredentials
        }
        return nil, err
    }
    if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
        return nil, ErrInvalidCredentials
    }
    return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]*model.User, error) {
    return s.userRepo.List(ctx)
}
