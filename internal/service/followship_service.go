package service

import (
    "context"
    "errors"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/simple-twitter/internal/repository"
)

// TopUser 热门用户（实时粉丝数 + 当前观察者视角的关注标记）
type TopUser struct {
    ID             string    `json:"id"`
    Name           string    `json:"name"`
    Account        string    `json:"account"`
    Avatar         string    `json:"avatar"`
    Cover          string    `json:"cover"`
    FollowingCount int64     `json:"followingCount"`
    IsFollowed     bool      `json:"isFollowed"`
    CreatedAt      time.Time `json:"createdAt"`
}

// FollowshipService 关注关系服务
type FollowshipService interface {
    Follow(ctx context.Context, followerID, followingID string) error
    Unfollow(ctx context.Context, followerID, followingID string) error
    IsFollowedBy(ctx context.Context, followerID, followingID string) (bool, error)
    ListFollowingIDs(ctx context.Context, userID string) ([]string, error)
    ListFollowerIDs(ctx context.Context, userID string) ([]string, error)
    TopFollowed(ctx context.Context, viewerID string, limit int) ([]*TopUser, error)
}

type followshipService struct {
    followshipRepo repository.FollowshipRepository
    userRepo       repository.UserRepository
}

func NewFollowshipService(followshipRepo repository.FollowshipRepository, userRepo repository.UserRepository) FollowshipService {
    return &followshipService{followshipRepo: followshipRepo, userRepo: userRepo}
}

// Follow 建立关注边。预检只为给出友好错误；
// 并发下的最终一致性由存储层复合唯一键保证。
func (s *followshipService) Follow(ctx context.Context, followerID, followingID string) error {
    if followerID == followingID {
        return ErrSelfFollow
    }
    exists, err := s.followshipRepo.Exists(ctx, followerID, followingID)
    if err != nil {
        return err
    }
    if exists {
        return ErrAlreadyFollowing
    }
    if err := s.followshipRepo.Create(ctx, followerID, followingID); err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            return ErrAlreadyFollowing
        }
        return err
    }
    return nil
}

func (s *followshipService) Unfollow(ctx context.Context, followerID, followingID string) error {
    deleted, err := s.followshipRepo.Delete(ctx, followerID, followingID)
    if err != nil {
        return err
    }
    if !deleted {
        return ErrNotFollowing
    }
    return nil
}

func (s *followshipService) IsFollowedBy(ctx context.Context, followerID, followingID string) (bool, error) {
    return s.followshipRepo.Exists(ctx, followerID, followingID)
}

func (s *followshipService) ListFollowingIDs(ctx context.Context, userID string) ([]string, error) {
    return s.followshipRepo.ListFollowingIDs(ctx, userID)
}

func (s *followshipService) ListFollowerIDs(ctx context.Context, userID string) ([]string, error) {
    return s.followshipRepo.ListFollowerIDs(ctx, userID)
}

// TopFollowed 取粉丝数最多的前 limit 名用户，粉丝数相同时老账号优先。
func (s *followshipService) TopFollowed(ctx context.Context, viewerID string, limit int) ([]*TopUser, error) {
    if limit <= 0 {
        limit = 10
    }
    ranked, err := s.userRepo.TopFollowed(ctx, limit)
    if err != nil {
        return nil, err
    }
    viewerFollowing, err := s.followshipRepo.ListFollowingIDs(ctx, viewerID)
    if err != nil {
        return nil, err
    }
    followingSet := make(map[string]struct{}, len(viewerFollowing))
    for _, id := range viewerFollowing {
        followingSet[id] = struct{}{}
    }
    res := make([]*TopUser, 0, len(ranked))
    for _, u := range ranked {
        _, followed := followingSet[u.ID]
        res = append(res, &TopUser{
            ID:             u.ID,
            Name:           u.Name,
            Account:        u.Account,
            Avatar:         u.Avatar,
            Cover:          u.Cover,
            FollowingCount: u.FollowerCount,
            IsFollowed:     followed,
            CreatedAt:      u.CreatedAt,
        })
    }
    return res, nil
}
