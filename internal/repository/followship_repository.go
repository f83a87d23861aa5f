package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/simple-twitter/internal/model"
)

type FollowshipRepository interface {
    Create(ctx context.Context, followerID, followingID string) error
    Delete(ctx context.Context, followerID, followingID string) (bool, error)
    Exists(ctx context.Context, followerID, followingID string) (bool, error)
    ListFollowingIDs(ctx context.Context, followerID string) ([]string, error)
    ListFollowerIDs(ctx context.Context, followingID string) ([]string, error)
    CountFollowers(ctx context.Context, userID string) (int64, error)
    CountFollowing(ctx context.Context, userID string) (int64, error)
}

type followshipRepository struct {
    db *gorm.DB
}

func NewFollowshipRepository(db *gorm.DB) FollowshipRepository { return &followshipRepository{db: db} }

// Create 写入一条关注边；复合唯一键冲突时返回 gorm.ErrDuplicatedKey
func (r *followshipRepository) Create(ctx context.Context, followerID, followingID string) error {
    f := &model.Followship{ID: uuid.New().String(), FollowerID: followerID, FollowingID: followingID}
    return r.db.WithContext(ctx).Create(f).Error
}

func (r *followshipRepository) Delete(ctx context.Context, followerID, followingID string) (bool, error) {
    res := r.db.WithContext(ctx).
        Where("follower_id = ? AND following_id = ?", followerID, followingID).
        Delete(&model.Followship{})
    return res.RowsAffected > 0, res.Error
}

func (r *followshipRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Followship{}).
        Where("follower_id = ? AND following_id = ?", followerID, followingID).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

func (r *followshipRepository) ListFollowingIDs(ctx context.Context, followerID string) ([]string, error) {
    var ids []string
    err := r.db.WithContext(ctx).
        Model(&model.Followship{}).
        Where("follower_id = ?", followerID).
        Order("created_at ASC").
        Pluck("following_id", &ids).Error
    return ids, err
}

func (r *followshipRepository) ListFollowerIDs(ctx context.Context, followingID string) ([]string, error) {
    var ids []string
    err := r.db.WithContext(ctx).
        Model(&model.Followship{}).
        Where("following_id = ?", followingID).
        Order("created_at ASC").
        Pluck("follower_id", &ids).Error
    return ids, err
}

func (r *followshipRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Followship{}).
        Where("following_id = ?", userID).
        Count(&cnt).Error
    return cnt, err
}

func (r *followshipRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Followship{}).
        Where("follower_id = ?", userID).
        Count(&cnt).Error
    return cnt, err
}
