package repository

import (
    "context"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/simple-twitter/internal/model"
)

type LikeRepository interface {
    Create(ctx context.Context, userID, tweetID string) error
    Delete(ctx context.Context, userID, tweetID string) (bool, error)
    Exists(ctx context.Context, userID, tweetID string) (bool, error)
    ListTweetIDsByUser(ctx context.Context, userID string) ([]string, error)
    CountByTweet(ctx context.Context, tweetID string) (int64, error)
    CountByTweets(ctx context.Context, tweetIDs []string) (map[string]int64, error)
}

type likeRepository struct {
    db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository { return &likeRepository{db: db} }

// Create 写入一条喜欢记录；复合唯一键冲突时返回 gorm.ErrDuplicatedKey
func (r *likeRepository) Create(ctx context.Context, userID, tweetID string) error {
    l := &model.Like{ID: uuid.New().String(), UserID: userID, TweetID: tweetID, IsLiked: true}
    return r.db.WithContext(ctx).Create(l).Error
}

func (r *likeRepository) Delete(ctx context.Context, userID, tweetID string) (bool, error) {
    res := r.db.WithContext(ctx).
        Where("user_id = ? AND tweet_id = ?", userID, tweetID).
        Delete(&model.Like{})
    return res.RowsAffected > 0, res.Error
}

func (r *likeRepository) Exists(ctx context.Context, userID, tweetID string) (bool, error) {
    var cnt int64
    if err := r.db.WithContext(ctx).
        Model(&model.Like{}).
        Where("user_id = ? AND tweet_id = ?", userID, tweetID).
        Count(&cnt).Error; err != nil {
        return false, err
    }
    return cnt > 0, nil
}

// ListTweetIDsByUser 按喜欢时间倒序返回该用户喜欢过的推文 ID
func (r *likeRepository) ListTweetIDsByUser(ctx context.Context, userID string) ([]string, error) {
    var ids []string
    err := r.db.WithContext(ctx).
        Model(&model.Like{}).
        Where("user_id = ?", userID).
        Order("created_at DESC").
        Pluck("tweet_id", &ids).Error
    return ids, err
}

func (r *likeRepository) CountByTweet(ctx context.Context, tweetID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Like{}).
        Where("tweet_id = ?", tweetID).
        Count(&cnt).Error
    return cnt, err
}

func (r *likeRepository) CountByTweets(ctx context.Context, tweetIDs []string) (map[string]int64, error) {
    counts := make(map[string]int64, len(tweetIDs))
    if len(tweetIDs) == 0 {
        return counts, nil
    }
    var rows []struct {
        TweetID string
        Cnt     int64
    }
    err := r.db.WithContext(ctx).
        Model(&model.Like{}).
        Select("tweet_id, COUNT(*) AS cnt").
        Where("tweet_id IN ?", tweetIDs).
        Group("tweet_id").
        Scan(&rows).Error
    if err != nil {
        return nil, err
    }
    for _, row := range rows {
        counts[row.TweetID] = row.Cnt
    }
    return counts, nil
}
