package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/simple-twitter/internal/model"
)

type ReplyRepository interface {
    Create(ctx context.Context, reply *model.Reply) error
    ListByTweet(ctx context.Context, tweetID string) ([]*model.Reply, error)
    ListByAuthor(ctx context.Context, authorID string) ([]*model.Reply, error)
    CountByTweet(ctx context.Context, tweetID string) (int64, error)
    CountByTweets(ctx context.Context, tweetIDs []string) (map[string]int64, error)
}

type replyRepository struct {
    db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) ReplyRepository { return &replyRepository{db: db} }

func (r *replyRepository) Create(ctx context.Context, reply *model.Reply) error {
    return r.db.WithContext(ctx).Create(reply).Error
}

func (r *replyRepository) ListByTweet(ctx context.Context, tweetID string) ([]*model.Reply, error) {
    var res []*model.Reply
    err := r.db.WithContext(ctx).
        Where("tweet_id = ?", tweetID).
        Order("created_at DESC").
        Find(&res).Error
    return res, err
}

func (r *replyRepository) ListByAuthor(ctx context.Context, authorID string) ([]*model.Reply, error) {
    var res []*model.Reply
    err := r.db.WithContext(ctx).
        Where("author_id = ?", authorID).
        Order("created_at DESC").
        Find(&res).Error
    return res, err
}

func (r *replyRepository) CountByTweet(ctx context.Context, tweetID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Reply{}).
        Where("tweet_id = ?", tweetID).
        Count(&cnt).Error
    return cnt, err
}

func (r *replyRepository) CountByTweets(ctx context.Context, tweetIDs []string) (map[string]int64, error) {
    counts := make(map[string]int64, len(tweetIDs))
    if len(tweetIDs) == 0 {
        return counts, nil
    }
    var rows []struct {
        TweetID string
        Cnt     int64
    }
    err := r.db.WithContext(ctx).
        Model(&model.Reply{}).
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
