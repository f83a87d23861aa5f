package repository

import (
    "context"

    "gorm.io/gorm"

    "github.com/d60-Lab/simple-twitter/internal/model"
)

type TweetRepository interface {
    Create(ctx context.Context, tweet *model.Tweet) error
    GetByID(ctx context.Context, id string) (*model.Tweet, error)
    List(ctx context.Context) ([]*model.Tweet, error)
    ListByAuthor(ctx context.Context, authorID string) ([]*model.Tweet, error)
    ListByIDs(ctx context.Context, ids []string) ([]*model.Tweet, error)
    CountByAuthor(ctx context.Context, authorID string) (int64, error)
}

type tweetRepository struct {
    db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) TweetRepository { return &tweetRepository{db: db} }

func (r *tweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
    return r.db.WithContext(ctx).Create(tweet).Error
}

// GetByID 未命中时返回 gorm.ErrRecordNotFound
func (r *tweetRepository) GetByID(ctx context.Context, id string) (*model.Tweet, error) {
    var t model.Tweet
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error; err != nil {
        return nil, err
    }
    return &t, nil
}

func (r *tweetRepository) List(ctx context.Context) ([]*model.Tweet, error) {
    var res []*model.Tweet
    err := r.db.WithContext(ctx).Order("created_at DESC").Find(&res).Error
    return res, err
}

func (r *tweetRepository) ListByAuthor(ctx context.Context, authorID string) ([]*model.Tweet, error) {
    var res []*model.Tweet
    err := r.db.WithContext(ctx).
        Where("author_id = ?", authorID).
        Order("created_at DESC").
        Find(&res).Error
    return res, err
}

func (r *tweetRepository) ListByIDs(ctx context.Context, ids []string) ([]*model.Tweet, error) {
    if len(ids) == 0 {
        return []*model.Tweet{}, nil
    }
    var res []*model.Tweet
    err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
    return res, err
}

func (r *tweetRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
    var cnt int64
    err := r.db.WithContext(ctx).
        Model(&model.Tweet{}).
        Where("author_id = ?", authorID).
        Count(&cnt).Error
    return cnt, err
}
