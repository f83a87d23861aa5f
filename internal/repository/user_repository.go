package repository

import (
    "context"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/simple-twitter/internal/model"
)

// RankedUser 按实时粉丝数排序的用户（粉丝数不落库，查询时聚合）
type RankedUser struct {
    ID            string
    Name          string
    Account       string
    Avatar        string
    Cover         string
    FollowerCount int64
    CreatedAt     time.Time
}

type UserRepository interface {
    Create(ctx context.Context, user *model.User) error
    GetByID(ctx context.Context, id string) (*model.User, error)
    GetByAccount(ctx context.Context, account string) (*model.User, error)
    GetByEmail(ctx context.Context, email string) (*model.User, error)
    List(ctx context.Context) ([]*model.User, error)
    ListByIDs(ctx context.Context, ids []string) ([]*model.User, error)
    TopFollowed(ctx context.Context, limit int) ([]*RankedUser, error)
}

type userRepository struct {
    db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
    return r.db.WithContext(ctx).Create(user).Error
}

// GetByID 未命中时返回 gorm.ErrRecordNotFound
func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) GetByAccount(ctx context.Context, account string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("account = ?", account).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
    var u model.User
    if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
        return nil, err
    }
    return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
    var res []*model.User
    err := r.db.WithContext(ctx).Order("created_at ASC").Find(&res).Error
    return res, err
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []string) ([]*model.User, error) {
    if len(ids) == 0 {
        return []*model.User{}, nil
    }
    var res []*model.User
    err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
    return res, err
}

// TopFollowed 按实时入边数取前 limit 名，粉丝数相同时老账号优先。
// 必须用子查询实时计数，不读任何冗余计数字段。
func (r *userRepository) TopFollowed(ctx context.Context, limit int) ([]*RankedUser, error) {
    var rows []*RankedUser
    err := r.db.WithContext(ctx).
        Table("users").
        Select(`users.id, users.name, users.account, users.avatar, users.cover, users.created_at,
            (SELECT COUNT(*) FROM followships WHERE followships.following_id = users.id) AS follower_count`).
        Order("follower_count DESC").
        Order("users.created_at ASC").
        Limit(limit).
        Scan(&rows).Error
    return rows, err
}
