package service

import (
    "testing"
    "time"

    "github.com/google/uuid"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/simple-twitter/internal/model"
    "github.com/d60-Lab/simple-twitter/internal/repository"
)

type testEnv struct {
    db         *gorm.DB
    users      UserService
    tweets     TweetService
    feed       FeedService
    followship FollowshipService
}

func newTestEnv(t *testing.T) *testEnv {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
        TranslateError: true,
        Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
    })
    require.NoError(t, err)
    // :memory: 是按连接隔离的，限制为单连接，并发查询走串行
    sqlDB, err := db.DB()
    require.NoError(t, err)
    sqlDB.SetMaxOpenConns(1)

    require.NoError(t, db.AutoMigrate(
        &model.User{}, &model.Tweet{}, &model.Reply{}, &model.Like{}, &model.Followship{},
    ))

    userRepo := repository.NewUserRepository(db)
    tweetRepo := repository.NewTweetRepository(db)
    replyRepo := repository.NewReplyRepository(db)
    likeRepo := repository.NewLikeRepository(db)
    followshipRepo := repository.NewFollowshipRepository(db)

    return &testEnv{
        db:         db,
        users:      NewUserService(userRepo),
        tweets:     NewTweetService(tweetRepo, replyRepo, likeRepo, userRepo),
        feed:       NewFeedService(userRepo, tweetRepo, replyRepo, likeRepo, followshipRepo),
        followship: NewFollowshipService(followshipRepo, userRepo),
    }
}

// seedUser 直接落库造用户，createdAt 可控（topFollowed 的破平依赖它）
func (e *testEnv) seedUser(t *testing.T, account string, createdAt time.Time) *model.User {
    t.Helper()
    u := &model.User{
        ID:        uuid.New().String(),
        Name:      account,
        Account:   account,
        Email:     account + "@example.com",
        Password:  "hashed",
        Role:      model.RoleUser,
        CreatedAt: createdAt,
    }
    require.NoError(t, e.db.Create(u).Error)
    return u
}

func (e *testEnv) seedTweet(t *testing.T, authorID, description string, createdAt time.Time) *model.Tweet {
    t.Helper()
    tw := &model.Tweet{
        ID:          uuid.New().String(),
        AuthorID:    authorID,
        Description: description,
        CreatedAt:   createdAt,
    }
    require.NoError(t, e.db.Create(tw).Error)
    return tw
}
