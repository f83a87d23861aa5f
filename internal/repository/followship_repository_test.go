package repository

import (
    "context"
    "testing"

    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "gorm.io/driver/sqlite"
    "gorm.io/gorm"
    gormlogger "gorm.io/gorm/logger"

    "github.com/d60-Lab/simple-twitter/internal/model"
)

func setupRepoDB(t *testing.T) *gorm.DB {
    t.Helper()
    db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
        TranslateError: true,
        Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
    })
    require.NoError(t, err)
    sqlDB, err := db.DB()
    require.NoError(t, err)
    sqlDB.SetMaxOpenConns(1)
    require.NoError(t, db.AutoMigrate(
        &model.User{}, &model.Tweet{}, &model.Reply{}, &model.Like{}, &model.Followship{},
    ))
    return db
}

// 复合唯一键是防重的最终保证，应用层预检只是优化
func TestFollowshipUniqueConstraint(t *testing.T) {
    db := setupRepoDB(t)
    repo := NewFollowshipRepository(db)
    ctx := context.Background()

    require.NoError(t, repo.Create(ctx, "a", "b"))
    err := repo.Create(ctx, "a", "b")
    assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

    // 反向边不受影响
    assert.NoError(t, repo.Create(ctx, "b", "a"))
}

func TestLikeUniqueConstraint(t *testing.T) {
    db := setupRepoDB(t)
    repo := NewLikeRepository(db)
    ctx := context.Background()
    tweetID := uuid.New().String()

    require.NoError(t, repo.Create(ctx, "a", tweetID))
    err := repo.Create(ctx, "a", tweetID)
    assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

    // 不同用户对同一推文不冲突
    assert.NoError(t, repo.Create(ctx, "b", tweetID))
}

func TestFollowshipDeleteReportsMiss(t *testing.T) {
    db := setupRepoDB(t)
    repo := NewFollowshipRepository(db)
    ctx := context.Background()

    deleted, err := repo.Delete(ctx, "a", "b")
    require.NoError(t, err)
    assert.False(t, deleted)

    require.NoError(t, repo.Create(ctx, "a", "b"))
    deleted, err = repo.Delete(ctx, "a", "b")
    require.NoError(t, err)
    assert.True(t, deleted)
}

func TestCountByTweetsGroups(t *testing.T) {
    db := setupRepoDB(t)
    likeRepo := NewLikeRepository(db)
    ctx := context.Background()

    require.NoError(t, likeRepo.Create(ctx, "u1", "t1"))
    require.NoError(t, likeRepo.Create(ctx, "u2", "t1"))
    require.NoError(t, likeRepo.Create(ctx, "u1", "t2"))

    counts, err := likeRepo.CountByTweets(ctx, []string{"t1", "t2", "t3"})
    require.NoError(t, err)
    assert.EqualValues(t, 2, counts["t1"])
    assert.EqualValues(t, 1, counts["t2"])
    assert.EqualValues(t, 0, counts["t3"])
}
