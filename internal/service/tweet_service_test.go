package service

import (
    "context"
    "strings"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/simple-twitter/internal/model"
)

func TestPostTweetValidation(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())

    tests := []struct {
        name        string
        description string
        wantErr     error
    }{
        {"empty", "", ErrEmptyDescription},
        {"whitespace only", "   \n\t  ", ErrEmptyDescription},
        {"141 chars", strings.Repeat("x", 141), ErrDescriptionTooLong},
        {"140 chars ok", strings.Repeat("x", 140), nil},
        {"surrounding whitespace trimmed", "  " + strings.Repeat("x", 140) + "  ", nil},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            _, err := env.tweets.PostTweet(ctx, a.ID, tt.description)
            if tt.wantErr != nil {
                assert.ErrorIs(t, err, tt.wantErr)
            } else {
                assert.NoError(t, err)
            }
        })
    }
}

func TestPostTweetPayload(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())

    payload, err := env.tweets.PostTweet(ctx, a.ID, "hello world")
    require.NoError(t, err)
    assert.Equal(t, "hello world", payload.Description)
    assert.Equal(t, a.ID, payload.OwnerID)
    assert.Equal(t, a.Account, payload.OwnerAccount)
    assert.Zero(t, payload.ReplyCount)
    assert.Zero(t, payload.LikeCount)
    assert.False(t, payload.IsLiked)

    // 发布后立即可读
    got, err := env.feed.GetTweet(ctx, a.ID, payload.TweetID)
    require.NoError(t, err)
    assert.Equal(t, payload.TweetID, got.TweetID)
    assert.False(t, got.IsLiked)
}

func TestLikeTwice(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())
    b := env.seedUser(t, "bob", time.Now())
    tw := env.seedTweet(t, a.ID, "hello", time.Now())

    require.NoError(t, env.tweets.Like(ctx, b.ID, tw.ID))
    assert.ErrorIs(t, env.tweets.Like(ctx, b.ID, tw.ID), ErrAlreadyLiked)

    // 重试不会让计数超过 1
    cnt, err := env.tweets.CountLikes(ctx, tw.ID)
    require.NoError(t, err)
    assert.EqualValues(t, 1, cnt)
}

func TestLikeTweetNotFound(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())

    assert.ErrorIs(t, env.tweets.Like(ctx, a.ID, "missing"), ErrTweetNotFound)
    assert.ErrorIs(t, env.tweets.Unlike(ctx, a.ID, "missing"), ErrTweetNotFound)
}

func TestUnlikeNotLiked(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())
    tw := env.seedTweet(t, a.ID, "hello", time.Now())

    assert.ErrorIs(t, env.tweets.Unlike(ctx, a.ID, tw.ID), ErrNotLiked)

    require.NoError(t, env.tweets.Like(ctx, a.ID, tw.ID))
    require.NoError(t, env.tweets.Unlike(ctx, a.ID, tw.ID))
    assert.ErrorIs(t, env.tweets.Unlike(ctx, a.ID, tw.ID), ErrNotLiked)
}

func TestPostReply(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())
    b := env.seedUser(t, "bob", time.Now())
    tw := env.seedTweet(t, a.ID, "hello", time.Now())

    _, err := env.tweets.PostReply(ctx, b.ID, tw.ID, "   ")
    assert.ErrorIs(t, err, ErrEmptyComment)

    _, err = env.tweets.PostReply(ctx, b.ID, "missing", "hi")
    assert.ErrorIs(t, err, ErrTweetNotFound)

    reply, err := env.tweets.PostReply(ctx, b.ID, tw.ID, "hi")
    require.NoError(t, err)
    // 返回的记录自带双方身份，调用方无需二次查询
    assert.Equal(t, "hi", reply.Comment)
    assert.Equal(t, b.ID, reply.ReplyOwnerID)
    assert.Equal(t, b.Account, reply.ReplyOwnerAccount)
    assert.Equal(t, a.ID, reply.TweetOwnerID)
    assert.Equal(t, a.Name, reply.TweetOwnerName)

    cnt, err := env.tweets.CountReplies(ctx, tw.ID)
    require.NoError(t, err)
    assert.EqualValues(t, 1, cnt)

    var rows int64
    require.NoError(t, env.db.Model(&model.Reply{}).Count(&rows).Error)
    assert.EqualValues(t, 1, rows)
}
