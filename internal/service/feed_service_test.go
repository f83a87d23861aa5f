package service

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/d60-Lab/simple-twitter/internal/model"
)

// 完整场景：发文 → 回复 → 喜欢，各观察者看到各自的视角
func TestFeedScenario(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    x := env.seedUser(t, "x", time.Now())
    y := env.seedUser(t, "y", time.Now())

    posted, err := env.tweets.PostTweet(ctx, x.ID, "hello")
    require.NoError(t, err)

    got, err := env.feed.GetTweet(ctx, x.ID, posted.TweetID)
    require.NoError(t, err)
    assert.EqualValues(t, 0, got.ReplyCount)
    assert.EqualValues(t, 0, got.LikeCount)

    _, err = env.tweets.PostReply(ctx, y.ID, posted.TweetID, "hi")
    require.NoError(t, err)

    replies, err := env.feed.ListReplies(ctx, posted.TweetID)
    require.NoError(t, err)
    require.Len(t, replies, 1)
    assert.Equal(t, y.ID, replies[0].ReplyOwnerID)
    assert.Equal(t, x.ID, replies[0].TweetOwnerID)

    require.NoError(t, env.tweets.Like(ctx, y.ID, posted.TweetID))

    forY, err := env.feed.GetTweet(ctx, y.ID, posted.TweetID)
    require.NoError(t, err)
    assert.True(t, forY.IsLiked)
    assert.EqualValues(t, 1, forY.LikeCount)
    assert.EqualValues(t, 1, forY.ReplyCount)

    // 另一个观察者不受影响
    forX, err := env.feed.GetTweet(ctx, x.ID, posted.TweetID)
    require.NoError(t, err)
    assert.False(t, forX.IsLiked)
    assert.EqualValues(t, 1, forX.LikeCount)

    // 取消喜欢后标记翻转
    require.NoError(t, env.tweets.Unlike(ctx, y.ID, posted.TweetID))
    forY, err = env.feed.GetTweet(ctx, y.ID, posted.TweetID)
    require.NoError(t, err)
    assert.False(t, forY.IsLiked)
    assert.EqualValues(t, 0, forY.LikeCount)
}

func TestListTweetsOrder(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())
    base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
    t1 := env.seedTweet(t, a.ID, "first", base)
    t2 := env.seedTweet(t, a.ID, "second", base.Add(time.Minute))
    t3 := env.seedTweet(t, a.ID, "third", base.Add(2*time.Minute))

    tweets, err := env.feed.ListTweets(ctx, a.ID)
    require.NoError(t, err)
    require.Len(t, tweets, 3)
    assert.Equal(t, []string{t3.ID, t2.ID, t1.ID},
        []string{tweets[0].TweetID, tweets[1].TweetID, tweets[2].TweetID})
}

func TestGetTweetNotFound(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())

    _, err := env.feed.GetTweet(ctx, a.ID, "missing")
    assert.ErrorIs(t, err, ErrTweetNotFound)

    _, err = env.feed.ListReplies(ctx, "missing")
    assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestGetTweetDanglingAuthor(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())
    viewer := env.seedUser(t, "viewer", time.Now())
    tw := env.seedTweet(t, a.ID, "orphan", time.Now())

    // 作者消失后悬空引用按未找到处理，而不是崩溃
    require.NoError(t, env.db.Delete(&model.User{}, "id = ?", a.ID).Error)
    _, err := env.feed.GetTweet(ctx, viewer.ID, tw.ID)
    assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestGetUserProfile(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())
    b := env.seedUser(t, "bob", time.Now())
    c := env.seedUser(t, "carol", time.Now())

    env.seedTweet(t, a.ID, "one", time.Now())
    env.seedTweet(t, a.ID, "two", time.Now())
    require.NoError(t, env.followship.Follow(ctx, b.ID, a.ID))
    require.NoError(t, env.followship.Follow(ctx, c.ID, a.ID))
    require.NoError(t, env.followship.Follow(ctx, a.ID, b.ID))

    profile, err := env.feed.GetUser(ctx, b.ID, a.ID)
    require.NoError(t, err)
    assert.EqualValues(t, 2, profile.TweetCount)
    assert.EqualValues(t, 2, profile.FollowerCount)
    assert.EqualValues(t, 1, profile.FollowingCount)
    assert.True(t, profile.IsFollowed)

    // 另一视角
    profile, err = env.feed.GetUser(ctx, c.ID, b.ID)
    require.NoError(t, err)
    assert.False(t, profile.IsFollowed)

    _, err = env.feed.GetUser(ctx, b.ID, "missing")
    assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserTweetsEmpty(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())

    // 空列表是成功结果，不是错误
    tweets, err := env.feed.GetUserTweets(ctx, a.ID, a.ID)
    require.NoError(t, err)
    assert.Empty(t, tweets)

    replies, err := env.feed.GetUserReplies(ctx, a.ID)
    require.NoError(t, err)
    assert.Empty(t, replies)

    likes, err := env.feed.GetUserLikes(ctx, a.ID, a.ID)
    require.NoError(t, err)
    assert.Empty(t, likes)

    // 目标用户不存在则是错误
    _, err = env.feed.GetUserTweets(ctx, a.ID, "missing")
    assert.ErrorIs(t, err, ErrUserNotFound)
    _, err = env.feed.GetUserLikes(ctx, a.ID, "missing")
    assert.ErrorIs(t, err, ErrUserNotFound)
    _, err = env.feed.GetUserFollowers(ctx, a.ID, "missing")
    assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserLikesOrder(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())
    b := env.seedUser(t, "bob", time.Now())
    base := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
    t1 := env.seedTweet(t, a.ID, "first", base)
    t2 := env.seedTweet(t, a.ID, "second", base.Add(time.Minute))

    // 先喜欢新推文，再喜欢旧推文：按喜欢时间倒序应是 t1 在前
    require.NoError(t, env.tweets.Like(ctx, b.ID, t2.ID))
    time.Sleep(5 * time.Millisecond)
    require.NoError(t, env.tweets.Like(ctx, b.ID, t1.ID))

    likes, err := env.feed.GetUserLikes(ctx, b.ID, b.ID)
    require.NoError(t, err)
    require.Len(t, likes, 2)
    assert.Equal(t, t1.ID, likes[0].TweetID)
    assert.Equal(t, t2.ID, likes[1].TweetID)
    assert.True(t, likes[0].IsLiked)
    assert.True(t, likes[1].IsLiked)
}

func TestGetUserReplies(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())
    b := env.seedUser(t, "bob", time.Now())
    tw := env.seedTweet(t, a.ID, "hello", time.Now())

    _, err := env.tweets.PostReply(ctx, b.ID, tw.ID, "hi there")
    require.NoError(t, err)

    replies, err := env.feed.GetUserReplies(ctx, b.ID)
    require.NoError(t, err)
    require.Len(t, replies, 1)
    assert.Equal(t, "hi there", replies[0].Comment)
    assert.Equal(t, b.ID, replies[0].ReplyOwnerID)
    assert.Equal(t, a.Account, replies[0].TweetOwnerAccount)
}

func TestGetUserFollowersOrder(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    target := env.seedUser(t, "target", time.Now())
    f1 := env.seedUser(t, "f1", time.Now())
    f2 := env.seedUser(t, "f2", time.Now())
    f3 := env.seedUser(t, "f3", time.Now())
    viewer := env.seedUser(t, "viewer", time.Now())

    for _, f := range []*model.User{f1, f2, f3} {
        require.NoError(t, env.followship.Follow(ctx, f.ID, target.ID))
        time.Sleep(2 * time.Millisecond)
    }
    // viewer 只关注了 f2
    require.NoError(t, env.followship.Follow(ctx, viewer.ID, f2.ID))

    followers, err := env.feed.GetUserFollowers(ctx, viewer.ID, target.ID)
    require.NoError(t, err)
    require.Len(t, followers, 3)

    // 已关注的排最前，其余保持边建立顺序
    assert.Equal(t, f2.ID, followers[0].ID)
    assert.True(t, followers[0].IsFollowed)
    assert.Equal(t, f1.ID, followers[1].ID)
    assert.Equal(t, f3.ID, followers[2].ID)
    assert.False(t, followers[1].IsFollowed)
    assert.False(t, followers[2].IsFollowed)
}

func TestGetUserFollowings(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    a := env.seedUser(t, "alice", time.Now())
    b := env.seedUser(t, "bob", time.Now())
    c := env.seedUser(t, "carol", time.Now())
    viewer := env.seedUser(t, "viewer", time.Now())

    require.NoError(t, env.followship.Follow(ctx, a.ID, b.ID))
    time.Sleep(2 * time.Millisecond)
    require.NoError(t, env.followship.Follow(ctx, a.ID, c.ID))
    require.NoError(t, env.followship.Follow(ctx, viewer.ID, c.ID))

    followings, err := env.feed.GetUserFollowings(ctx, viewer.ID, a.ID)
    require.NoError(t, err)
    require.Len(t, followings, 2)
    assert.Equal(t, b.ID, followings[0].ID)
    assert.False(t, followings[0].IsFollowed)
    assert.Equal(t, c.ID, followings[1].ID)
    assert.True(t, followings[1].IsFollowed)
}
