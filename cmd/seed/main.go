package main

import (
    "context"
    "fmt"
    "math/rand"
    "os"
    "strconv"

    "github.com/d60-Lab/simple-twitter/config"
    "github.com/d60-Lab/simple-twitter/internal/repository"
    "github.com/d60-Lab/simple-twitter/internal/service"
    "github.com/d60-Lab/simple-twitter/pkg/database"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// 开发环境造数：注册一批用户并随机互动
func main() {
    cfg := must(config.Load())
    db := must(database.InitDB(cfg))

    userRepo := repository.NewUserRepository(db)
    tweetRepo := repository.NewTweetRepository(db)
    replyRepo := repository.NewReplyRepository(db)
    likeRepo := repository.NewLikeRepository(db)
    followshipRepo := repository.NewFollowshipRepository(db)

    userSvc := service.NewUserService(userRepo)
    tweetSvc := service.NewTweetService(tweetRepo, replyRepo, likeRepo, userRepo)
    followSvc := service.NewFollowshipService(followshipRepo, userRepo)

    ctx := context.Background()

    N := 50
    if s := os.Getenv("N"); s != "" {
        if n, err := strconv.Atoi(s); err == nil && n > 0 { N = n }
    }

    userIDs := make([]string, 0, N)
    for i := 0; i < N; i++ {
        u, err := userSvc.SignUp(ctx, service.SignUpInput{
            Name:     fmt.Sprintf("user %03d", i),
            Account:  fmt.Sprintf("user%03d", i),
            Email:    fmt.Sprintf("user%03d@example.com", i),
            Password: "password",
        })
        if err != nil {
            // 重复执行时跳过已存在的账号
            continue
        }
        userIDs = append(userIDs, u.ID)
    }

    tweetIDs := make([]string, 0, N*3)
    for _, uid := range userIDs {
        for j := 0; j < 3; j++ {
            t := must(tweetSvc.PostTweet(ctx, uid, fmt.Sprintf("hello from %s #%d", uid[:8], j)))
            tweetIDs = append(tweetIDs, t.TweetID)
        }
    }

    for _, uid := range userIDs {
        for j := 0; j < 5; j++ {
            target := userIDs[rand.Intn(len(userIDs))]
            _ = followSvc.Follow(ctx, uid, target)
        }
        for j := 0; j < 5; j++ {
            _ = tweetSvc.Like(ctx, uid, tweetIDs[rand.Intn(len(tweetIDs))])
        }
        if _, err := tweetSvc.PostReply(ctx, uid, tweetIDs[rand.Intn(len(tweetIDs))], "nice one"); err != nil {
            panic(err)
        }
    }

    fmt.Printf("seeded %d users, %d tweets\n", len(userIDs), len(tweetIDs))
}
