package service

import (
    "context"
    "errors"
    "sort"
    "sync"
    "time"

    "gorm.io/gorm"

    "github.com/d60-Lab/simple-twitter/internal/model"
    "github.com/d60-Lab/simple-twitter/internal/repository"
)

// TweetPayload 观察者视角的推文聚合视图。
// 计数与 isLiked 均为查询时实时计算，不落库。
type TweetPayload struct {
    TweetID      string    `json:"TweetId"`
    Description  string    `json:"description"`
    OwnerID      string    `json:"tweetOwnerId"`
    OwnerName    string    `json:"tweetOwnerName"`
    OwnerAccount string    `json:"tweetOwnerAccount"`
    OwnerAvatar  string    `json:"tweetOwnerAvatar"`
    CreatedAt    time.Time `json:"createdAt"`
    ReplyCount   int64     `json:"replyCount"`
    LikeCount    int64     `json:"likeCount"`
    IsLiked      bool      `json:"isLiked"`
}

// ReplyPayload 回复聚合视图，附推文作者与回复者身份。
type ReplyPayload struct {
    ReplyID           string    `json:"replyId"`
    TweetID           string    `json:"TweetId"`
    Comment           string    `json:"comment"`
    CreatedAt         time.Time `json:"createdAt"`
    ReplyOwnerID      string    `json:"replyOwnerId"`
    ReplyOwnerName    string    `json:"replyOwnerName"`
    ReplyOwnerAccount string    `json:"replyOwnerAccount"`
    ReplyOwnerAvatar  string    `json:"replyOwnerAvatar"`
    TweetOwnerID      string    `json:"tweetOwnerId"`
    TweetOwnerName    string    `json:"tweetOwnerName"`
    TweetOwnerAccount string    `json:"tweetOwnerAccount"`
}

// FollowUser 关注列表里的用户视图
type FollowUser struct {
    ID           string `json:"id"`
    Name         string `json:"name"`
    Account      string `json:"account"`
    Avatar       string `json:"avatar"`
    Introduction string `json:"introduction"`
    IsFollowed   bool   `json:"isFollowed"`
}

// UserProfile 个人页视图
type UserProfile struct {
    ID             string    `json:"id"`
    Name           string    `json:"name"`
    Account        string    `json:"account"`
    Email          string    `json:"email"`
    Role           string    `json:"role"`
    Avatar         string    `json:"avatar"`
    Cover          string    `json:"cover"`
    Introduction   string    `json:"introduction"`
    CreatedAt      time.Time `json:"createdAt"`
    TweetCount     int64     `json:"tweetCount"`
    FollowerCount  int64     `json:"followerCount"`
    FollowingCount int64     `json:"followingCount"`
    IsFollowed     bool      `json:"isFollowed"`
}

// FeedService 观察者视角的聚合读服务。
// 每个请求都从存储层现查现算，不做跨请求缓存。
type FeedService interface {
    ListTweets(ctx context.Context, viewerID string) ([]*TweetPayload, error)
    GetTweet(ctx context.Context, viewerID, tweetID string) (*TweetPayload, error)
    ListReplies(ctx context.Context, tweetID string) ([]*ReplyPayload, error)
    GetUser(ctx context.Context, viewerID, userID string) (*UserProfile, error)
    GetUserTweets(ctx context.Context, viewerID, userID string) ([]*TweetPayload, error)
    GetUserReplies(ctx context.Context, userID string) ([]*ReplyPayload, error)
    GetUserLikes(ctx context.Context, viewerID, userID string) ([]*TweetPayload, error)
    GetUserFollowings(ctx context.Context, viewerID, userID string) ([]*FollowUser, error)
    GetUserFollowers(ctx context.Context, viewerID, userID string) ([]*FollowUser, error)
}

type feedService struct {
    userRepo       repository.UserRepository
    tweetRepo      repository.TweetRepository
    replyRepo      repository.ReplyRepository
    likeRepo       repository.LikeRepository
    followshipRepo repository.FollowshipRepository
}

func NewFeedService(
    userRepo repository.UserRepository,
    tweetRepo repository.TweetRepository,
    replyRepo repository.ReplyRepository,
    likeRepo repository.LikeRepository,
    followshipRepo repository.FollowshipRepository,
) FeedService {
    return &feedService{
        userRepo:       userRepo,
        tweetRepo:      tweetRepo,
        replyRepo:      replyRepo,
        likeRepo:       likeRepo,
        followshipRepo: followshipRepo,
    }
}

func (s *feedService) ListTweets(ctx context.Context, viewerID string) ([]*TweetPayload, error) {
    tweets, err := s.tweetRepo.List(ctx)
    if err != nil {
        return nil, err
    }
    return s.composeTweets(ctx, viewerID, tweets)
}

func (s *feedService) GetTweet(ctx context.Context, viewerID, tweetID string) (*TweetPayload, error) {
    tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrTweetNotFound
        }
        return nil, err
    }
    payloads, err := s.composeTweets(ctx, viewerID, []*model.Tweet{tweet})
    if err != nil {
        return nil, err
    }
    if len(payloads) == 0 {
        // 作者已不存在，视为推文不存在
        return nil, ErrTweetNotFound
    }
    return payloads[0], nil
}

func (s *feedService) ListReplies(ctx context.Context, tweetID string) ([]*ReplyPayload, error) {
    tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrTweetNotFound
        }
        return nil, err
    }

    var (
        wg         sync.WaitGroup
        tweetOwner *model.User
        replies    []*model.Reply
        ownerErr   error
        replyErr   error
    )
    wg.Add(2)
    go func() {
        defer wg.Done()
        tweetOwner, ownerErr = s.userRepo.GetByID(ctx, tweet.AuthorID)
    }()
    go func() {
        defer wg.Done()
        replies, replyErr = s.replyRepo.ListByTweet(ctx, tweetID)
    }()
    wg.Wait()
    if ownerErr != nil {
        if errors.Is(ownerErr, gorm.ErrRecordNotFound) {
            return nil, ErrTweetNotFound
        }
        return nil, ownerErr
    }
    if replyErr != nil {
        return nil, replyErr
    }

    authorIDs := make([]string, 0, len(replies))
    for _, r := range replies {
        authorIDs = append(authorIDs, r.AuthorID)
    }
    authors, err := s.userRepo.ListByIDs(ctx, dedup(authorIDs))
    if err != nil {
        return nil, err
    }
    authorByID := make(map[string]*model.User, len(authors))
    for _, u := range authors {
        authorByID[u.ID] = u
    }

    res := make([]*ReplyPayload, 0, len(replies))
    for _, r := range replies {
        owner, ok := authorByID[r.AuthorID]
        if !ok {
            // 回复者已不存在，跳过该条
            continue
        }
        res = append(res, &ReplyPayload{
            ReplyID:           r.ID,
            TweetID:           tweet.ID,
            Comment:           r.Comment,
            CreatedAt:         r.CreatedAt,
            ReplyOwnerID:      owner.ID,
            ReplyOwnerName:    owner.Name,
            ReplyOwnerAccount: owner.Account,
            ReplyOwnerAvatar:  owner.Avatar,
            TweetOwnerID:      tweetOwner.ID,
            TweetOwnerName:    tweetOwner.Name,
            TweetOwnerAccount: tweetOwner.Account,
        })
    }
    return res, nil
}

func (s *feedService) GetUser(ctx context.Context, viewerID, userID string) (*UserProfile, error) {
    user, err := s.userRepo.GetByID(ctx, userID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }

    var (
        wg                                         sync.WaitGroup
        tweetCount, followerCount, followingCount  int64
        isFollowed                                 bool
        tweetErr, followerErr, followingErr, isErr error
    )
    wg.Add(3)
    go func() {
        defer wg.Done()
        tweetCount, tweetErr = s.tweetRepo.CountByAuthor(ctx, userID)
    }()
    go func() {
        defer wg.Done()
        followerCount, followerErr = s.followshipRepo.CountFollowers(ctx, userID)
    }()
    go func() {
        defer wg.Done()
        followingCount, followingErr = s.followshipRepo.CountFollowing(ctx, userID)
    }()
    if viewerID != userID {
        wg.Add(1)
        go func() {
            defer wg.Done()
            isFollowed, isErr = s.followshipRepo.Exists(ctx, viewerID, userID)
        }()
    }
    wg.Wait()
    for _, err := range []error{tweetErr, followerErr, followingErr, isErr} {
        if err != nil {
            return nil, err
        }
    }

    return &UserProfile{
        ID:             user.ID,
        Name:           user.Name,
        Account:        user.Account,
        Email:          user.Email,
        Role:           user.Role,
        Avatar:         user.Avatar,
        Cover:          user.Cover,
        Introduction:   user.Introduction,
        CreatedAt:      user.CreatedAt,
        TweetCount:     tweetCount,
        FollowerCount:  followerCount,
        FollowingCount: followingCount,
        IsFollowed:     isFollowed,
    }, nil
}

func (s *feedService) GetUserTweets(ctx context.Context, viewerID, userID string) ([]*TweetPayload, error) {
    if err := s.ensureUser(ctx, userID); err != nil {
        return nil, err
    }
    tweets, err := s.tweetRepo.ListByAuthor(ctx, userID)
    if err != nil {
        return nil, err
    }
    return s.composeTweets(ctx, viewerID, tweets)
}

func (s *feedService) GetUserReplies(ctx context.Context, userID string) ([]*ReplyPayload, error) {
    user, err := s.userRepo.GetByID(ctx, userID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }
    replies, err := s.replyRepo.ListByAuthor(ctx, userID)
    if err != nil {
        return nil, err
    }

    tweetIDs := make([]string, 0, len(replies))
    for _, r := range replies {
        tweetIDs = append(tweetIDs, r.TweetID)
    }
    tweets, err := s.tweetRepo.ListByIDs(ctx, dedup(tweetIDs))
    if err != nil {
        return nil, err
    }
    tweetByID := make(map[string]*model.Tweet, len(tweets))
    ownerIDs := make([]string, 0, len(tweets))
    for _, t := range tweets {
        tweetByID[t.ID] = t
        ownerIDs = append(ownerIDs, t.AuthorID)
    }
    owners, err := s.userRepo.ListByIDs(ctx, dedup(ownerIDs))
    if err != nil {
        return nil, err
    }
    ownerByID := make(map[string]*model.User, len(owners))
    for _, u := range owners {
        ownerByID[u.ID] = u
    }

    res := make([]*ReplyPayload, 0, len(replies))
    for _, r := range replies {
        tweet, ok := tweetByID[r.TweetID]
        if !ok {
            // 推文已不存在，跳过该条
            continue
        }
        owner, ok := ownerByID[tweet.AuthorID]
        if !ok {
            continue
        }
        res = append(res, &ReplyPayload{
            ReplyID:           r.ID,
            TweetID:           tweet.ID,
            Comment:           r.Comment,
            CreatedAt:         r.CreatedAt,
            ReplyOwnerID:      user.ID,
            ReplyOwnerName:    user.Name,
            ReplyOwnerAccount: user.Account,
            ReplyOwnerAvatar:  user.Avatar,
            TweetOwnerID:      owner.ID,
            TweetOwnerName:    owner.Name,
            TweetOwnerAccount: owner.Account,
        })
    }
    return res, nil
}

// GetUserLikes 按喜欢时间倒序返回该用户喜欢过的推文
func (s *feedService) GetUserLikes(ctx context.Context, viewerID, userID string) ([]*TweetPayload, error) {
    if err := s.ensureUser(ctx, userID); err != nil {
        return nil, err
    }
    likedIDs, err := s.likeRepo.ListTweetIDsByUser(ctx, userID)
    if err != nil {
        return nil, err
    }
    tweets, err := s.tweetRepo.ListByIDs(ctx, likedIDs)
    if err != nil {
        return nil, err
    }
    tweetByID := make(map[string]*model.Tweet, len(tweets))
    for _, t := range tweets {
        tweetByID[t.ID] = t
    }
    // 保持喜欢时间倒序
    ordered := make([]*model.Tweet, 0, len(likedIDs))
    for _, id := range likedIDs {
        if t, ok := tweetByID[id]; ok {
            ordered = append(ordered, t)
        }
    }
    return s.composeTweets(ctx, viewerID, ordered)
}

func (s *feedService) GetUserFollowings(ctx context.Context, viewerID, userID string) ([]*FollowUser, error) {
    if err := s.ensureUser(ctx, userID); err != nil {
        return nil, err
    }
    ids, err := s.followshipRepo.ListFollowingIDs(ctx, userID)
    if err != nil {
        return nil, err
    }
    return s.composeFollowUsers(ctx, viewerID, ids, false)
}

// GetUserFollowers 粉丝列表；观察者已关注的排在前面，其余保持原有顺序。
func (s *feedService) GetUserFollowers(ctx context.Context, viewerID, userID string) ([]*FollowUser, error) {
    if err := s.ensureUser(ctx, userID); err != nil {
        return nil, err
    }
    ids, err := s.followshipRepo.ListFollowerIDs(ctx, userID)
    if err != nil {
        return nil, err
    }
    return s.composeFollowUsers(ctx, viewerID, ids, true)
}

func (s *feedService) ensureUser(ctx context.Context, userID string) error {
    if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrUserNotFound
        }
        return err
    }
    return nil
}

// composeTweets 把一批推文拼成观察者视角的聚合视图。
// 四路子查询互相独立，并发发出后在内存中合并。
func (s *feedService) composeTweets(ctx context.Context, viewerID string, tweets []*model.Tweet) ([]*TweetPayload, error) {
    if len(tweets) == 0 {
        return []*TweetPayload{}, nil
    }

    tweetIDs := make([]string, 0, len(tweets))
    authorIDs := make([]string, 0, len(tweets))
    for _, t := range tweets {
        tweetIDs = append(tweetIDs, t.ID)
        authorIDs = append(authorIDs, t.AuthorID)
    }

    var (
        wg          sync.WaitGroup
        replyCounts map[string]int64
        likeCounts  map[string]int64
        viewerLikes []string
        authors     []*model.User

        replyErr, likeErr, viewerErr, authorErr error
    )
    wg.Add(4)
    go func() {
        defer wg.Done()
        replyCounts, replyErr = s.replyRepo.CountByTweets(ctx, tweetIDs)
    }()
    go func() {
        defer wg.Done()
        likeCounts, likeErr = s.likeRepo.CountByTweets(ctx, tweetIDs)
    }()
    go func() {
        defer wg.Done()
        viewerLikes, viewerErr = s.likeRepo.ListTweetIDsByUser(ctx, viewerID)
    }()
    go func() {
        defer wg.Done()
        authors, authorErr = s.userRepo.ListByIDs(ctx, dedup(authorIDs))
    }()
    wg.Wait()
    for _, err := range []error{replyErr, likeErr, viewerErr, authorErr} {
        if err != nil {
            return nil, err
        }
    }

    likedSet := make(map[string]struct{}, len(viewerLikes))
    for _, id := range viewerLikes {
        likedSet[id] = struct{}{}
    }
    authorByID := make(map[string]*model.User, len(authors))
    for _, u := range authors {
        authorByID[u.ID] = u
    }

    res := make([]*TweetPayload, 0, len(tweets))
    for _, t := range tweets {
        author, ok := authorByID[t.AuthorID]
        if !ok {
            // 作者已不存在，跳过该条
            continue
        }
        _, liked := likedSet[t.ID]
        res = append(res, &TweetPayload{
            TweetID:      t.ID,
            Description:  t.Description,
            OwnerID:      author.ID,
            OwnerName:    author.Name,
            OwnerAccount: author.Account,
            OwnerAvatar:  author.Avatar,
            CreatedAt:    t.CreatedAt,
            ReplyCount:   replyCounts[t.ID],
            LikeCount:    likeCounts[t.ID],
            IsLiked:      liked,
        })
    }
    return res, nil
}

// composeFollowUsers 拼装关注 / 粉丝列表，标记观察者是否已关注。
func (s *feedService) composeFollowUsers(ctx context.Context, viewerID string, ids []string, followedFirst bool) ([]*FollowUser, error) {
    var (
        wg              sync.WaitGroup
        users           []*model.User
        viewerFollowing []string
        userErr, vfErr  error
    )
    wg.Add(2)
    go func() {
        defer wg.Done()
        users, userErr = s.userRepo.ListByIDs(ctx, ids)
    }()
    go func() {
        defer wg.Done()
        viewerFollowing, vfErr = s.followshipRepo.ListFollowingIDs(ctx, viewerID)
    }()
    wg.Wait()
    if userErr != nil {
        return nil, userErr
    }
    if vfErr != nil {
        return nil, vfErr
    }

    userByID := make(map[string]*model.User, len(users))
    for _, u := range users {
        userByID[u.ID] = u
    }
    followingSet := make(map[string]struct{}, len(viewerFollowing))
    for _, id := range viewerFollowing {
        followingSet[id] = struct{}{}
    }

    // 按边的建立顺序输出
    res := make([]*FollowUser, 0, len(ids))
    for _, id := range ids {
        u, ok := userByID[id]
        if !ok {
            continue
        }
        _, followed := followingSet[id]
        res = append(res, &FollowUser{
            ID:           u.ID,
            Name:         u.Name,
            Account:      u.Account,
            Avatar:       u.Avatar,
            Introduction: u.Introduction,
            IsFollowed:   followed,
        })
    }
    if followedFirst {
        sort.SliceStable(res, func(i, j int) bool {
            return res[i].IsFollowed && !res[j].IsFollowed
        })
    }
    return res, nil
}

func dedup(ids []string) []string {
    seen := make(map[string]struct{}, len(ids))
    res := make([]string, 0, len(ids))
    for _, id := range ids {
        if _, ok := seen[id]; ok {
            continue
        }
        seen[id] = struct{}{}
        res = append(res, id)
    }
    return res
}
