package service

import (
    "context"
    "errors"
    "strings"
    "time"
    "unicode/utf8"

    "github.com/google/uuid"
    "gorm.io/gorm"

    "github.com/d60-Lab/simple-twitter/internal/model"
    "github.com/d60-Lab/simple-twitter/internal/repository"
)

const maxDescriptionLen = 140

// TweetService 推文与互动（喜欢 / 回复）服务
type TweetService interface {
    PostTweet(ctx context.Context, authorID, description string) (*TweetPayload, error)
    Like(ctx context.Context, viewerID, tweetID string) error
    Unlike(ctx context.Context, viewerID, tweetID string) error
    PostReply(ctx context.Context, authorID, tweetID, comment string) (*ReplyPayload, error)
    CountLikes(ctx context.Context, tweetID string) (int64, error)
    CountReplies(ctx context.Context, tweetID string) (int64, error)
}

type tweetService struct {
    tweetRepo repository.TweetRepository
    replyRepo repository.ReplyRepository
    likeRepo  repository.LikeRepository
    userRepo  repository.UserRepository
}

func NewTweetService(
    tweetRepo repository.TweetRepository,
    replyRepo repository.ReplyRepository,
    likeRepo repository.LikeRepository,
    userRepo repository.UserRepository,
) TweetService {
    return &tweetService{tweetRepo: tweetRepo, replyRepo: replyRepo, likeRepo: likeRepo, userRepo: userRepo}
}

// PostTweet 发布推文。长度按去除首尾空白后的字符数（rune）计算。
func (s *tweetService) PostTweet(ctx context.Context, authorID, description string) (*TweetPayload, error) {
    trimmed := strings.TrimSpace(description)
    if trimmed == "" {
        return nil, ErrEmptyDescription
    }
    if utf8.RuneCountInString(trimmed) > maxDescriptionLen {
        return nil, ErrDescriptionTooLong
    }

    author, err := s.userRepo.GetByID(ctx, authorID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }

    tweet := &model.Tweet{
        ID:          uuid.New().String(),
        AuthorID:    authorID,
        Description: trimmed,
        CreatedAt:   time.Now(),
    }
    if err := s.tweetRepo.Create(ctx, tweet); err != nil {
        return nil, err
    }

    // 新推文必然没有互动，仍按约定返回完整的聚合视图
    return &TweetPayload{
        TweetID:      tweet.ID,
        Description:  tweet.Description,
        OwnerID:      author.ID,
        OwnerName:    author.Name,
        OwnerAccount: author.Account,
        OwnerAvatar:  author.Avatar,
        CreatedAt:    tweet.CreatedAt,
        ReplyCount:   0,
        LikeCount:    0,
        IsLiked:      false,
    }, nil
}

// Like 喜欢推文。预检给出友好错误，唯一键兜底并发重复。
func (s *tweetService) Like(ctx context.Context, viewerID, tweetID string) error {
    if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrTweetNotFound
        }
        return err
    }
    liked, err := s.likeRepo.Exists(ctx, viewerID, tweetID)
    if err != nil {
        return err
    }
    if liked {
        return ErrAlreadyLiked
    }
    if err := s.likeRepo.Create(ctx, viewerID, tweetID); err != nil {
        if errors.Is(err, gorm.ErrDuplicatedKey) {
            return ErrAlreadyLiked
        }
        return err
    }
    return nil
}

func (s *tweetService) Unlike(ctx context.Context, viewerID, tweetID string) error {
    if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return ErrTweetNotFound
        }
        return err
    }
    deleted, err := s.likeRepo.Delete(ctx, viewerID, tweetID)
    if err != nil {
        return err
    }
    if !deleted {
        return ErrNotLiked
    }
    return nil
}

// PostReply 回复推文，返回包含推文作者与回复者身份的完整记录，
// 调用方无需二次查询。
func (s *tweetService) PostReply(ctx context.Context, authorID, tweetID, comment string) (*ReplyPayload, error) {
    tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrTweetNotFound
        }
        return nil, err
    }
    if strings.TrimSpace(comment) == "" {
        return nil, ErrEmptyComment
    }

    tweetOwner, err := s.userRepo.GetByID(ctx, tweet.AuthorID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }
    replyOwner, err := s.userRepo.GetByID(ctx, authorID)
    if err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, ErrUserNotFound
        }
        return nil, err
    }

    reply := &model.Reply{
        ID:        uuid.New().String(),
        TweetID:   tweet.ID,
        AuthorID:  authorID,
        Comment:   comment,
        CreatedAt: time.Now(),
    }
    if err := s.replyRepo.Create(ctx, reply); err != nil {
        return nil, err
    }

    return &ReplyPayload{
        ReplyID:           reply.ID,
        TweetID:           tweet.ID,
        Comment:           reply.Comment,
        CreatedAt:         reply.CreatedAt,
        ReplyOwnerID:      replyOwner.ID,
        ReplyOwnerName:    replyOwner.Name,
        ReplyOwnerAccount: replyOwner.Account,
        ReplyOwnerAvatar:  replyOwner.Avatar,
        TweetOwnerID:      tweetOwner.ID,
        TweetOwnerName:    tweetOwner.Name,
        TweetOwnerAccount: tweetOwner.Account,
    }, nil
}

func (s *tweetService) CountLikes(ctx context.Context, tweetID string) (int64, error) {
    return s.likeRepo.CountByTweet(ctx, tweetID)
}

func (s *tweetService) CountReplies(ctx context.Context, tweetID string) (int64, error) {
    return s.replyRepo.CountByTweet(ctx, tweetID)
}
