package model

import "time"

// Like 喜欢关系（行存在即代表喜欢）
type Like struct {
    ID      string `gorm:"primaryKey;type:varchar(36)"`
    UserID  string `gorm:"type:varchar(36);index:idx_like_user;index:idx_like_pair,unique;not null"`
    TweetID string `gorm:"type:varchar(36);not null;index:idx_like_tweet;index:idx_like_pair,unique"`
    // 复合唯一键，避免重复喜欢
    // idx_like_pair = (user_id, tweet_id)
    IsLiked   bool `gorm:"not null;default:true"`
    CreatedAt time.Time
    UpdatedAt time.Time
}

func (Like) TableName() string { return "likes" }
